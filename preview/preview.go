// Package preview applies color matrices to raster images so a filter can
// be inspected without a browser.
//
// Pixels are processed the way an SVG feColorMatrix in sRGB does: color is
// un-premultiplied, transformed with channels in [0, 1], re-premultiplied
// and clamped to 8 bits.
package preview

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/colorfx"
)

// Apply transforms the pixels of src inside r with the row-major values and
// writes them to dst. r is clipped to both images; pixels of dst outside r
// are untouched. dst and src may be the same image.
func Apply(dst *image.RGBA, src image.Image, values [20]float64, r image.Rectangle) {
	if dst == nil || src == nil {
		return
	}

	s := clone.AsShallowRGBA(src)

	r = r.Intersect(s.Rect).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	m := colorfx.FromValues(values)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := s.PixOffset(x, y)
			di := dst.PixOffset(x, y)

			// Premultiplied bytes to straight color.
			a := float64(s.Pix[si+3]) / 255
			var c colorfx.Color
			if a > 0 {
				c.R = float64(s.Pix[si+0]) / 255 / a
				c.G = float64(s.Pix[si+1]) / 255 / a
				c.B = float64(s.Pix[si+2]) / 255 / a
			}
			c.A = a

			out := m.Transform(c)
			out.R = unit(out.R)
			out.G = unit(out.G)
			out.B = unit(out.B)
			out.A = unit(out.A)

			dst.Pix[di+0] = byte8(out.R * out.A)
			dst.Pix[di+1] = byte8(out.G * out.A)
			dst.Pix[di+2] = byte8(out.B * out.A)
			dst.Pix[di+3] = byte8(out.A)
		}
	}
}

// Render returns a copy of src with the forward filter applied to the whole
// image and the inverse filter applied to each excluded rectangle first,
// matching how a page composites an excluded element under the document
// filter.
func Render(src image.Image, f colorfx.Filter, excluded []image.Rectangle) *image.RGBA {
	dst := clone.AsRGBA(src)
	for _, r := range excluded {
		Apply(dst, dst, f.Inverse, r)
	}
	Apply(dst, dst, f.Forward, dst.Rect)
	return dst
}

func unit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func byte8(v float64) uint8 {
	return uint8(math.Round(unit(v) * 255))
}
