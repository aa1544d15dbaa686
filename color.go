package colorfx

import (
	"image/color"
	"math"
)

// Color is a straight-alpha color with components nominally in [0, 1].
// Components produced by [ColorMatrix.Transform] may fall outside that range.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// NRGBA converts c to an 8-bit straight-alpha color, clamping each component.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp8(c.R),
		G: clamp8(c.G),
		B: clamp8(c.B),
		A: clamp8(c.A),
	}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Distance returns the largest per-channel absolute difference between c and o.
func (c Color) Distance(o Color) float64 {
	return max(
		math.Abs(c.R-o.R),
		math.Abs(c.G-o.G),
		math.Abs(c.B-o.B),
		math.Abs(c.A-o.A),
	)
}

func clamp8(v float64) uint8 {
	v = math.Round(v * 255)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
