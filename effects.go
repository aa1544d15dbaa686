package colorfx

import "math"

// shortCircuitEpsilon is the tolerance under which saturation and hue
// rotation return the identity matrix without computing coefficients.
const shortCircuitEpsilon = 1e-6

// sepiaBlock is the standard 3x3 sepia tone matrix.
var sepiaBlock = [3][3]float64{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// sepiaInverseBlock is the fixed-point inverse of sepiaBlock that ships
// with the sepia-only filter. The sepia block is nearly singular
// (det ≈ 1.2e-7), and these coefficients do not invert it exactly;
// they are kept as the parametric inverse of sepia-only mode.
var sepiaInverseBlock = [3][3]float64{
	{2.023554, -1.621092, -0.402462},
	{-1.029568, 2.248103, -0.218535},
	{-0.993962, -0.627004, 2.620966},
}

// rgbBlock returns the identity matrix with its 3x3 RGB block replaced by b.
func rgbBlock(b [3][3]float64) ColorMatrix {
	m := Identity()
	for i := range 3 {
		copy(m[i][:3], b[i][:])
	}
	return m
}

// lerpBlock interpolates the RGB block between the identity (t=0) and b
// (t=1). Alpha and homogeneous rows stay exact identity rows.
func lerpBlock(b [3][3]float64, t float64) ColorMatrix {
	return Lerp(Identity(), rgbBlock(b), t)
}

// Brightness scales R, G and B by v.
// v = 0 is black, 1 is unchanged.
func Brightness(v float64) ColorMatrix {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = v, v, v
	return m
}

// Contrast scales R, G and B by v around mid-gray:
//
//	out = v*in + (1-v)/2
func Contrast(v float64) ColorMatrix {
	t := (1 - v) / 2
	m := Brightness(v)
	m[0][4], m[1][4], m[2][4] = t, t, t
	return m
}

// Saturation interpolates each channel toward the channel average using
// equal 1/3 weights: diag(v) + (1-v)*ones/3 over the RGB block.
// v = 0 is grayscale, 1 is unchanged, above 1 oversaturates.
func Saturation(v float64) ColorMatrix {
	if math.Abs(v-1) < shortCircuitEpsilon {
		return Identity()
	}

	s := (1 - v) / 3
	return rgbBlock([3][3]float64{
		{s + v, s, s},
		{s, s + v, s},
		{s, s, s + v},
	})
}

// HueRotate rotates hue by angle degrees about the gray axis of RGB space.
// Neutral colors (R = G = B) are left unchanged.
func HueRotate(angle float64) ColorMatrix {
	if math.Abs(angle) < shortCircuitEpsilon {
		return Identity()
	}

	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	d := cos + (1-cos)/3
	p := (1-cos)/3 + sin/math.Sqrt(3)
	n := (1-cos)/3 - sin/math.Sqrt(3)

	return rgbBlock([3][3]float64{
		{d, n, p},
		{p, d, n},
		{n, p, d},
	})
}

// TintColor is a tint target with 8-bit R, G, B components (0-255) and an
// intensity A in [0, 1]. Zero intensity disables tinting.
type TintColor struct {
	R float64 `toml:"r" json:"r"`
	G float64 `toml:"g" json:"g"`
	B float64 `toml:"b" json:"b"`
	A float64 `toml:"a" json:"a"`
}

// normalized returns the tint channels scaled to [0, 1].
func (t TintColor) normalized() [3]float64 {
	return [3]float64{t.R / 255, t.G / 255, t.B / 255}
}

// Tint builds the tint matrix for t using the given strategy.
//
// preservation only affects TintDiagonalBlend: the intensity is discounted
// to a*(1 - preservation*0.3) so that neutrals drift less toward the tint.
func Tint(t TintColor, strategy TintStrategy, preservation float64) ColorMatrix {
	c := t.normalized()

	if strategy == TintInterpolate {
		var diag [3][3]float64
		for i := range 3 {
			diag[i][i] = c[i]
		}
		return lerpBlock(diag, t.A)
	}

	a := t.A * (1 - preservation*0.3)
	m := Identity()
	for i := range 3 {
		m[i][i] = 1 - a + a*c[i]
	}
	return m
}

// TintBoost compensates the dimming introduced by a tint of intensity a.
func TintBoost(a float64) ColorMatrix {
	return Brightness(1 + a*0.5)
}

// Sepia interpolates between the identity (s=0) and the standard sepia
// matrix (s=1) over the RGB block.
func Sepia(s float64) ColorMatrix {
	return lerpBlock(sepiaBlock, s)
}

// SepiaInverse interpolates between the identity (s=0) and the fixed-point
// inverse sepia table (s=1). It is the cheap counterpart to Sepia used by
// the parametric inverse strategy; see [Sepia] and [ColorMatrix.Invert]
// for the exact alternative.
func SepiaInverse(s float64) ColorMatrix {
	return lerpBlock(sepiaInverseBlock, s)
}
