package colorfx

import (
	"strconv"
	"strings"
)

// Filter is the engine output: a forward transform for the page and an
// inverse transform for regions that must not be adjusted twice (images,
// video, SVG, text). Both are 4x5 row-major coefficient lists ready for a
// color-matrix filter's values attribute.
//
// A Filter is recomputed wholesale on every parameter change.
type Filter struct {
	Forward [20]float64
	Inverse [20]float64

	// Mode and Strategy record how the filter was built.
	Mode     Mode
	Strategy InverseStrategy

	// Singular is true when the exact inverse hit a near-zero pivot and
	// the identity was substituted.
	Singular bool
}

// ForwardMatrix returns the 5x5 forward transform of the combined pipeline:
//
//	boost · tint · hue · contrast · brightness · saturation
//
// Saturation is applied to the color first and the tint brightness boost
// last. The order is fixed: these operations do not commute.
func ForwardMatrix(p Params, opts ...Option) ColorMatrix {
	return forward(p, newOptions(opts))
}

func forward(p Params, o options) ColorMatrix {
	if o.mode == ModeSepia {
		return Sepia(p.Sepia)
	}
	return compose(p, o)
}

// compose multiplies the effect matrices of p in pipeline order.
func compose(p Params, o options) ColorMatrix {
	pipeline := [...]ColorMatrix{
		Saturation(p.Saturation),
		Brightness(p.Brightness),
		Contrast(p.Contrast),
		HueRotate(p.Hue),
		Tint(p.Tint, o.tint, o.preservation),
		TintBoost(p.Tint.A),
	}

	m := Identity()
	for _, step := range pipeline {
		m = step.Multiply(m)
	}
	return m
}

// InverseMatrix returns the 5x5 inverse transform chosen by the inverse
// strategy, and false if the exact inverse fell back to the identity.
func InverseMatrix(p Params, opts ...Option) (ColorMatrix, bool) {
	return inverse(p, newOptions(opts))
}

func inverse(p Params, o options) (ColorMatrix, bool) {
	switch {
	case o.mode == ModeSepia && o.inverse == InverseParametric:
		return SepiaInverse(p.Sepia), true
	case o.mode == ModeSepia:
		return Sepia(p.Sepia).Invert()
	case o.inverse == InverseParametric:
		return compose(p.Opposite(), o), true
	default:
		return compose(p, o).Invert()
	}
}

// Build computes the forward and inverse transforms for p.
// Build never fails; see [Filter.Singular] for the one degraded case.
func Build(p Params, opts ...Option) Filter {
	return build(p, newOptions(opts))
}

func build(p Params, o options) Filter {
	fwd := forward(p, o)
	inv, ok := inverse(p, o)

	Logger().Debug("colorfx: filter built",
		"mode", o.mode, "inverse", o.inverse, "tint", o.tint, "singular", !ok)

	return Filter{
		Forward:  fwd.Values(),
		Inverse:  inv.Values(),
		Mode:     o.mode,
		Strategy: o.inverse,
		Singular: !ok,
	}
}

// ForwardValues returns Forward formatted for a values attribute.
func (f Filter) ForwardValues() string {
	return FormatValues(f.Forward)
}

// InverseValues returns Inverse formatted for a values attribute.
func (f Filter) InverseValues() string {
	return FormatValues(f.Inverse)
}

// FormatValues joins v with single spaces using the shortest decimal
// representation that round-trips each float64.
func FormatValues(v [20]float64) string {
	var sb strings.Builder
	sb.Grow(len(v) * 8)
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return sb.String()
}

// ParseValues parses a whitespace-separated list of exactly 20 numbers.
func ParseValues(s string) ([20]float64, error) {
	var v [20]float64
	fields := strings.Fields(s)
	if len(fields) != len(v) {
		return v, &ValuesLengthError{Got: len(fields)}
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}

// ValuesLengthError is returned by ParseValues when the list does not hold
// 20 numbers.
type ValuesLengthError struct {
	Got int
}

func (e *ValuesLengthError) Error() string {
	return "colorfx: values list has " + strconv.Itoa(e.Got) + " entries, want 20"
}
