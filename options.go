package colorfx

// Mode selects which pipeline Build runs.
type Mode uint8

const (
	// ModeCombined composes saturation, brightness, contrast, hue rotation
	// and tint into one transform.
	ModeCombined Mode = iota

	// ModeSepia builds a single interpolated sepia transform.
	ModeSepia
)

// String returns the mode name used in configuration files and flags.
func (m Mode) String() string {
	switch m {
	case ModeCombined:
		return "combined"
	case ModeSepia:
		return "sepia"
	default:
		return unknownStr
	}
}

// InverseStrategy selects how the inverse transform is produced.
type InverseStrategy uint8

const (
	// InverseParametric builds a second pipeline from parameter-level
	// opposites (hue -h, contrast 2-c, ...) composed in the same order as
	// the forward pipeline. It approximates the true inverse: close for
	// small adjustments, diverging for large ones.
	InverseParametric InverseStrategy = iota

	// InverseExact inverts the forward matrix by Gauss-Jordan elimination.
	// Singular forwards fall back to the identity.
	InverseExact
)

// String returns the strategy name used in configuration files and flags.
func (s InverseStrategy) String() string {
	switch s {
	case InverseParametric:
		return "parametric"
	case InverseExact:
		return "exact"
	default:
		return unknownStr
	}
}

// TintStrategy selects the tint matrix formula.
type TintStrategy uint8

const (
	// TintDiagonalBlend sets each diagonal entry to 1 - a' + a'*channel
	// with a' = a*(1 - preservation*0.3).
	TintDiagonalBlend TintStrategy = iota

	// TintInterpolate interpolates (1-a)*I + a*diag(channel).
	TintInterpolate
)

// String returns the strategy name used in configuration files and flags.
func (s TintStrategy) String() string {
	switch s {
	case TintDiagonalBlend:
		return "blend"
	case TintInterpolate:
		return "lerp"
	default:
		return unknownStr
	}
}

const unknownStr = "unknown"

// ParseMode parses a mode name as returned by [Mode.String].
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "combined", "":
		return ModeCombined, true
	case "sepia":
		return ModeSepia, true
	}
	return ModeCombined, false
}

// ParseInverseStrategy parses a name as returned by [InverseStrategy.String].
func ParseInverseStrategy(s string) (InverseStrategy, bool) {
	switch s {
	case "parametric", "":
		return InverseParametric, true
	case "exact":
		return InverseExact, true
	}
	return InverseParametric, false
}

// ParseTintStrategy parses a name as returned by [TintStrategy.String].
func ParseTintStrategy(s string) (TintStrategy, bool) {
	switch s {
	case "blend", "":
		return TintDiagonalBlend, true
	case "lerp":
		return TintInterpolate, true
	}
	return TintDiagonalBlend, false
}

// Option configures Build.
//
// Example:
//
//	f := colorfx.Build(p,
//	    colorfx.WithInverseStrategy(colorfx.InverseExact),
//	    colorfx.WithTintStrategy(colorfx.TintInterpolate),
//	)
type Option func(*options)

// options holds the engine configuration for one Build call.
type options struct {
	mode         Mode
	inverse      InverseStrategy
	tint         TintStrategy
	preservation float64
}

// defaultOptions returns the configuration of the shipped extension:
// combined mode, parametric inverse, diagonal-blend tint with full
// neutral preservation.
func defaultOptions() options {
	return options{
		mode:         ModeCombined,
		inverse:      InverseParametric,
		tint:         TintDiagonalBlend,
		preservation: 1,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMode selects the combined or sepia-only pipeline.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithInverseStrategy selects how the inverse transform is produced.
func WithInverseStrategy(s InverseStrategy) Option {
	return func(o *options) {
		o.inverse = s
	}
}

// WithTintStrategy selects the tint formula.
func WithTintStrategy(s TintStrategy) Option {
	return func(o *options) {
		o.tint = s
	}
}

// WithNeutralPreservation sets the neutral preservation factor of
// TintDiagonalBlend, nominally in [0, 1]. The default is 1.
func WithNeutralPreservation(p float64) Option {
	return func(o *options) {
		o.preservation = p
	}
}
