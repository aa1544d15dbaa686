package colorfx

// Params is the per-domain adjustment record.
//
// The engine only reads Hue, Contrast, Brightness, Saturation, Tint and
// Sepia. The remaining fields are cosmetic pass-through settings consumed
// by the stylesheet layer. No range validation is applied: every matrix is
// well defined for any real input.
type Params struct {
	// Hue is a rotation in degrees, typically 0-360.
	Hue float64 `toml:"hue" json:"hue"`
	// Contrast is a multiplier, typically 0.5-1.5.
	Contrast float64 `toml:"contrast" json:"contrast"`
	// Brightness is a multiplier, typically 0.5-1.5.
	Brightness float64 `toml:"brightness" json:"brightness"`
	// Saturation is a multiplier, typically 0-2.
	Saturation float64 `toml:"saturation" json:"saturation"`
	// Tint is the tint target color and intensity.
	Tint TintColor `toml:"tint" json:"tint"`
	// Sepia is the sepia amount in [0, 1], used by ModeSepia only.
	Sepia float64 `toml:"sepia" json:"sepia"`

	Enabled       bool    `toml:"enabled" json:"enabled"`
	EnabledImg    bool    `toml:"enabled_img" json:"enabledImg"`
	EnabledSvg    bool    `toml:"enabled_svg" json:"enabledSvg"`
	EnabledText   bool    `toml:"enabled_text" json:"enabledText"`
	FontFamily    string  `toml:"font_family" json:"fontFamily"`
	LetterSpacing float64 `toml:"letter_spacing" json:"letterSpacing"`
}

// DefaultParams returns the neutral record: every effect at its identity
// value, tint intensity zero, and the page disabled.
func DefaultParams() Params {
	return Params{
		Hue:        0,
		Contrast:   1,
		Brightness: 1,
		Saturation: 1,
		Tint:       TintColor{R: 155, G: 111, B: 25, A: 0},
		Sepia:      0,
	}
}

// Opposite returns the parameter-level opposite used by the parametric
// inverse: hue -h, contrast 2-c, brightness 2-b, saturation 2-s and tint
// intensity -a. Cosmetic fields are copied unchanged.
func (p Params) Opposite() Params {
	o := p
	o.Hue = -p.Hue
	o.Contrast = 2 - p.Contrast
	o.Brightness = 2 - p.Brightness
	o.Saturation = 2 - p.Saturation
	o.Tint.A = -p.Tint.A
	return o
}
