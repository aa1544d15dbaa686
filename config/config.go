// Package config loads per-domain color adjustment settings from a TOML
// file.
//
// The file has an optional [engine] table selecting build strategies, an
// optional [default] table applied to every domain, and one table per
// domain under [domains]:
//
//	[engine]
//	mode = "combined"      # or "sepia"
//	inverse = "parametric" # or "exact"
//	tint = "blend"         # or "lerp"
//
//	[default]
//	enabled_img = true
//
//	[domains."example.com"]
//	enabled = true
//	hue = 30.0
//	contrast = 1.1
//	tint_hex = "#9b6f19"
//	tint = { a = 0.3 }
//
// Keys missing from a domain table inherit the [default] table, which in
// turn inherits [colorfx.DefaultParams]. The package only reads settings;
// it never writes them back.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/idna"

	"github.com/gogpu/colorfx"
	"github.com/gogpu/colorfx/typeface"
)

// ErrEmptyDomain is returned when a domain key is empty.
var ErrEmptyDomain = errors.New("config: empty domain")

// Engine selects how filters are built.
type Engine struct {
	Mode                string   `toml:"mode"`
	Inverse             string   `toml:"inverse"`
	Tint                string   `toml:"tint"`
	NeutralPreservation *float64 `toml:"neutral_preservation"`
}

// Options converts e into build options.
func (e Engine) Options() ([]colorfx.Option, error) {
	mode, ok := colorfx.ParseMode(e.Mode)
	if !ok {
		return nil, fmt.Errorf("config: unknown mode %q", e.Mode)
	}
	inv, ok := colorfx.ParseInverseStrategy(e.Inverse)
	if !ok {
		return nil, fmt.Errorf("config: unknown inverse strategy %q", e.Inverse)
	}
	tint, ok := colorfx.ParseTintStrategy(e.Tint)
	if !ok {
		return nil, fmt.Errorf("config: unknown tint strategy %q", e.Tint)
	}

	opts := []colorfx.Option{
		colorfx.WithMode(mode),
		colorfx.WithInverseStrategy(inv),
		colorfx.WithTintStrategy(tint),
	}
	if e.NeutralPreservation != nil {
		opts = append(opts, colorfx.WithNeutralPreservation(*e.NeutralPreservation))
	}
	return opts, nil
}

// Domain is the settings record of one domain: the engine parameters plus
// file-level conveniences resolved by [Domain.Resolve].
type Domain struct {
	colorfx.Params

	// TintHex overrides Tint.R, Tint.G and Tint.B with a CSS hex color.
	TintHex string `toml:"tint_hex"`
	// FontFile fills FontFamily from the font's name table when
	// FontFamily is empty.
	FontFile string `toml:"font_file"`
}

// Resolve returns the engine parameters of d with TintHex and FontFile
// applied.
func (d Domain) Resolve() (colorfx.Params, error) {
	p := d.Params
	if d.TintHex != "" {
		c, err := colorful.Hex(d.TintHex)
		if err != nil {
			return p, fmt.Errorf("config: tint_hex: %w", err)
		}
		r, g, b := c.RGB255()
		p.Tint.R, p.Tint.G, p.Tint.B = float64(r), float64(g), float64(b)
	}
	if d.FontFile != "" && p.FontFamily == "" {
		face, err := typeface.ResolveFile(d.FontFile)
		if err != nil {
			return p, fmt.Errorf("config: font_file: %w", err)
		}
		p.FontFamily = face.Family
	}
	return p, nil
}

// Config is a loaded settings file.
type Config struct {
	Engine  Engine
	Default Domain
	domains map[string]Domain
}

type rawFile struct {
	Engine  Engine                    `toml:"engine"`
	Default toml.Primitive            `toml:"default"`
	Domains map[string]toml.Primitive `toml:"domains"`
}

// Parse decodes a settings file.
func Parse(data string) (*Config, error) {
	var raw rawFile
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Engine:  raw.Engine,
		Default: Domain{Params: colorfx.DefaultParams()},
		domains: make(map[string]Domain, len(raw.Domains)),
	}
	if md.IsDefined("default") {
		if err := md.PrimitiveDecode(raw.Default, &cfg.Default); err != nil {
			return nil, fmt.Errorf("config: default: %w", err)
		}
	}

	for key, prim := range raw.Domains {
		d := cfg.Default
		if err := md.PrimitiveDecode(prim, &d); err != nil {
			return nil, fmt.Errorf("config: domain %q: %w", key, err)
		}
		name, err := NormalizeDomain(key)
		if err != nil {
			return nil, fmt.Errorf("config: domain %q: %w", key, err)
		}
		if _, dup := cfg.domains[name]; dup {
			return nil, fmt.Errorf("config: domain %q defined twice", name)
		}
		cfg.domains[name] = d
	}

	if keys := md.Undecoded(); len(keys) > 0 {
		colorfx.Logger().Warn("config: unknown keys ignored", "keys", fmt.Sprint(keys))
	}
	return cfg, nil
}

// Load reads and decodes the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	colorfx.Logger().Debug("config: loaded", "path", path, "domains", len(cfg.domains))
	return cfg, nil
}

// Lookup returns the settings for host, falling back to the default table.
// ok reports whether host has its own table.
func (c *Config) Lookup(host string) (d Domain, ok bool) {
	name, err := NormalizeDomain(host)
	if err != nil {
		return c.Default, false
	}
	d, ok = c.domains[name]
	if !ok {
		return c.Default, false
	}
	return d, true
}

// Domains returns the normalized domain keys defined in the file.
func (c *Config) Domains() []string {
	names := make([]string, 0, len(c.domains))
	for name := range c.domains {
		names = append(names, name)
	}
	return names
}

// NormalizeDomain maps a host name to its lookup key: port and trailing
// dot removed, lower-cased, internationalized labels converted to
// punycode.
func NormalizeDomain(host string) (string, error) {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", ErrEmptyDomain
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return strings.ToLower(ascii), nil
}
