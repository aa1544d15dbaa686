// Package typeface resolves the font family name used by the font override
// from a font file.
//
// A font is accepted only if both parsers in the stack can read it: the
// go-text shaper that lays out text and the x/image sfnt reader that
// exposes the name table.
package typeface

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Sentinel errors for the typeface package.
var (
	// ErrEmptyFont is returned when the font data is empty.
	ErrEmptyFont = errors.New("typeface: empty font data")

	// ErrNoFamily is returned when the font has no family or full name.
	ErrNoFamily = errors.New("typeface: font has no family name")
)

// Face describes a parsed font.
type Face struct {
	Family   string
	FullName string
	Glyphs   int
}

// Resolve parses TrueType/OpenType data and returns its names.
func Resolve(data []byte) (Face, error) {
	if len(data) == 0 {
		return Face{}, ErrEmptyFont
	}

	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return Face{}, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return Face{}, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	face := Face{
		Family:   name(f, sfnt.NameIDFamily),
		FullName: name(f, sfnt.NameIDFull),
		Glyphs:   f.NumGlyphs(),
	}
	if face.Family == "" {
		face.Family = face.FullName
	}
	if face.Family == "" {
		return face, ErrNoFamily
	}
	return face, nil
}

// ResolveFile reads and resolves the font at path.
func ResolveFile(path string) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Face{}, fmt.Errorf("typeface: %w", err)
	}
	return Resolve(data)
}

func name(f *opentype.Font, id sfnt.NameID) string {
	var buf sfnt.Buffer
	s, err := f.Name(&buf, id)
	if err != nil {
		return ""
	}
	return s
}
