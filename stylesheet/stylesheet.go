// Package stylesheet renders a colorfx.Filter into the markup a web page
// needs: a hidden SVG element with feColorMatrix filter definitions and a
// CSS stylesheet that applies the forward filter to the document and the
// inverse filter to excluded content.
package stylesheet

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/colorfx"
	"github.com/gogpu/colorfx/registry"
)

// IDs names the elements and filters installed on a page.
type IDs struct {
	Style   string // style element
	SVG     string // hidden svg element
	Forward string // forward filter
	Inverse string // inverse filter
}

// DefaultIDs returns the identifiers used by the browser extension for the
// given mode.
func DefaultIDs(mode colorfx.Mode) IDs {
	ids := IDs{
		Style:   "arcboostify-styles",
		SVG:     "arcboostify-svg-filters",
		Forward: "arc-combined-filter",
		Inverse: "arc-inverse-combined-filter",
	}
	if mode == colorfx.ModeSepia {
		ids.Forward = "arc-sepia"
		ids.Inverse = "arc-inverse-sepia"
	}
	return ids
}

// Selector groups that receive the inverse filter.
const (
	mediaSelectors = "img, canvas, video, iframe, picture, object, embed"
	svgSelectors   = "svg"
	textSelectors  = "p, span, a, li, h1, h2, h3, h4, h5, h6"
)

type svgElement struct {
	XMLName xml.Name      `xml:"svg"`
	Xmlns   string        `xml:"xmlns,attr"`
	ID      string        `xml:"id,attr"`
	Style   string        `xml:"style,attr"`
	Filters []filterEntry `xml:"defs>filter"`
}

type filterEntry struct {
	ID            string        `xml:"id,attr"`
	Interpolation string        `xml:"color-interpolation-filters,attr"`
	Matrix        feColorMatrix `xml:"feColorMatrix"`
}

type feColorMatrix struct {
	Type   string `xml:"type,attr"`
	Values string `xml:"values,attr"`
}

// SVG returns a zero-size svg element defining the forward and inverse
// filters of f as feColorMatrix primitives in sRGB.
func SVG(f colorfx.Filter, ids IDs) (string, error) {
	el := svgElement{
		Xmlns: "http://www.w3.org/2000/svg",
		ID:    ids.SVG,
		Style: "position: absolute; width: 0; height: 0",
		Filters: []filterEntry{
			newFilterEntry(ids.Forward, f.ForwardValues()),
			newFilterEntry(ids.Inverse, f.InverseValues()),
		},
	}
	out, err := xml.Marshal(el)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func newFilterEntry(id, values string) filterEntry {
	return filterEntry{
		ID:            id,
		Interpolation: "sRGB",
		Matrix:        feColorMatrix{Type: "matrix", Values: values},
	}
}

// CSS returns the stylesheet for p. It is empty when p is disabled.
//
// The forward filter is applied to the html element. The inverse filter is
// applied to the enabled exclusion groups (media, svg, text), outermost
// matches only, so nested excluded elements are not inverted twice.
func CSS(p colorfx.Params, ids IDs) string {
	if !p.Enabled {
		return ""
	}

	var sb strings.Builder

	if family := FontFamily(p.FontFamily); family != "" {
		sb.WriteString("html *:not(i) { font-family: \"")
		sb.WriteString(family)
		sb.WriteString("\" !important; }\n")
	}
	if p.LetterSpacing != 0 {
		sb.WriteString("html *:not(i) { letter-spacing: ")
		sb.WriteString(strconv.FormatFloat(p.LetterSpacing, 'f', -1, 64))
		sb.WriteString("px !important; }\n")
	}

	sb.WriteString("html { filter: url(#")
	sb.WriteString(ids.Forward)
	sb.WriteString(") !important; transition: none !important; }\n")

	if excluded := excludedSelectors(p); excluded != "" {
		sb.WriteString(":where(")
		sb.WriteString(excluded)
		sb.WriteString("):not(:where(")
		sb.WriteString(excluded)
		sb.WriteString(") *) { filter: url(#")
		sb.WriteString(ids.Inverse)
		sb.WriteString(") !important; transition: none !important; }\n")
	}
	return sb.String()
}

func excludedSelectors(p colorfx.Params) string {
	var groups []string
	if p.EnabledImg {
		groups = append(groups, mediaSelectors)
	}
	if p.EnabledSvg {
		groups = append(groups, svgSelectors)
	}
	if p.EnabledText {
		groups = append(groups, textSelectors)
	}
	return strings.Join(groups, ", ")
}

// FontFamily normalizes a font family name for use inside a quoted CSS
// string: NFC normalization, surrounding whitespace trimmed, quotes and
// backslashes escaped.
func FontFamily(name string) string {
	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ")
	return r.Replace(name)
}

// Validate parses css and returns the first syntax error.
func Validate(css string) error {
	_, err := parser.Parse(css)
	return err
}

// Install upserts the style and svg definitions for p into reg, or removes
// them when p is disabled. It reports whether reg changed.
func Install(reg *registry.Registry, p colorfx.Params, f colorfx.Filter, ids IDs) (bool, error) {
	if !p.Enabled {
		removedStyle := reg.Remove(ids.Style)
		removedSVG := reg.Remove(ids.SVG)
		return removedStyle || removedSVG, nil
	}

	svg, err := SVG(f, ids)
	if err != nil {
		return false, err
	}
	css := CSS(p, ids)
	if err := Validate(css); err != nil {
		return false, err
	}

	changedSVG := reg.Upsert(ids.SVG, registry.Definition{Kind: registry.KindSVG, Markup: svg})
	changedStyle := reg.Upsert(ids.Style, registry.Definition{Kind: registry.KindStyle, Markup: css})
	return changedSVG || changedStyle, nil
}
