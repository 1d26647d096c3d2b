// Package box renders lines of text inside a rectangular border.
//
// A render is a pure function of a Document and Options: validation happens
// first, then the whole block is built in memory so callers can write it in
// a single call.
package box

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrUnknownStyle is returned when a style name is not in the catalog.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidPadding is returned for negative padding.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidTitle is returned for titles containing control characters.
	ErrInvalidTitle = errors.New("invalid title")
	// ErrFileOpen is returned when the input file cannot be opened or read.
	ErrFileOpen = errors.New("cannot open input file")
)

// Style selects one of the fixed border glyph sets.
type Style int

const (
	// StyleSimple draws single light lines.
	StyleSimple Style = iota
	// StyleDouble draws double lines.
	StyleDouble
	// StyleRounded draws light lines with rounded corners.
	StyleRounded
	// StyleThick draws heavy lines.
	StyleThick
	// StyleASCII draws with plus, minus and pipe characters.
	StyleASCII

	styleCount
)

// DefaultStyle is used when no style is requested.
const DefaultStyle = StyleSimple

// Glyphs is the set of six characters used to draw a box.
type Glyphs struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var styleNames = [styleCount]string{
	StyleSimple:  "simple",
	StyleDouble:  "double",
	StyleRounded: "rounded",
	StyleThick:   "thick",
	StyleASCII:   "ascii",
}

var glyphTable = [styleCount]Glyphs{
	StyleSimple:  glyphsFromBorder(lipgloss.NormalBorder()),
	StyleDouble:  glyphsFromBorder(lipgloss.DoubleBorder()),
	StyleRounded: glyphsFromBorder(lipgloss.RoundedBorder()),
	StyleThick:   glyphsFromBorder(lipgloss.ThickBorder()),
	StyleASCII:   glyphsFromBorder(lipgloss.ASCIIBorder()),
}

// glyphsFromBorder takes the corner and edge runes of a lipgloss border.
// Top and Left stand in for all horizontal and vertical edges.
func glyphsFromBorder(b lipgloss.Border) Glyphs {
	return Glyphs{
		TopLeft:     b.TopLeft,
		TopRight:    b.TopRight,
		BottomLeft:  b.BottomLeft,
		BottomRight: b.BottomRight,
		Horizontal:  b.Top,
		Vertical:    b.Left,
	}
}

// Styles returns every style in catalog order.
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := Style(0); s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}

// StyleNames returns the names of every style in catalog order.
func StyleNames() []string {
	return append([]string(nil), styleNames[:]...)
}

// Valid returns true if the style is in the catalog.
func (s Style) Valid() bool {
	return s >= 0 && s < styleCount
}

// String returns the style's catalog name.
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Glyphs returns the glyph set for the style. Invalid styles fall back to
// the default.
func (s Style) Glyphs() Glyphs {
	if !s.Valid() {
		return glyphTable[DefaultStyle]
	}
	return glyphTable[s]
}

// ParseStyle resolves a catalog name to a Style. Names are case-sensitive.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return DefaultStyle, fmt.Errorf("%w %q (valid styles: %s)",
		ErrUnknownStyle, name, strings.Join(styleNames[:], ", "))
}
