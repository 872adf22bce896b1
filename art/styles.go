package art

import (
	"fmt"
	"grux/grid"
	"sort"
	"strings"
	"unicode/utf8"
)

// BorderStyle defines the characters used to draw a bordered rectangle.
type BorderStyle struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Predefined border styles
var (
	// Single uses light box-drawing lines
	Single = BorderStyle{'┌', '─', '┐', '│', '│', '└', '─', '┘'}

	// Rounded uses light lines with rounded corners
	Rounded = BorderStyle{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}

	// Double uses double-line characters
	Double = BorderStyle{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}

	// Heavy uses heavy box-drawing lines
	Heavy = BorderStyle{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}

	// ASCII uses plain ASCII characters
	ASCII = BorderStyle{'+', '-', '+', '|', '|', '+', '-', '+'}
)

var styles = map[string]BorderStyle{
	"single":  Single,
	"rounded": Rounded,
	"double":  Double,
	"heavy":   Heavy,
	"ascii":   ASCII,
}

// LookupStyle returns the predefined style registered under name
// (case-insensitive).
func LookupStyle(name string) (BorderStyle, bool) {
	s, ok := styles[strings.ToLower(name)]
	return s, ok
}

// StyleNames returns the names of the predefined styles in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseStyle builds a style from exactly eight characters given in glyph
// order, e.g. "╔═╗║║╚═╝". Every character must be a single-column rune.
func ParseStyle(glyphs string) (BorderStyle, error) {
	if n := utf8.RuneCountInString(glyphs); n != 8 {
		return BorderStyle{}, fmt.Errorf("border glyphs %q: want 8 characters, got %d", glyphs, n)
	}

	var g [8]rune
	for i, r := range []rune(glyphs) {
		if err := grid.CheckRune(r); err != nil {
			return BorderStyle{}, fmt.Errorf("border glyph %d: %w", i, err)
		}
		g[i] = r
	}
	return FromGlyphs(g), nil
}

// FromGlyphs converts a glyph array in NewBorderRect order into a style.
func FromGlyphs(g [8]rune) BorderStyle {
	return BorderStyle{
		TopLeft:     g[TopLeft],
		Top:         g[Top],
		TopRight:    g[TopRight],
		Left:        g[Left],
		Right:       g[Right],
		BottomLeft:  g[BottomLeft],
		Bottom:      g[Bottom],
		BottomRight: g[BottomRight],
	}
}

// Glyphs returns the style as a glyph array in NewBorderRect order.
func (s BorderStyle) Glyphs() [8]rune {
	return [8]rune{s.TopLeft, s.Top, s.TopRight, s.Left, s.Right, s.BottomLeft, s.Bottom, s.BottomRight}
}

// Rect configures a width × height bordered rectangle in this style.
func (s BorderStyle) Rect(width, height int) (*BorderRect[rune], error) {
	return NewBorderRect(width, height, s.Glyphs())
}

// String returns the eight glyphs in order.
func (s BorderStyle) String() string {
	g := s.Glyphs()
	return string(g[:])
}
