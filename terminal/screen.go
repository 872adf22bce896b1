// Package terminal adapts tcell screens to the grid capabilities.
package terminal

import (
	"grux/core"
	"grux/grid"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Screen implements grid.Grid[rune] on top of a tcell.Screen. The grid size
// is the screen size at the time of each call, so a resized terminal changes
// which points are in bounds.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

var _ grid.Grid[rune] = (*Screen)(nil)

// NewScreen wraps an initialized screen. Cells are written with style.
func NewScreen(s tcell.Screen, style tcell.Style) *Screen {
	return &Screen{screen: s, style: style}
}

// SetStyle changes the style applied by subsequent writes.
func (s *Screen) SetStyle(style tcell.Style) {
	s.style = style
}

// Size returns the current screen size.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Set places r at p. Changes become visible on the terminal after Show.
func (s *Screen) Set(p core.Point, r rune) error {
	width, height := s.Size()
	if err := grid.CheckBounds(p, width, height); err != nil {
		return err
	}
	if err := grid.CheckRune(r); err != nil {
		return err
	}
	s.screen.SetContent(p.X, p.Y, r, nil, s.style)
	return nil
}

// Get returns the rune at p. Blank cells read as ' '.
func (s *Screen) Get(p core.Point) (rune, error) {
	width, height := s.Size()
	if err := grid.CheckBounds(p, width, height); err != nil {
		return 0, err
	}
	r, _, _, _ := s.screen.GetContent(p.X, p.Y)
	return r, nil
}

// WriteTo renders the screen contents as plain text.
func (s *Screen) WriteTo(w io.Writer) (int64, error) {
	width, height := s.Size()
	return grid.WriteRows(w, height, func(buf []byte, y int) []byte {
		for x := 0; x < width; x++ {
			r, _, _, _ := s.screen.GetContent(x, y)
			buf = grid.AppendCell(buf, r)
		}
		return buf
	})
}

// Show flushes pending writes to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Clear blanks the whole screen.
func (s *Screen) Clear() {
	s.screen.Clear()
}
