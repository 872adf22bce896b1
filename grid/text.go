package grid

import (
	"fmt"
	"grux/core"
	"io"
	"strings"
	"unicode/utf8"
)

// Text is a grid stored as one flat run of characters with a declared row
// width. Cell (x, y) lives at offset y*width + x; the height is the number of
// characters divided by the width. Every character must occupy exactly one
// terminal column, see CheckRune.
type Text struct {
	cells []rune
	width int
}

// NewText creates a grid from the flat string s split into rows of width
// characters. The character count of s must be a multiple of width.
func NewText(s string, width int) (*Text, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidSize, width)
	}

	cells := []rune(s)
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d characters do not divide into rows of %d", ErrInvalidSize, len(cells), width)
	}
	for _, r := range cells {
		if err := CheckRune(r); err != nil {
			return nil, err
		}
	}

	return &Text{cells: cells, width: width}, nil
}

// BlankText creates a width × height grid filled with fill.
func BlankText(width, height int, fill rune) (*Text, error) {
	if height < 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidSize, height)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidSize, width)
	}
	return NewText(strings.Repeat(string(fill), width*height), width)
}

// Size returns the declared width and the inferred height. The zero Text
// has no cells.
func (t *Text) Size() (width, height int) {
	if t.width == 0 {
		return 0, 0
	}
	return t.width, len(t.cells) / t.width
}

func (t *Text) offset(p core.Point) (int, error) {
	width, height := t.Size()
	if err := CheckBounds(p, width, height); err != nil {
		return 0, err
	}
	return p.Y*t.width + p.X, nil
}

// Get returns the character at p.
func (t *Text) Get(p core.Point) (rune, error) {
	i, err := t.offset(p)
	if err != nil {
		return 0, err
	}
	return t.cells[i], nil
}

// Set places r at p. r must be a single-column character.
func (t *Text) Set(p core.Point, r rune) error {
	i, err := t.offset(p)
	if err != nil {
		return err
	}
	if err := CheckRune(r); err != nil {
		return err
	}
	t.cells[i] = r
	return nil
}

// String returns the flat contents without row separators.
func (t *Text) String() string {
	return string(t.cells)
}

// WriteTo renders the grid to w, one line per row.
func (t *Text) WriteTo(w io.Writer) (int64, error) {
	_, height := t.Size()
	return WriteRows(w, height, func(buf []byte, y int) []byte {
		for _, r := range t.cells[y*t.width : (y+1)*t.width] {
			buf = utf8.AppendRune(buf, r)
		}
		return buf
	})
}
