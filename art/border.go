package art

import (
	"grux/core"
	"grux/grid"
)

// Glyph positions within the array passed to NewBorderRect.
const (
	TopLeft = iota
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

// BorderRect is the outline of a rectangle. Interior cells are never written.
type BorderRect[T any] struct {
	width  int
	height int
	glyphs [8]T
}

// NewBorderRect configures a bordered rectangle. The glyphs are ordered
// top-left corner, top edge, top-right corner, left edge, right edge,
// bottom-left corner, bottom edge, bottom-right corner (see the TopLeft ...
// BottomRight constants). Both dimensions must be at least 2.
func NewBorderRect[T any](width, height int, glyphs [8]T) (*BorderRect[T], error) {
	if width < 2 || height < 2 {
		return nil, &grid.ShapeError{Shape: "border rect", Width: width, Height: height, Reason: "width and height must be at least 2"}
	}
	return &BorderRect[T]{width: width, height: height, glyphs: glyphs}, nil
}

func (b *BorderRect[T]) Width() int  { return b.width }
func (b *BorderRect[T]) Height() int { return b.height }

// Glyph returns the glyph at position i (TopLeft ... BottomRight).
func (b *BorderRect[T]) Glyph(i int) T {
	return b.glyphs[i]
}

// Draw writes the outline row by row: the top edge with its corners, the left
// and right sides, then the bottom edge with its corners.
func (b *BorderRect[T]) Draw(g grid.Writer[T], origin core.Point) error {
	last := b.width - 1

	if err := b.edge(g, origin, b.glyphs[TopLeft], b.glyphs[Top], b.glyphs[TopRight]); err != nil {
		return err
	}

	for y := 1; y < b.height-1; y++ {
		if err := g.Set(origin.Add(0, y), b.glyphs[Left]); err != nil {
			return err
		}
		if err := g.Set(origin.Add(last, y), b.glyphs[Right]); err != nil {
			return err
		}
	}

	bottom := origin.Add(0, b.height-1)
	return b.edge(g, bottom, b.glyphs[BottomLeft], b.glyphs[Bottom], b.glyphs[BottomRight])
}

// edge draws one horizontal edge starting at start: a corner, width-2 edge
// glyphs and the closing corner.
func (b *BorderRect[T]) edge(g grid.Writer[T], start core.Point, first, middle, end T) error {
	if err := g.Set(start, first); err != nil {
		return err
	}
	for x := 1; x < b.width-1; x++ {
		if err := g.Set(start.Add(x, 0), middle); err != nil {
			return err
		}
	}
	return g.Set(start.Add(b.width-1, 0), end)
}
