package art

import (
	"grux/core"
	"grux/grid"
)

// FillRect is a solid width × height block of a single value.
//
// If you want to draw only the outline of a rectangle, see BorderRect.
type FillRect[T any] struct {
	width  int
	height int
	fill   T
}

// NewFillRect configures a filled rectangle. A zero width or height draws
// nothing; negative dimensions are rejected.
func NewFillRect[T any](width, height int, fill T) (*FillRect[T], error) {
	if width < 0 || height < 0 {
		return nil, &grid.ShapeError{Shape: "fill rect", Width: width, Height: height, Reason: "dimensions must not be negative"}
	}
	return &FillRect[T]{width: width, height: height, fill: fill}, nil
}

func (f *FillRect[T]) Width() int  { return f.width }
func (f *FillRect[T]) Height() int { return f.height }

// Draw fills the block row by row, starting at origin.
func (f *FillRect[T]) Draw(g grid.Writer[T], origin core.Point) error {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if err := g.Set(origin.Add(x, y), f.fill); err != nil {
				return err
			}
		}
	}
	return nil
}
