// Package art draws reusable shapes (filled rectangles, bordered rectangles
// and lines) onto any grid.Writer.
//
// Shapes hold only their dimensions and glyphs. They never keep a reference
// to a grid, so one shape value can be stamped onto any number of grids.
//
// Drawing is not atomic: a shape that runs off the edge of a grid returns the
// first *grid.OutOfBoundsError it hits, and the cells written before that
// point stay written.
package art

import (
	"fmt"
	"grux/core"
	"grux/grid"
)

// Sprite is a shape that can be stamped onto a grid.
type Sprite[T any] interface {
	// Width returns the number of columns the sprite covers.
	Width() int
	// Height returns the number of rows the sprite covers.
	Height() int
	// Draw writes the sprite onto g with its top-left cell at origin.
	Draw(g grid.Writer[T], origin core.Point) error
}

// Bounds returns the area s covers when drawn at origin.
func Bounds[T any](s Sprite[T], origin core.Point) core.Bounds {
	return core.Rect(origin, s.Width(), s.Height())
}

// Placement pairs a sprite with the origin it is drawn at.
type Placement[T any] struct {
	Sprite Sprite[T]
	Origin core.Point
}

// DrawAll draws the placements in order and stops at the first error.
func DrawAll[T any](g grid.Writer[T], placements ...Placement[T]) error {
	for i, p := range placements {
		if err := p.Sprite.Draw(g, p.Origin); err != nil {
			return fmt.Errorf("placement %d at %v: %w", i, p.Origin, err)
		}
	}
	return nil
}
