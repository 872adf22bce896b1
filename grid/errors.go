package grid

import (
	"errors"
	"fmt"
	"grux/core"
)

// Common errors
var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrInvalidShape = errors.New("invalid shape")
	ErrInvalidSize  = errors.New("invalid grid size")
	ErrInvalidCell  = errors.New("invalid cell value")
)

// OutOfBoundsError reports a write or read outside a grid. Width is the width
// of the addressed row, which differs from the grid width only for jagged Rows.
type OutOfBoundsError struct {
	Point  core.Point
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %v not within %dx%d", ErrOutOfBounds, e.Point, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfBounds) hold.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ShapeError reports a shape configured with dimensions it cannot be drawn at.
type ShapeError struct {
	Shape  string
	Width  int
	Height int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s %dx%d: %s", ErrInvalidShape, e.Shape, e.Width, e.Height, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidShape) hold.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// CheckBounds returns an *OutOfBoundsError unless 0 <= p.X < width and
// 0 <= p.Y < height.
func CheckBounds(p core.Point, width, height int) error {
	if !core.Rect(core.Point{}, width, height).Contains(p) {
		return &OutOfBoundsError{Point: p, Width: width, Height: height}
	}
	return nil
}
