package art

import (
	"grux/core"
	"grux/grid"
)

// Orientation is the direction a Line is drawn in.
type Orientation int

const (
	// Horizontal lines run left to right.
	Horizontal Orientation = iota
	// Vertical lines run top to bottom.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Line is a straight run of one value.
type Line[T any] struct {
	length      int
	value       T
	orientation Orientation
}

// HorizontalLine configures a line of length cells running rightward.
func HorizontalLine[T any](length int, value T) (*Line[T], error) {
	return newLine(length, value, Horizontal)
}

// VerticalLine configures a line of length cells running downward.
func VerticalLine[T any](length int, value T) (*Line[T], error) {
	return newLine(length, value, Vertical)
}

func newLine[T any](length int, value T, o Orientation) (*Line[T], error) {
	if length < 0 {
		shape := o.String() + " line"
		if o == Horizontal {
			return nil, &grid.ShapeError{Shape: shape, Width: length, Height: 1, Reason: "length must not be negative"}
		}
		return nil, &grid.ShapeError{Shape: shape, Width: 1, Height: length, Reason: "length must not be negative"}
	}
	return &Line[T]{length: length, value: value, orientation: o}, nil
}

// Orientation returns the direction of the line.
func (l *Line[T]) Orientation() Orientation {
	return l.orientation
}

func (l *Line[T]) Width() int {
	if l.orientation == Vertical {
		return 1
	}
	return l.length
}

func (l *Line[T]) Height() int {
	if l.orientation == Vertical {
		return l.length
	}
	return 1
}

// Draw writes the line starting at origin.
func (l *Line[T]) Draw(g grid.Writer[T], origin core.Point) error {
	for i := 0; i < l.length; i++ {
		p := origin.Add(i, 0)
		if l.orientation == Vertical {
			p = origin.Add(0, i)
		}
		if err := g.Set(p, l.value); err != nil {
			return err
		}
	}
	return nil
}
