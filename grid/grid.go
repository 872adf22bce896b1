// Package grid provides the two capabilities every grux container offers,
// writing single cells and rendering to text, and adapters for the common
// 2D containers: fixed arrays, growable row slices and flat strings.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward (columns)
//   - Y increases downward (rows)
//
// Adapters wrap storage owned by the caller. None of them lock; callers must
// serialize writers sharing one grid.
package grid

import (
	"grux/core"
	"io"
	"strings"
)

// Writer sets single cells of a grid.
type Writer[T any] interface {
	// Set writes v at p. It returns an *OutOfBoundsError if p lies outside
	// the grid; nothing is written in that case.
	Set(p core.Point, v T) error
}

// Reader returns single cells of a grid.
type Reader[T any] interface {
	Get(p core.Point) (T, error)
}

// Sized reports the dimensions of a grid.
type Sized interface {
	Size() (width, height int)
}

// Display renders a grid as text. Rows are written top to bottom, cells left
// to right, and every row (the last one included) ends with "\n". Errors from
// the destination writer are returned unchanged.
type Display interface {
	io.WriterTo
}

// Grid is the full set of capabilities implemented by the built-in adapters.
type Grid[T any] interface {
	Writer[T]
	Reader[T]
	Sized
	Display
}

// String renders d into a new string.
func String(d Display) (string, error) {
	var sb strings.Builder
	if _, err := d.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
