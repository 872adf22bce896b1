package grid

import (
	"fmt"
	"grux/core"
	"io"
)

// Array is a fixed-size rectangular grid. Its width and height are set at
// construction and never change; every row has exactly width cells.
//
// Performance Characteristics:
//   - Set/Get: O(1)
//   - Fill: O(width × height)
//   - WriteTo: O(width × height)
type Array[T any] struct {
	cells  [][]T
	width  int
	height int
}

// NewArray creates a width × height grid with every cell set to fill.
func NewArray[T any](width, height int, fill T) (*Array[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cells := make([][]T, height)
	for y := range cells {
		cells[y] = make([]T, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}

	return &Array[T]{cells: cells, width: width, height: height}, nil
}

// ArrayOf wraps rows without copying them. Writes through the returned Array
// are visible in rows. All rows must have the same length.
func ArrayOf[T any](rows [][]T) (*Array[T], error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrInvalidSize, y, len(row), width)
		}
	}
	return &Array[T]{cells: rows, width: width, height: len(rows)}, nil
}

// Size returns the width and height of the grid.
func (a *Array[T]) Size() (width, height int) {
	return a.width, a.height
}

// Rows returns direct access to the underlying rows.
func (a *Array[T]) Rows() [][]T {
	return a.cells
}

// Get returns the cell at p.
func (a *Array[T]) Get(p core.Point) (T, error) {
	if err := CheckBounds(p, a.width, a.height); err != nil {
		var zero T
		return zero, err
	}
	return a.cells[p.Y][p.X], nil
}

// Set places v at p.
func (a *Array[T]) Set(p core.Point, v T) error {
	if err := CheckBounds(p, a.width, a.height); err != nil {
		return err
	}
	a.cells[p.Y][p.X] = v
	return nil
}

// Fill sets every cell to v.
func (a *Array[T]) Fill(v T) {
	for y := range a.cells {
		for x := range a.cells[y] {
			a.cells[y][x] = v
		}
	}
}

// WriteTo renders the grid to w, one line per row.
func (a *Array[T]) WriteTo(w io.Writer) (int64, error) {
	return WriteRows(w, a.height, func(buf []byte, y int) []byte {
		for _, v := range a.cells[y] {
			buf = AppendCell(buf, v)
		}
		return buf
	})
}
