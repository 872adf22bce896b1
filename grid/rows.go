package grid

import (
	"grux/core"
	"io"
)

// Rows is a growable grid backed by a slice of rows. The outer slice holds
// rows top to bottom; each inner slice holds that row's cells. Rows may have
// different lengths, so the valid columns of row y are 0..len(r[y])-1.
//
// Converting a caller's [][]T to Rows does not copy it:
//
//	cells := [][]rune{[]rune("ab"), []rune("c")}
//	g := grid.Rows[rune](cells)
//	g.Set(core.Point{X: 1, Y: 1}, 'd') // out of bounds: row 1 has one cell
type Rows[T any] [][]T

// Size returns the length of the widest row and the number of rows.
func (r Rows[T]) Size() (width, height int) {
	for _, row := range r {
		width = max(width, len(row))
	}
	return width, len(r)
}

// check validates p against the row it addresses. The reported width is the
// length of that row, or of the widest row when p.Y itself is out of range.
func (r Rows[T]) check(p core.Point) error {
	if p.Y < 0 || p.Y >= len(r) {
		width, height := r.Size()
		return &OutOfBoundsError{Point: p, Width: width, Height: height}
	}
	return CheckBounds(p, len(r[p.Y]), len(r))
}

// Get returns the cell at p.
func (r Rows[T]) Get(p core.Point) (T, error) {
	if err := r.check(p); err != nil {
		var zero T
		return zero, err
	}
	return r[p.Y][p.X], nil
}

// Set places v at p. It never grows the grid; see Grow.
func (r Rows[T]) Set(p core.Point, v T) error {
	if err := r.check(p); err != nil {
		return err
	}
	r[p.Y][p.X] = v
	return nil
}

// Grow places v at p, first appending rows and extending row p.Y with fill
// until p is addressable. Negative coordinates cannot be grown into and
// return an *OutOfBoundsError.
func (r *Rows[T]) Grow(p core.Point, v, fill T) error {
	if p.X < 0 || p.Y < 0 {
		width, height := r.Size()
		return &OutOfBoundsError{Point: p, Width: width, Height: height}
	}

	for len(*r) <= p.Y {
		*r = append(*r, nil)
	}
	row := (*r)[p.Y]
	for len(row) <= p.X {
		row = append(row, fill)
	}
	row[p.X] = v
	(*r)[p.Y] = row

	return nil
}

// WriteTo renders the grid to w. Each row is written at its own length;
// short rows are not padded.
func (r Rows[T]) WriteTo(w io.Writer) (int64, error) {
	return WriteRows(w, len(r), func(buf []byte, y int) []byte {
		for _, v := range r[y] {
			buf = AppendCell(buf, v)
		}
		return buf
	})
}
