// Package core contains the coordinate types shared by every grux package.
package core

import "fmt"

// Point represents a cell coordinate: X is the column, Y is the row.
// The origin (0,0) is the top-left cell.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx columns and dy rows.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds represents a rectangular area. Min is inclusive, Max is exclusive.
type Bounds struct {
	Min, Max Point
}

// Rect returns the bounds of a width × height block anchored at origin.
func Rect(origin Point, width, height int) Bounds {
	return Bounds{Min: origin, Max: origin.Add(width, height)}
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Empty reports whether the bounds contain no cells.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
