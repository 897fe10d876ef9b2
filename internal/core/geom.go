// Package core provides fundamental types and utilities shared by the game and its hosts.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine) to keep
// game logic pure and testable.
package core

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns a box of the given half extents centered on c.
func RectAround(c Point, halfW, halfH float64) Rect {
	return Rect{X: c.X - halfW, Y: c.Y - halfH, W: 2 * halfW, H: 2 * halfH}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ContainsStrict reports whether p lies strictly inside r.
// Points on any edge are outside.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// CellRect is an axis-aligned rectangle on the cell grid.
type CellRect struct {
	X, Y int
	W, H int
}

// NewCellRect creates a new cell rectangle.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
