package core

import "math"

// Viewport maps world coordinates onto a cell grid of a different size.
// The world keeps its fixed logical dimensions; only the projection changes
// when the terminal is resized.
type Viewport struct {
	worldW, worldH float64
	cellsW, cellsH int
}

// NewViewport creates a projection from a worldW×worldH world onto a
// cellsW×cellsH grid.
func NewViewport(worldW, worldH float64, cellsW, cellsH int) Viewport {
	v := Viewport{worldW: worldW, worldH: worldH}
	v.Resize(cellsW, cellsH)
	return v
}

// Resize updates the grid size while keeping the world size.
func (v *Viewport) Resize(cellsW, cellsH int) {
	v.cellsW = Max(cellsW, 1)
	v.cellsH = Max(cellsH, 1)
}

// CellsW returns the grid width.
func (v Viewport) CellsW() int {
	return v.cellsW
}

// CellsH returns the grid height.
func (v Viewport) CellsH() int {
	return v.cellsH
}

// ToCell projects a world point to the cell containing it.
func (v Viewport) ToCell(p Point) (int, int) {
	return int(math.Floor(v.scaleX(p.X))), int(math.Floor(v.scaleY(p.Y)))
}

// ToCellRect projects a world rectangle to the cells it covers.
// Non-empty rectangles always cover at least one cell.
func (v Viewport) ToCellRect(r Rect) CellRect {
	x0, y0 := v.ToCell(Point{X: r.X, Y: r.Y})
	x1 := int(math.Ceil(v.scaleX(r.Right())))
	y1 := int(math.Ceil(v.scaleY(r.Bottom())))
	return CellRect{X: x0, Y: y0, W: Max(x1-x0, 1), H: Max(y1-y0, 1)}
}

// Multiplying before dividing keeps grid-aligned world values exact.
func (v Viewport) scaleX(x float64) float64 {
	return x * float64(v.cellsW) / v.worldW
}

func (v Viewport) scaleY(y float64) float64 {
	return y * float64(v.cellsH) / v.worldH
}
