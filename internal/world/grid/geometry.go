// Package grid provides cell geometry for square-tiled maps.
// Positions are (row, column) pairs; pixels are (x, y) with y growing downward.
package grid

import "fmt"

// Position identifies a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position offset by o.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// String formats the position as (row, col).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Unit offsets for the four cardinal moves.
var (
	OffsetUp    = Position{Row: -1}
	OffsetDown  = Position{Row: 1}
	OffsetLeft  = Position{Col: -1}
	OffsetRight = Position{Col: 1}
)

// BBox is an axis-aligned pixel rectangle.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the box width in pixels.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the box height in pixels.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Geometry maps grid positions to pixel space.
type Geometry struct {
	Rows       int
	Cols       int
	CellWidth  int
	CellHeight int

	// OriginX and OriginY offset the whole grid on screen.
	OriginX float64
	OriginY float64
}

// NewGeometry creates a geometry for a rows x cols grid drawn into a
// width x height pixel area.
func NewGeometry(rows, cols, width, height int) Geometry {
	g := Geometry{Rows: rows, Cols: cols}
	if cols > 0 {
		g.CellWidth = width / cols
	}
	if rows > 0 {
		g.CellHeight = height / rows
	}
	return g
}

// Size returns the pixel width and height covered by the grid.
func (g Geometry) Size() (width, height int) {
	return g.Cols * g.CellWidth, g.Rows * g.CellHeight
}

// Contains reports whether p lies inside the grid.
func (g Geometry) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// BBox returns the pixel bounding box of the cell at p.
func (g Geometry) BBox(p Position) BBox {
	minX := g.OriginX + float64(p.Col*g.CellWidth)
	minY := g.OriginY + float64(p.Row*g.CellHeight)
	return BBox{
		MinX: minX,
		MinY: minY,
		MaxX: minX + float64(g.CellWidth),
		MaxY: minY + float64(g.CellHeight),
	}
}

// Center returns the pixel centre of the cell at p.
func (g Geometry) Center(p Position) (x, y float64) {
	x = g.OriginX + float64(p.Col*g.CellWidth+g.CellWidth/2)
	y = g.OriginY + float64(p.Row*g.CellHeight+g.CellHeight/2)
	return x, y
}

// PixelToPosition converts a pixel coordinate to the cell containing it.
// The result may lie outside the grid; check it with Contains.
func (g Geometry) PixelToPosition(x, y int) Position {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return Position{Row: -1, Col: -1}
	}
	px := x - int(g.OriginX)
	py := y - int(g.OriginY)
	return Position{Row: floorDiv(py, g.CellHeight), Col: floorDiv(px, g.CellWidth)}
}

// floorDiv rounds toward negative infinity so pixels left of the origin
// map to negative cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
