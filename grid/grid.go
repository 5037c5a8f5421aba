// Package grid maps between surface coordinates and cell indices of a centered grid
package grid

import (
	"math"

	"github.com/lixenwraith/gridsketch/config"
)

// Geometry describes a grid centered on a drawing surface
// Cell indices are row-major: row*Columns + col
// Grid-local coordinates have the grid's top-left corner at the origin
type Geometry struct {
	Columns int
	Rows    int
	CellW   float64
	CellH   float64

	// OffsetX, OffsetY place the grid's top-left corner in surface space
	OffsetX float64
	OffsetY float64
}

// New builds a geometry centered on a surfaceW x surfaceH surface
// Non-positive dimensions produce an empty grid
func New(columns, rows int, cellW, cellH, surfaceW, surfaceH float64) Geometry {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	if !(cellW > 0) || !(cellH > 0) {
		columns, rows = 0, 0
		cellW, cellH = 0, 0
	}

	g := Geometry{
		Columns: columns,
		Rows:    rows,
		CellW:   cellW,
		CellH:   cellH,
	}
	g.OffsetX = (surfaceW - g.Width()) / 2
	g.OffsetY = (surfaceH - g.Height()) / 2
	return g
}

// FromConfig derives square cells from the cell size percentage of the smaller surface side
func FromConfig(cfg config.Config, surfaceW, surfaceH float64) Geometry {
	side := math.Min(surfaceW, surfaceH) * cfg.CellSizePercent / 100
	return New(cfg.Columns, cfg.Rows, side, side, surfaceW, surfaceH)
}

// Count is the number of cells
func (g Geometry) Count() int {
	return g.Columns * g.Rows
}

// Width is the grid width in surface units
func (g Geometry) Width() float64 {
	return float64(g.Columns) * g.CellW
}

// Height is the grid height in surface units
func (g Geometry) Height() float64 {
	return float64(g.Rows) * g.CellH
}

// CellSize is the smaller cell edge, used to scale per-cell decorations
func (g Geometry) CellSize() float64 {
	return math.Min(g.CellW, g.CellH)
}

// Index returns the cell index for (col, row), or -1 outside the grid
func (g Geometry) Index(col, row int) int {
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return -1
	}
	return row*g.Columns + col
}

// ColRow splits an index into column and row
// Out-of-range indices are the caller's responsibility
func (g Geometry) ColRow(index int) (col, row int) {
	if g.Columns <= 0 {
		return 0, 0
	}
	return index % g.Columns, index / g.Columns
}

// Contains reports whether index addresses a cell
func (g Geometry) Contains(index int) bool {
	return index >= 0 && index < g.Count()
}

// CellAt converts a surface point to a cell index
func (g Geometry) CellAt(x, y float64) (int, bool) {
	return g.CellAtLocal(g.ToLocal(x, y))
}

// CellAtLocal converts a grid-local point to a cell index
func (g Geometry) CellAtLocal(x, y float64) (int, bool) {
	if g.Count() == 0 || math.IsNaN(x) || math.IsNaN(y) {
		return -1, false
	}
	fc := math.Floor(x / g.CellW)
	fr := math.Floor(y / g.CellH)
	if fc < 0 || fc >= float64(g.Columns) || fr < 0 || fr >= float64(g.Rows) {
		return -1, false
	}
	return int(fr)*g.Columns + int(fc), true
}

// Anchor is the cell's bottom-right corner in grid-local coordinates
// Circles, glows, connector endpoints and attractors sit here, not at the center
func (g Geometry) Anchor(index int) (x, y float64) {
	col, row := g.ColRow(index)
	return float64(col+1) * g.CellW, float64(row+1) * g.CellH
}

// Origin is the cell's top-left corner in grid-local coordinates
func (g Geometry) Origin(index int) (x, y float64) {
	col, row := g.ColRow(index)
	return float64(col) * g.CellW, float64(row) * g.CellH
}

// Center is the cell's midpoint in grid-local coordinates
func (g Geometry) Center(index int) (x, y float64) {
	ox, oy := g.Origin(index)
	return ox + g.CellW/2, oy + g.CellH/2
}

// ToLocal converts surface coordinates to grid-local
func (g Geometry) ToLocal(x, y float64) (float64, float64) {
	return x - g.OffsetX, y - g.OffsetY
}
