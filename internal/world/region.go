package world

import "github.com/samdwyer/chunkrunner/internal/geom"

// Region is a half-open rectangle of grid cells [MinCol, MaxCol) × [MinRow, MaxRow).
type Region struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// FullRegion covers the whole grid, border ring included.
func FullRegion() Region {
	return Region{MaxCol: geom.GridCols, MaxRow: geom.GridRows}
}

// clip limits the region to the grid.
func (r Region) clip() Region {
	return Region{
		MinCol: max(r.MinCol, 0),
		MinRow: max(r.MinRow, 0),
		MaxCol: min(r.MaxCol, geom.GridCols),
		MaxRow: min(r.MaxRow, geom.GridRows),
	}
}

// Empty returns true if the region covers no cells.
func (r Region) Empty() bool {
	return r.MinCol >= r.MaxCol || r.MinRow >= r.MaxRow
}

// Cells returns the number of cells in the region.
func (r Region) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxCol - r.MinCol) * (r.MaxRow - r.MinRow)
}

// each calls fn for every in-grid cell of the region in row-major order.
func (r Region) each(fn func(col, row int)) {
	c := r.clip()
	for row := c.MinRow; row < c.MaxRow; row++ {
		for col := c.MinCol; col < c.MaxCol; col++ {
			fn(col, row)
		}
	}
}
