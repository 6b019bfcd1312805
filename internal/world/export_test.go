package world

import "github.com/samdwyer/chunkrunner/internal/geom"

// SetHandleSource replaces the handle minting function. Nil is ignored.
func (q *CommandQueue) SetHandleSource(src HandleSource) {
	if src != nil {
		q.newHandle = src
	}
}

// Occupancy returns a snapshot of which cells hold a tile.
func (g *Grid) Occupancy() [geom.GridRows][geom.GridCols]bool {
	var occ [geom.GridRows][geom.GridCols]bool
	for row := range g.cells {
		for col := range g.cells[row] {
			occ[row][col] = g.cells[row][col].ok
		}
	}
	return occ
}
