package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/chunkrunner/internal/geom"
)

// ChunkPosition addresses a chunk of the infinite world in chunk units.
// Y grows downward, following grid row order.
type ChunkPosition struct {
	X, Y int
}

// Add returns the component-wise sum of two chunk positions.
func (p ChunkPosition) Add(d ChunkPosition) ChunkPosition {
	return ChunkPosition{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero returns true for the (0, 0) offset.
func (p ChunkPosition) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// cell is one grid slot. ok is false for an empty, passable cell.
type cell struct {
	tile Tile
	ok   bool
}

// Grid is the materialized window onto the infinite world: a fixed-size tile
// array, the relation from cells to presentation handles, and the chunk the
// window currently shows.
type Grid struct {
	cells       [geom.GridRows][geom.GridCols]cell
	Renderables RenderTable
	Origin      ChunkPosition
}

// NewGrid creates an empty grid at chunk (0, 0).
func NewGrid() *Grid {
	return &Grid{}
}

// inBounds reports whether (col, row) addresses a grid cell.
func inBounds(col, row int) bool {
	return col >= 0 && col < geom.GridCols && row >= 0 && row < geom.GridRows
}

// TileAt returns the tile at the given cell.
// Out-of-range cells are reported as empty.
func (g *Grid) TileAt(col, row int) (Tile, bool) {
	if !inBounds(col, row) {
		return Tile{}, false
	}
	c := g.cells[row][col]
	return c.tile, c.ok
}

// Set places a tile in the given cell. Out-of-range cells are ignored.
// Renderables are not touched; callers keep them paired.
func (g *Grid) Set(col, row int, t Tile) {
	if !inBounds(col, row) {
		return
	}
	g.cells[row][col] = cell{tile: t, ok: true}
}

// Clear empties the given cell. Out-of-range cells are ignored.
func (g *Grid) Clear(col, row int) {
	if !inBounds(col, row) {
		return
	}
	g.cells[row][col] = cell{}
}

// CollidesAt returns true if the world-space point lies in an occupied cell.
// This is the only collision primitive; nothing else reads cells for solidity.
func (g *Grid) CollidesAt(p mgl64.Vec2) bool {
	col, row := geom.WorldToCell(p)
	_, ok := g.TileAt(col, row)
	return ok
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].ok {
				n++
			}
		}
	}
	return n
}

// PairingConsistent returns true if every occupied cell has a handle and every
// handle belongs to an occupied cell.
func (g *Grid) PairingConsistent() bool {
	for row := range g.cells {
		for col := range g.cells[row] {
			_, bound := g.Renderables.HandleAt(col, row)
			if bound != g.cells[row][col].ok {
				return false
			}
		}
	}
	return true
}
