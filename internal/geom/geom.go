// Package geom provides the tile-grid geometry shared by the world, physics and
// streaming packages: grid dimensions, world/cell conversion and small vector helpers.
//
// World space is measured in pixels with the y axis pointing up. Grid rows grow
// downward, so converting between the two flips the vertical axis.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// TileSize is the edge length of one grid cell in world units.
	TileSize = 8

	// GridCols and GridRows are the dimensions of the materialized grid,
	// including the one-cell border ring.
	GridCols = 40
	GridRows = 23

	// PlayCols and PlayRows are the dimensions of the usable playfield.
	PlayCols = GridCols - 2
	PlayRows = GridRows - 2

	// ChunkCols and ChunkRows are the chunk stride in tiles. Neighbouring chunks
	// share one seam column/row, so the stride is one more than the playfield.
	ChunkCols = PlayCols + 1
	ChunkRows = PlayRows + 1

	// ChunkWidth and ChunkHeight are the chunk stride in world units.
	ChunkWidth  = ChunkCols * TileSize
	ChunkHeight = ChunkRows * TileSize

	// ActorSize is the width and height of the actor footprint.
	ActorSize = 8
)

// Vec is shorthand for building a world-space vector.
func Vec(x, y float64) mgl64.Vec2 {
	return mgl64.Vec2{x, y}
}

// WorldToCell returns the grid cell containing a world-space point.
// The result may lie outside the grid; callers bounds-check.
func WorldToCell(p mgl64.Vec2) (col, row int) {
	col = int(math.Floor(p.X() / TileSize))
	row = -int(math.Floor(p.Y() / TileSize))
	return col, row
}

// CellRect returns the world-space area covered by a grid cell.
func CellRect(col, row int) Rect {
	minX := float64(col * TileSize)
	minY := float64(-row * TileSize)
	return Rect{
		Min: mgl64.Vec2{minX, minY},
		Max: mgl64.Vec2{minX + TileSize, minY + TileSize},
	}
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Round rounds both components to the nearest integer, halves away from zero.
func Round(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Round(v.X()), math.Round(v.Y())}
}
