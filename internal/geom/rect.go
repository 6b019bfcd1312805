package geom

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned, half-open world-space rectangle [Min, Max).
type Rect struct {
	Min, Max mgl64.Vec2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() < r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() < r.Max.Y()
}

// GridRect returns the world-space area covered by the whole grid, border ring included.
func GridRect() Rect {
	return Rect{
		Min: CellRect(0, GridRows-1).Min,
		Max: CellRect(GridCols-1, 0).Max,
	}
}
