package geom

import "github.com/go-gl/mathgl/mgl64"

// Projection maps world space onto a character-cell screen, one screen cell per
// tile. Offset is the screen cell where grid cell (0, 0) is drawn.
type Projection struct {
	OffsetX, OffsetY int
}

// WorldToScreen returns the screen cell for a world-space point.
func (p Projection) WorldToScreen(w mgl64.Vec2) (x, y int) {
	col, row := WorldToCell(w)
	return col + p.OffsetX, row + p.OffsetY
}

// ScreenToWorld returns the world-space center of the tile under a screen cell.
func (p Projection) ScreenToWorld(x, y int) mgl64.Vec2 {
	return CellRect(x-p.OffsetX, y-p.OffsetY).Center()
}
