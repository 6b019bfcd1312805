// Package physics advances the player actor through the tile grid one frame at a
// time: intent to velocity, gravity, jump, sub-pixel accumulation and
// axis-separated unit stepping against a point collision query.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Intent is the per-frame input contract.
type Intent struct {
	MoveX       int  // -1 left, 0 none, 1 right
	JumpPressed bool // True only on the frame the jump input went down
}

// CollisionQuery answers whether a world-space point is solid.
type CollisionQuery interface {
	CollidesAt(p mgl64.Vec2) bool
}

// QueryFunc adapts a plain function to CollisionQuery.
type QueryFunc func(p mgl64.Vec2) bool

// CollidesAt calls f(p).
func (f QueryFunc) CollidesAt(p mgl64.Vec2) bool {
	return f(p)
}

// clampMove limits a move intent to -1, 0 or 1.
func clampMove(x int) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
