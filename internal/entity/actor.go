// Package entity provides the player actor driven by the motion integrator.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/chunkrunner/internal/geom"
)

// StartX and StartY are the actor's spawn position in the first chunk.
const (
	StartX = 200.0
	StartY = -100.0
)

// Actor is the single player-controlled body.
// Position is the top-left corner of an ActorSize footprint, in local world units
// of the currently materialized chunk.
type Actor struct {
	Position  mgl64.Vec2
	Velocity  mgl64.Vec2
	Remainder mgl64.Vec2 // Sub-pixel carry, each axis within [-0.5, 0.5] between frames
	OnGround  bool
	Inside    bool // Footprint lies inside the current chunk's playfield
	Symbol    rune // Display symbol
}

// NewActor creates an airborne actor at the given position.
func NewActor(x, y float64) *Actor {
	return &Actor{
		Position: mgl64.Vec2{x, y},
		Inside:   true,
		Symbol:   '@',
	}
}

// Move translates the actor by the given delta.
func (a *Actor) Move(dx, dy float64) {
	a.Position = a.Position.Add(mgl64.Vec2{dx, dy})
}

// Footprint returns the world-space box the actor occupies.
func (a *Actor) Footprint() geom.Rect {
	return geom.Rect{
		Min: mgl64.Vec2{a.Position.X(), a.Position.Y() - geom.ActorSize},
		Max: mgl64.Vec2{a.Position.X() + geom.ActorSize, a.Position.Y()},
	}
}
