package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/chunkrunner/internal/entity"
	"github.com/samdwyer/chunkrunner/internal/geom"
)

// Config holds the movement tuning.
type Config struct {
	Speed         float64 // Horizontal speed, world units per second
	Gravity       float64 // Vertical acceleration, world units per second squared (negative is down)
	JumpImpulse   float64 // Vertical velocity set by a jump
	FootprintSize float64 // Width and height of the collision footprint
}

// DefaultConfig returns the standard platformer tuning.
func DefaultConfig() Config {
	return Config{
		Speed:         100,
		Gravity:       -1000,
		JumpImpulse:   300,
		FootprintSize: geom.ActorSize,
	}
}

// StepResult describes what happened to the actor during one Step.
type StepResult struct {
	MovedX, MovedY     int  // Whole units actually travelled
	BlockedX, BlockedY bool // A unit step was refused on that axis
	Landed             bool // A downward step was refused
	Jumped             bool // A jump started this frame
}

// Integrator advances an actor one frame at a time.
// It holds no per-actor state, so the same input sequence always replays the same motion.
type Integrator struct {
	cfg Config
}

// NewIntegrator creates an integrator with the given tuning.
func NewIntegrator(cfg Config) *Integrator {
	return &Integrator{cfg: cfg}
}

// Config returns the integrator's tuning.
func (in *Integrator) Config() Config {
	return in.cfg
}

// Step advances the actor by dt seconds. Non-positive dt leaves the actor untouched.
//
// X is resolved fully before Y. Each axis moves one world unit at a time and
// tests both footprint edges before committing a step; the first refused step
// zeroes that axis's velocity and drops the rest of the frame's displacement.
func (in *Integrator) Step(a *entity.Actor, q CollisionQuery, intent Intent, dt float64) StepResult {
	var res StepResult
	if dt <= 0 {
		return res
	}

	a.Velocity[0] = clampMove(intent.MoveX) * in.cfg.Speed
	a.Velocity[1] += in.cfg.Gravity * dt

	if a.OnGround && intent.JumpPressed {
		a.Velocity[1] = in.cfg.JumpImpulse
		a.OnGround = false
		res.Jumped = true
	}

	a.Remainder = a.Remainder.Add(a.Velocity.Mul(dt))
	mov := geom.Round(a.Remainder)
	a.Remainder = a.Remainder.Sub(mov)

	pos := a.Position
	res.MovedX, res.BlockedX = in.stepX(a, q, &pos, mov.X())
	res.MovedY, res.BlockedY = in.stepY(a, q, &pos, mov.Y())
	res.Landed = res.BlockedY && mov.Y() < 0

	a.Position = pos
	return res
}

// stepX moves pos horizontally one unit at a time.
// Collision checks sit one unit ahead of the leading edge, at the top and bottom of the footprint.
func (in *Integrator) stepX(a *entity.Actor, q CollisionQuery, pos *mgl64.Vec2, mov float64) (int, bool) {
	size := in.cfg.FootprintSize
	sign := geom.Sign(mov)
	offset := 0.0
	if sign > 0 {
		offset = size
	}

	moved := 0
	for mov != 0 {
		edgeX := pos.X() + sign + offset
		if q.CollidesAt(mgl64.Vec2{edgeX, pos.Y()}) || q.CollidesAt(mgl64.Vec2{edgeX, pos.Y() - size}) {
			a.Velocity[0] = 0
			return moved, true
		}
		pos[0] += sign
		mov -= sign
		moved += int(sign)
	}
	return moved, false
}

// stepY moves pos vertically one unit at a time.
// Collision checks sit one unit beyond the leading edge, at the left and right of the footprint.
func (in *Integrator) stepY(a *entity.Actor, q CollisionQuery, pos *mgl64.Vec2, mov float64) (int, bool) {
	size := in.cfg.FootprintSize
	sign := geom.Sign(mov)
	offset := 0.0
	if sign < 0 {
		offset = -size
	}

	moved := 0
	for mov != 0 {
		// Cells beyond the grid read as empty; falling there would drop the
		// actor out of the world before the streamer materializes it.
		if leavingGrid(a.Velocity.X(), pos.X()) {
			break
		}
		edgeY := pos.Y() + sign + offset
		if q.CollidesAt(mgl64.Vec2{pos.X(), edgeY}) || q.CollidesAt(mgl64.Vec2{pos.X() + size, edgeY}) {
			if sign < 0 {
				a.OnGround = true
			}
			a.Velocity[1] = 0
			return moved, true
		}
		pos[1] += sign
		mov -= sign
		moved += int(sign)
		if sign < 0 {
			a.OnGround = false
		}
	}
	return moved, false
}

// leavingGrid reports whether the actor is horizontally outside the grid and
// still moving away from it. Gravity keeps accumulating into Velocity.Y while
// stepping is suspended, and that build-up is accepted unclamped: the chunk
// streamer moves the actor back over the grid before it gets that far, so the
// suspension lasts at most a frame in play.
func leavingGrid(vx, px float64) bool {
	return (vx < 0 && px < 0) || (vx > 0 && px >= geom.GridCols*geom.TileSize)
}
