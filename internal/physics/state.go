package physics

import "github.com/samdwyer/chunkrunner/internal/entity"

// ActorState is the implicit movement state derived from the actor.
type ActorState int

const (
	// StateGrounded means the actor is resting on a surface and may jump.
	StateGrounded ActorState = iota
	// StateAirborne means the actor is rising or falling.
	StateAirborne
)

// String returns a human-readable state name.
func (s ActorState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// State returns the actor's current movement state.
func State(a *entity.Actor) ActorState {
	if a.OnGround {
		return StateGrounded
	}
	return StateAirborne
}
