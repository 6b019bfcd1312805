// Package game provides the simulation context and the main game loop.
package game

// State represents the current loop state.
type State int

const (
	// StateRunning steps the simulation every tick.
	StateRunning State = iota
	// StatePaused keeps drawing but does not step the simulation.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Toggle switches between running and paused.
func (s State) Toggle() State {
	if s == StatePaused {
		return StateRunning
	}
	return StatePaused
}
