package gamedata

import (
	"errors"
	"fmt"
)

// PhysicsTuning holds the motion integrator's constants.
type PhysicsTuning struct {
	Speed       float64 `json:"speed"`       // Horizontal speed, units per second
	Gravity     float64 `json:"gravity"`     // Vertical acceleration, negative is down
	JumpImpulse float64 `json:"jumpImpulse"` // Vertical velocity set by a jump
}

// GenerationTuning holds the world generator's constants.
type GenerationTuning struct {
	InitialThreshold float64 `json:"initialThreshold"` // Occupancy threshold for the home chunk
	StreamThreshold  float64 `json:"streamThreshold"`  // Occupancy threshold for all other chunks
	Frequency        float64 `json:"frequency"`        // Tile coordinate to noise space scale
}

// StartTuning is the actor's spawn position in the first chunk.
type StartTuning struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tuning represents the structure of tuning.json.
type Tuning struct {
	Physics    PhysicsTuning    `json:"physics"`
	Generation GenerationTuning `json:"generation"`
	Start      StartTuning      `json:"start"`
}

// Validate checks that the tuning values are usable.
func (t Tuning) Validate() error {
	var errs []error
	if t.Physics.Speed <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed must be positive, got %v", t.Physics.Speed))
	}
	if t.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be negative, got %v", t.Physics.Gravity))
	}
	if t.Physics.JumpImpulse <= 0 {
		errs = append(errs, fmt.Errorf("physics.jumpImpulse must be positive, got %v", t.Physics.JumpImpulse))
	}
	if t.Generation.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("generation.frequency must be positive, got %v", t.Generation.Frequency))
	}
	for name, v := range map[string]float64{
		"generation.initialThreshold": t.Generation.InitialThreshold,
		"generation.streamThreshold":  t.Generation.StreamThreshold,
	} {
		if v < -1 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [-1, 1], got %v", name, v))
		}
	}
	return errors.Join(errs...)
}

// LoadTuning loads and validates the embedded tuning.json.
func LoadTuning() (Tuning, error) {
	t, err := Load[Tuning]("tuning.json")
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning.json: %w", err)
	}
	return t, nil
}

// MustLoadTuning loads the tuning, panicking on error.
func MustLoadTuning() Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}
