package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Sampler is a deterministic 2D scalar field.
// Sample must be pure for a given seed and return a value in [-1, 1].
type Sampler interface {
	Sample(x, y float64) float64
}

// Perlin defaults, matching the terrain density the thresholds were tuned for.
const (
	DefaultPerlinAlpha  = 2.0
	DefaultPerlinBeta   = 2.0
	DefaultPerlinOctave = 3
	DefaultPerlinPlane  = 0.1
)

// PerlinSampler samples a fixed z-plane of 3D Perlin noise.
// Sampling at a non-integer plane keeps lattice points from all reading zero.
type PerlinSampler struct {
	noise *perlin.Perlin
	plane float64
}

// NewPerlinSampler creates a sampler for the given seed with default parameters.
func NewPerlinSampler(seed int64) *PerlinSampler {
	return &PerlinSampler{
		noise: perlin.NewPerlin(DefaultPerlinAlpha, DefaultPerlinBeta, DefaultPerlinOctave, seed),
		plane: DefaultPerlinPlane,
	}
}

// Sample returns the noise value at (x, y), clamped to [-1, 1].
func (s *PerlinSampler) Sample(x, y float64) float64 {
	v := s.noise.Noise3D(x, y, s.plane)
	return math.Max(-1, math.Min(1, v))
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y float64) float64

// Sample calls f(x, y).
func (f SamplerFunc) Sample(x, y float64) float64 {
	return f(x, y)
}
