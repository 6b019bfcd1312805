package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/chunkrunner/internal/gamedata"
)

// Environment variables read by ConfigFromEnv. They match the env tags on Config.
const (
	EnvSeed             = "CHUNKRUNNER_SEED"
	EnvDebug            = "CHUNKRUNNER_DEBUG"
	EnvTickRate         = "CHUNKRUNNER_TICK_RATE"
	EnvInitialThreshold = "CHUNKRUNNER_INITIAL_THRESHOLD"
	EnvStreamThreshold  = "CHUNKRUNNER_STREAM_THRESHOLD"
)

// DefaultTickRate is the number of simulation steps per second.
const DefaultTickRate = 60

// Config holds game configuration options. Fields tagged env are overridable
// from the environment by ConfigFromEnv.
type Config struct {
	// Seed for the noise field and atlas rolls. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"CHUNKRUNNER_SEED"`

	// Debug enables logging to logs/chunkrunner.log.
	Debug bool `env:"CHUNKRUNNER_DEBUG"`

	// TickRate is the fixed number of simulation steps per second.
	TickRate int `env:"CHUNKRUNNER_TICK_RATE"`

	// InitialThreshold is the occupancy threshold for the home chunk (0, 0);
	// StreamThreshold applies to every other chunk.
	InitialThreshold float64 `env:"CHUNKRUNNER_INITIAL_THRESHOLD"`
	StreamThreshold  float64 `env:"CHUNKRUNNER_STREAM_THRESHOLD"`
}

// DefaultConfig returns the configuration implied by the embedded tuning.
func DefaultConfig(tuning gamedata.Tuning) Config {
	return Config{
		TickRate:         DefaultTickRate,
		InitialThreshold: tuning.Generation.InitialThreshold,
		StreamThreshold:  tuning.Generation.StreamThreshold,
	}
}

// ConfigFromEnv overlays environment overrides onto base.
// Unset or empty variables keep the base value. On error base is returned unchanged.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	if err := env.Parse(&cfg); err != nil {
		return base, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tick rate must be within [1, 1000], got %d", c.TickRate)
	}
	if c.InitialThreshold < -1 || c.InitialThreshold > 1 {
		return fmt.Errorf("initial threshold must be within [-1, 1], got %v", c.InitialThreshold)
	}
	if c.StreamThreshold < -1 || c.StreamThreshold > 1 {
		return fmt.Errorf("stream threshold must be within [-1, 1], got %v", c.StreamThreshold)
	}
	return nil
}
