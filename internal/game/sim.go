package game

import (
	"context"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrunner/internal/chunk"
	"github.com/samdwyer/chunkrunner/internal/entity"
	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/geom"
	"github.com/samdwyer/chunkrunner/internal/physics"
	"github.com/samdwyer/chunkrunner/internal/telemetry"
	"github.com/samdwyer/chunkrunner/internal/world"
)

// StepReport describes one simulation step.
type StepReport struct {
	Frame  uint64
	Motion physics.StepResult
	Shift  chunk.ShiftResult
}

// Sim owns the whole simulation state: the grid, the actor and the systems that
// update them. It is not safe for concurrent use; the game loop drives it from
// a single goroutine.
type Sim struct {
	seed       int64
	grid       *world.Grid
	actor      *entity.Actor
	gen        *world.Generator
	queue      *world.CommandQueue
	integrator *physics.Integrator
	streamer   *chunk.Streamer
	frame      uint64
}

// NewSim builds the first chunk and places the actor in it.
// Renderables for the first chunk are queued on Commands before NewSim returns.
func NewSim(ctx context.Context, cfg Config, tuning gamedata.Tuning) *Sim {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := world.NewGenerator(world.NewPerlinSampler(seed), rand.New(rand.NewSource(seed)))
	gen.SetFrequency(tuning.Generation.Frequency)

	s := &Sim{
		seed:  seed,
		grid:  world.NewGrid(),
		actor: entity.NewActor(tuning.Start.X, tuning.Start.Y),
		gen:   gen,
		queue: world.NewCommandQueue(),
		integrator: physics.NewIntegrator(physics.Config{
			Speed:         tuning.Physics.Speed,
			Gravity:       tuning.Physics.Gravity,
			JumpImpulse:   tuning.Physics.JumpImpulse,
			FootprintSize: geom.ActorSize,
		}),
	}
	th := chunk.Thresholds{Initial: cfg.InitialThreshold, Stream: cfg.StreamThreshold}
	s.streamer = chunk.NewStreamer(gen, s.queue, th)

	stats := gen.Fill(ctx, s.grid, world.FullRegion(), th.For(s.grid.Origin))
	spawned := s.queue.Populate(s.grid, world.FullRegion())

	span.SetAttributes(
		attribute.Int64("world.seed", seed),
		attribute.Int("world.tiles", stats.Tiles),
		attribute.Int("world.spawned", spawned),
		attribute.Bool("world.paired", s.grid.PairingConsistent()),
		attribute.Float64("actor.start_x", tuning.Start.X),
		attribute.Float64("actor.start_y", tuning.Start.Y),
	)
	log.Printf("game: seed %d, initial chunk has %d tiles", seed, stats.Tiles)

	return s
}

// Step advances the simulation by dt seconds: motion first, then streaming.
// Collision during the step sees the grid as left by the previous step.
func (s *Sim) Step(ctx context.Context, in physics.Intent, dt float64) StepReport {
	s.frame++
	rep := StepReport{Frame: s.frame}
	rep.Motion = s.integrator.Step(s.actor, s.grid, in, dt)
	rep.Shift = s.streamer.Update(ctx, s.frame, s.actor, s.grid)
	return rep
}

// Seed returns the seed the world was generated from.
func (s *Sim) Seed() int64 {
	return s.seed
}

// Frame returns the number of steps taken so far.
func (s *Sim) Frame() uint64 {
	return s.frame
}

// Grid returns the materialized tile grid.
func (s *Sim) Grid() *world.Grid {
	return s.grid
}

// Actor returns the player actor.
func (s *Sim) Actor() *entity.Actor {
	return s.actor
}

// ChunkPosition returns the chunk the grid currently shows.
func (s *Sim) ChunkPosition() world.ChunkPosition {
	return s.grid.Origin
}

// Commands returns the presentation command queue for draining.
func (s *Sim) Commands() *world.CommandQueue {
	return s.queue
}
