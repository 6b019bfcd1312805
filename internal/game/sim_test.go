package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/geom"
	"github.com/samdwyer/chunkrunner/internal/physics"
	"github.com/samdwyer/chunkrunner/internal/world"
)

const dt = 1.0 / 60

func newTestSim(t *testing.T, seed int64) *Sim {
	t.Helper()
	tuning := gamedata.MustLoadTuning()
	cfg := DefaultConfig(tuning)
	cfg.Seed = seed
	return NewSim(context.Background(), cfg, tuning)
}

// clearGrid empties every cell, despawning its renderable.
func clearGrid(s *Sim) {
	for col := 0; col < geom.GridCols; col++ {
		for row := 0; row < geom.GridRows; row++ {
			s.Commands().Despawn(s.Grid(), col, row)
			s.Grid().Clear(col, row)
		}
	}
}

func TestNewSimInitialState(t *testing.T) {
	s := newTestSim(t, 1234)

	assert.Equal(t, int64(1234), s.Seed())
	assert.Equal(t, world.ChunkPosition{}, s.ChunkPosition())
	assert.Equal(t, geom.Vec(200, -100), s.Actor().Position)
	assert.True(t, s.Actor().Inside)
	assert.Equal(t, uint64(0), s.Frame())

	g := s.Grid()
	assert.True(t, g.PairingConsistent())
	assert.Equal(t, g.TileCount(), g.Renderables.Len())

	cmds := s.Commands().Drain()
	require.Len(t, cmds, g.TileCount())
	for _, c := range cmds {
		assert.Equal(t, world.OpSpawn, c.Op)
	}
}

func TestNewSimRandomSeed(t *testing.T) {
	s := newTestSim(t, 0)
	assert.NotZero(t, s.Seed())
}

func TestNewSimReproducibility(t *testing.T) {
	a := newTestSim(t, 99)
	b := newTestSim(t, 99)
	c := newTestSim(t, 100)

	assert.Equal(t, occupancy(a.Grid()), occupancy(b.Grid()))
	assert.NotEqual(t, occupancy(a.Grid()), occupancy(c.Grid()))
}

func TestStepAdvancesFrame(t *testing.T) {
	s := newTestSim(t, 5)

	rep := s.Step(context.Background(), physics.Intent{}, dt)
	assert.Equal(t, uint64(1), rep.Frame)
	rep = s.Step(context.Background(), physics.Intent{}, dt)
	assert.Equal(t, uint64(2), rep.Frame)
	assert.Equal(t, uint64(2), s.Frame())
}

func TestStepReplayIsDeterministic(t *testing.T) {
	inputs := make([]physics.Intent, 600)
	for i := range inputs {
		switch {
		case i%120 < 80:
			inputs[i].MoveX = 1
		case i%120 < 100:
			inputs[i].MoveX = -1
		}
		inputs[i].JumpPressed = i%45 == 0
	}

	run := func() (*Sim, []StepReport) {
		s := newTestSim(t, 321)
		reps := make([]StepReport, 0, len(inputs))
		for _, in := range inputs {
			reps = append(reps, s.Step(context.Background(), in, dt))
		}
		return s, reps
	}

	s1, r1 := run()
	s2, r2 := run()

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1.Actor().Position, s2.Actor().Position)
	assert.Equal(t, s1.ChunkPosition(), s2.ChunkPosition())
	assert.Equal(t, occupancy(s1.Grid()), occupancy(s2.Grid()))
}

func TestStepKeepsPairingThroughShifts(t *testing.T) {
	s := newTestSim(t, 77)
	s.Commands().Drain()
	// Clear the way so the actor walks straight across the seam.
	clearGrid(s)
	s.Commands().Drain()

	shifted := false
	for i := 0; i < 600 && !shifted; i++ {
		s.Actor().Velocity[1] = 0
		rep := s.Step(context.Background(), physics.Intent{MoveX: 1}, dt)
		if rep.Shift.Shifted {
			shifted = true
			assert.Equal(t, world.ChunkPosition{X: 1}, rep.Shift.Dir)
			assert.Equal(t, rep.Shift.Spawned, s.Grid().TileCount())
		}
		assert.True(t, s.Grid().PairingConsistent())
	}
	assert.True(t, shifted)
	assert.Equal(t, world.ChunkPosition{X: 1}, s.ChunkPosition())
}

func TestNewSimIsTraced(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	defer otel.SetTracerProvider(prev)

	newTestSim(t, 8)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "world.generate", spans[0].Name())
	assert.Equal(t, "game.init", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestHomeChunkSurvivesRoundTrip(t *testing.T) {
	s := newTestSim(t, 42)
	home := occupancy(s.Grid())
	a := s.Actor()

	a.Position = geom.Vec(geom.ChunkWidth+8, -100)
	a.Velocity = geom.Vec(100, 0)
	require.True(t, s.streamer.Update(context.Background(), 1, a, s.Grid()).Shifted)
	require.Equal(t, world.ChunkPosition{X: 1}, s.ChunkPosition())

	a.Position = geom.Vec(4, -100)
	a.Velocity = geom.Vec(-100, 0)
	require.True(t, s.streamer.Update(context.Background(), 2, a, s.Grid()).Shifted)
	require.Equal(t, world.ChunkPosition{}, s.ChunkPosition())

	assert.Equal(t, home, occupancy(s.Grid()))
	assert.True(t, s.Grid().PairingConsistent())
}

// occupancy returns a snapshot of which cells hold a tile.
func occupancy(g *world.Grid) [geom.GridRows][geom.GridCols]bool {
	var occ [geom.GridRows][geom.GridCols]bool
	for row := 0; row < geom.GridRows; row++ {
		for col := 0; col < geom.GridCols; col++ {
			_, occ[row][col] = g.TileAt(col, row)
		}
	}
	return occ
}
