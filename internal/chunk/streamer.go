// Package chunk streams the infinite world through the fixed tile grid: it detects
// when the actor crosses a chunk boundary, shifts the grid's origin, keeps the
// actor continuous in the new local frame, and regenerates tiles and their
// presentation handles.
package chunk

import (
	"context"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrunner/internal/entity"
	"github.com/samdwyer/chunkrunner/internal/geom"
	"github.com/samdwyer/chunkrunner/internal/telemetry"
	"github.com/samdwyer/chunkrunner/internal/world"
)

// Boundary positions in local world units.
const (
	tile       = geom.TileSize
	width      = geom.ChunkWidth
	height     = geom.ChunkHeight
	playTop    = 0.0
	playBottom = -geom.PlayRows * geom.TileSize
)

// ShiftResult reports what one Update did.
type ShiftResult struct {
	Dir       world.ChunkPosition // Shift applied to the origin, zero if none
	Shifted   bool
	Despawned int // Presentation handles released
	Spawned   int // Presentation handles created
}

// Thresholds chooses the occupancy threshold for each chunk. The home chunk
// (0, 0) is always generated with Initial, so returning to it reproduces the
// terrain the actor spawned in; every other chunk uses Stream.
type Thresholds struct {
	Initial float64
	Stream  float64
}

// For returns the threshold for the chunk at pos.
func (t Thresholds) For(pos world.ChunkPosition) float64 {
	if pos.IsZero() {
		return t.Initial
	}
	return t.Stream
}

// Streamer keeps the grid centred on the chunk the actor occupies.
type Streamer struct {
	gen        *world.Generator
	queue      *world.CommandQueue
	thresholds Thresholds

	lastShift uint64 // Frame of the last shift
	shifted   bool   // lastShift is valid
}

// NewStreamer creates a streamer that regenerates with the given thresholds.
func NewStreamer(gen *world.Generator, queue *world.CommandQueue, th Thresholds) *Streamer {
	return &Streamer{
		gen:        gen,
		queue:      queue,
		thresholds: th,
	}
}

// Update checks the actor against the current chunk's boundaries and shifts the
// grid if it has crossed one. It runs once per frame after motion. A second call
// with the same frame number never shifts again.
func (s *Streamer) Update(ctx context.Context, frame uint64, a *entity.Actor, g *world.Grid) ShiftResult {
	var res ShiftResult
	if s.shifted && s.lastShift == frame {
		return res
	}

	res.Dir = crossing(a)
	if !res.Dir.IsZero() {
		s.shift(ctx, a, g, &res)
		s.lastShift = frame
		s.shifted = true
	}

	a.Inside = insidePlayfield(a)
	return res
}

// crossing returns the shift the actor's position calls for.
//
// While inside, the leading edge is tested against the far boundary in the
// direction of travel. While outside, a trailing-edge test inset by one tile
// catches re-entry from the far side. The two ranges form a hysteresis band so
// an actor resting on a boundary does not flip chunks every frame.
func crossing(a *entity.Actor) world.ChunkPosition {
	var dir world.ChunkPosition
	px, py := a.Position.X(), a.Position.Y()
	vx, vy := a.Velocity.X(), a.Velocity.Y()

	if a.Inside {
		switch {
		case vx > 0 && px+tile >= width:
			dir.X = 1
		case vx < 0 && px < tile:
			dir.X = -1
		}
		switch {
		case vy > 0 && py > playTop:
			dir.Y = -1
		case vy < 0 && py-tile < playBottom:
			dir.Y = 1
		}
		return dir
	}

	switch {
	case px >= width+tile:
		dir.X = 1
	case px+tile < 0:
		dir.X = -1
	}
	switch {
	case py-tile > playTop+tile:
		dir.Y = -1
	case py <= -height:
		dir.Y = 1
	}
	return dir
}

// insidePlayfield reports whether the actor sits within the current chunk's playfield.
func insidePlayfield(a *entity.Actor) bool {
	px, py := a.Position.X(), a.Position.Y()
	return px >= tile && px < width && py <= playTop && py > playBottom
}

// shift moves the origin and the actor, then recycles the grid contents.
// Chunk Y grows downward while world y grows upward, hence the sign flip.
func (s *Streamer) shift(ctx context.Context, a *entity.Actor, g *world.Grid, res *ShiftResult) {
	tracer := telemetry.Tracer("chunk")
	ctx, span := tracer.Start(ctx, "chunk.shift")
	defer span.End()

	from := g.Origin
	g.Origin = g.Origin.Add(res.Dir)
	a.Move(-float64(res.Dir.X)*width, float64(res.Dir.Y)*height)

	// The stride is one cell short of the grid, so every cell of the old window
	// is vacated and every cell of the new one is exposed.
	band := world.FullRegion()
	res.Despawned = s.queue.Vacate(g, band)
	stats := s.gen.Fill(ctx, g, band, s.thresholds.For(g.Origin))
	res.Spawned = s.queue.Populate(g, band)
	res.Shifted = true

	span.SetAttributes(
		attribute.Int("chunk.from_x", from.X),
		attribute.Int("chunk.from_y", from.Y),
		attribute.Int("chunk.to_x", g.Origin.X),
		attribute.Int("chunk.to_y", g.Origin.Y),
		attribute.Int("chunk.despawned", res.Despawned),
		attribute.Int("chunk.spawned", res.Spawned),
		attribute.Int("chunk.tiles", stats.Tiles),
		attribute.Bool("chunk.paired", g.PairingConsistent()),
	)

	log.Printf("chunk: shifted (%d,%d) -> (%d,%d), despawned %d, spawned %d",
		from.X, from.Y, g.Origin.X, g.Origin.Y, res.Despawned, res.Spawned)
}
