package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrunner/internal/geom"
	"github.com/samdwyer/chunkrunner/internal/telemetry"
)

const (
	// InitialThreshold is the occupancy threshold for the home chunk (0, 0).
	InitialThreshold = 0.3
	// StreamThreshold is the occupancy threshold for every other chunk.
	StreamThreshold = 0.2
	// DefaultFrequency scales world tile coordinates into noise space.
	DefaultFrequency = 0.1
)

// Generator fills grid regions from a noise field and a threshold rule.
// Occupancy depends only on the sampler and chunk coordinates; the atlas index
// of each tile is drawn from rng and is not stable across regenerations.
type Generator struct {
	sampler   Sampler
	frequency float64
	rng       *rand.Rand
}

// FillStats summarizes one Fill call.
type FillStats struct {
	Cells int // Cells visited
	Tiles int // Cells left occupied
}

// NewGenerator creates a generator over the given sampler.
// A nil rng is replaced by a time-seeded one.
func NewGenerator(s Sampler, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		sampler:   s,
		frequency: DefaultFrequency,
		rng:       rng,
	}
}

// SetFrequency changes the noise sampling frequency. Non-positive values are ignored.
func (g *Generator) SetFrequency(f float64) {
	if f > 0 {
		g.frequency = f
	}
}

// Occupied reports whether local cell (x, y) of the chunk at origin holds a tile.
// Local coordinates range over [-1, PlayCols] × [-1, PlayRows].
func (g *Generator) Occupied(origin ChunkPosition, x, y int, threshold float64) bool {
	gx := float64(origin.X*geom.ChunkCols+x) * g.frequency
	gy := float64(origin.Y*geom.ChunkRows+y) * g.frequency
	return g.sampler.Sample(gx, gy) > threshold
}

// Fill regenerates every cell of the region for the grid's current origin.
// Cells above the threshold get a tile with a random atlas index; the rest are cleared.
func (g *Generator) Fill(ctx context.Context, grid *Grid, r Region, threshold float64) FillStats {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	var stats FillStats
	origin := grid.Origin

	r.each(func(col, row int) {
		stats.Cells++
		// Grid cell (col, row) holds local cell (col-1, row-1).
		if g.Occupied(origin, col-1, row-1, threshold) {
			grid.Set(col, row, Tile{Index: g.rng.Intn(AtlasSize)})
			stats.Tiles++
		} else {
			grid.Clear(col, row)
		}
	})

	span.SetAttributes(
		attribute.Int("chunk.x", origin.X),
		attribute.Int("chunk.y", origin.Y),
		attribute.Float64("generate.threshold", threshold),
		attribute.Int("generate.cells", stats.Cells),
		attribute.Int("generate.tiles", stats.Tiles),
	)

	return stats
}
