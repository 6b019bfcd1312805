package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/chunkrunner/internal/entity"
	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/world"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 30)
	t.Cleanup(screen.Close)
	return screen, sim
}

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen, sim := newTestScreen(t)
	return NewRenderer(screen, gamedata.MustLoadAtlas(world.AtlasSize)), sim
}

func TestRendererApply(t *testing.T) {
	r, _ := newTestRenderer(t)
	a, b := uuid.New(), uuid.New()

	r.Apply([]world.Command{
		{Op: world.OpSpawn, Handle: a, Col: 1, Row: 1, Tile: world.Tile{Index: 0}},
		{Op: world.OpSpawn, Handle: b, Col: 2, Row: 1, Tile: world.Tile{Index: 4}},
	})
	assert.Equal(t, 2, r.SpriteCount())

	r.Apply([]world.Command{
		{Op: world.OpDespawn, Handle: a},
		{Op: world.OpDespawn, Handle: uuid.New()},
	})
	assert.Equal(t, 1, r.SpriteCount())
}

func TestRendererDrawsSpritesAndActor(t *testing.T) {
	r, sim := newTestRenderer(t)
	atlas := gamedata.MustLoadAtlas(world.AtlasSize)

	r.Apply([]world.Command{
		{Op: world.OpSpawn, Handle: uuid.New(), Col: 3, Row: 5, Tile: world.Tile{Index: 8}},
	})
	// Footprint centre (84, -44) lies in cell (10, 6).
	actor := entity.NewActor(80, -40)
	r.Render(world.NewGrid(), actor, world.ChunkPosition{X: 2, Y: -1})

	mainc, _, style, _ := sim.GetContent(3+1, 5+1)
	assert.Equal(t, atlas.Glyph(8), mainc)
	assert.Equal(t, atlas.Style(8), style)

	mainc, _, _, _ = sim.GetContent(10+1, 6+1)
	assert.Equal(t, '@', mainc)

	mainc, _, _, _ = sim.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, mainc)
}

func TestRendererSkipsActorOffGrid(t *testing.T) {
	r, sim := newTestRenderer(t)

	actor := entity.NewActor(-40, -40)
	r.Render(world.NewGrid(), actor, world.ChunkPosition{})

	for y := 0; y < 25; y++ {
		for x := 0; x < 42; x++ {
			mainc, _, _, _ := sim.GetContent(x, y)
			assert.NotEqual(t, '@', mainc, "actor drawn at (%d,%d)", x, y)
		}
	}
}

func TestRenderMessage(t *testing.T) {
	r, sim := newTestRenderer(t)

	r.RenderMessage("hi", 3)

	mainc, _, _, _ := sim.GetContent(0, 3)
	assert.Equal(t, 'h', mainc)
	mainc, _, _, _ = sim.GetContent(1, 3)
	assert.Equal(t, 'i', mainc)
}

func TestScreenEventsClosedOnClose(t *testing.T) {
	screen, sim := newTestScreen(t)
	events := screen.Events()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok, "got %T", ev)
		assert.Equal(t, 'x', key.Rune())
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}

	screen.Close()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed")
		}
	}
}

func TestInputStateIntent(t *testing.T) {
	now := time.Unix(0, 0)
	key := func(k tcell.Key, r rune) *tcell.EventKey {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}

	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantMove int
		wantJump bool
		handled  bool
	}{
		{"left arrow", key(tcell.KeyLeft, 0), -1, false, true},
		{"right arrow", key(tcell.KeyRight, 0), 1, false, true},
		{"a", key(tcell.KeyRune, 'a'), -1, false, true},
		{"d", key(tcell.KeyRune, 'd'), 1, false, true},
		{"space", key(tcell.KeyRune, ' '), 0, true, true},
		{"up arrow", key(tcell.KeyUp, 0), 0, true, true},
		{"unrelated", key(tcell.KeyRune, 'z'), 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputState(DefaultHoldWindow)
			assert.Equal(t, tt.handled, s.HandleKey(tt.ev, now))

			in := s.Intent(now)
			assert.Equal(t, tt.wantMove, in.MoveX)
			assert.Equal(t, tt.wantJump, in.JumpPressed)
		})
	}
}

func TestInputStateJumpIsEdge(t *testing.T) {
	now := time.Unix(0, 0)
	s := NewInputState(DefaultHoldWindow)

	s.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)

	assert.True(t, s.Intent(now).JumpPressed)
	assert.False(t, s.Intent(now).JumpPressed)
}

func TestInputStateHoldWindow(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewInputState(100 * time.Millisecond)

	s.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start)

	assert.Equal(t, 1, s.Intent(start.Add(50*time.Millisecond)).MoveX)
	assert.Equal(t, 1, s.Intent(start.Add(100*time.Millisecond)).MoveX)
	assert.Equal(t, 0, s.Intent(start.Add(101*time.Millisecond)).MoveX)

	// A repeat extends the window; the opposite key takes over.
	s.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start.Add(200*time.Millisecond))
	s.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), start.Add(250*time.Millisecond))
	assert.Equal(t, -1, s.Intent(start.Add(300*time.Millisecond)).MoveX)

	s.Reset()
	assert.Equal(t, 0, s.Intent(start.Add(300*time.Millisecond)).MoveX)
}
