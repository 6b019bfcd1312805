package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/ui"
	"github.com/samdwyer/chunkrunner/internal/world"
)

// maxCatchUp bounds how many steps one tick may run after a stall.
const maxCatchUp = 5

// Game holds the entire game state.
type Game struct {
	cfg      Config
	tuning   gamedata.Tuning
	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.InputState
	sim      *Sim
	state    State
	running  bool

	step  time.Duration
	acc   time.Duration
	last  time.Time
	ticks uint64
}

// New creates a new game instance on the terminal.
func New(cfg Config, tuning gamedata.Tuning) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, tuning, screen)
}

// NewWithScreen creates a game instance on an existing screen.
func NewWithScreen(cfg Config, tuning gamedata.Tuning, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	atlas, err := gamedata.LoadAtlas(world.AtlasSize)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		tuning:   tuning,
		screen:   screen,
		renderer: ui.NewRenderer(screen, atlas),
		input:    ui.NewInputState(ui.DefaultHoldWindow),
		state:    StateRunning,
		running:  true,
		step:     time.Second / time.Duration(cfg.TickRate),
	}, nil
}

// Run executes the main game loop until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	g.sim = NewSim(ctx, g.cfg, g.tuning)
	g.renderer.Apply(g.sim.Commands().Drain())

	events := g.screen.Events()
	ticker := time.NewTicker(g.step)
	defer ticker.Stop()

	g.last = time.Now()
	g.draw()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			g.tick(ctx, now)
			g.draw()
		}
	}

	log.Printf("game: quit after %d frames in chunk %v", g.sim.Frame(), g.sim.ChunkPosition())
	return nil
}

// tick runs as many fixed steps as the elapsed time calls for.
func (g *Game) tick(ctx context.Context, now time.Time) int {
	g.acc += now.Sub(g.last)
	g.last = now
	g.ticks++

	if g.state == StatePaused {
		g.acc = 0
		return 0
	}

	steps := 0
	dt := g.step.Seconds()
	for g.acc >= g.step && steps < maxCatchUp {
		g.sim.Step(ctx, g.input.Intent(now), dt)
		g.acc -= g.step
		steps++
	}
	if steps == maxCatchUp {
		g.acc = 0
	}

	g.renderer.Apply(g.sim.Commands().Drain())
	return steps
}

// draw renders the current simulation state.
func (g *Game) draw() {
	g.renderer.Render(g.sim.Grid(), g.sim.Actor(), g.sim.ChunkPosition())
	if g.state == StatePaused {
		g.renderer.RenderMessage("paused - press p to resume", 26)
		g.screen.Show()
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev, now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		case 'p', 'P':
			g.state = g.state.Toggle()
			g.input.Reset()
			log.Printf("game: %s", g.state)
			return
		}
	}

	if g.state == StateRunning {
		g.input.HandleKey(ev, now)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
