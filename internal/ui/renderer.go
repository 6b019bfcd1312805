package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/chunkrunner/internal/entity"
	"github.com/samdwyer/chunkrunner/internal/gamedata"
	"github.com/samdwyer/chunkrunner/internal/geom"
	"github.com/samdwyer/chunkrunner/internal/physics"
	"github.com/samdwyer/chunkrunner/internal/world"
)

// sprite is the presentation object behind one handle.
type sprite struct {
	col, row int
	glyph    rune
	style    tcell.Style
}

// Renderer owns the presentation objects named by the core's handles and draws
// them, the actor and a status line.
type Renderer struct {
	screen  *Screen
	atlas   *gamedata.Atlas
	proj    geom.Projection
	sprites map[uuid.UUID]sprite
}

// NewRenderer creates a new renderer for the given screen.
// The grid is drawn inside a one-cell frame, with the status line below it.
func NewRenderer(screen *Screen, atlas *gamedata.Atlas) *Renderer {
	return &Renderer{
		screen:  screen,
		atlas:   atlas,
		proj:    geom.Projection{OffsetX: 1, OffsetY: 1},
		sprites: make(map[uuid.UUID]sprite),
	}
}

// Apply executes drained presentation commands in order.
// A despawn for an unknown handle is ignored.
func (r *Renderer) Apply(cmds []world.Command) {
	for _, c := range cmds {
		switch c.Op {
		case world.OpSpawn:
			glyph := r.atlas.Glyph(c.Tile.Index)
			if glyph == '?' {
				glyph = c.Tile.Rune()
			}
			r.sprites[c.Handle] = sprite{
				col:   c.Col,
				row:   c.Row,
				glyph: glyph,
				style: r.atlas.Style(c.Tile.Index),
			}
		case world.OpDespawn:
			delete(r.sprites, c.Handle)
		}
	}
}

// SpriteCount returns the number of live presentation objects.
func (r *Renderer) SpriteCount() int {
	return len(r.sprites)
}

// Render draws the current frame.
func (r *Renderer) Render(grid *world.Grid, actor *entity.Actor, chunk world.ChunkPosition) {
	r.screen.Clear()
	r.drawFrame()

	for _, sp := range r.sprites {
		r.screen.SetContent(sp.col+r.proj.OffsetX, sp.row+r.proj.OffsetY, sp.glyph, sp.style)
	}

	// Actor glyph sits on the cell under its footprint centre.
	centre := actor.Footprint().Center()
	if geom.GridRect().Contains(centre) {
		x, y := r.proj.WorldToScreen(centre)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.SetContent(x, y, actor.Symbol, style)
	}

	status := fmt.Sprintf("chunk (%d,%d)  pos (%.0f,%.0f)  %s  tiles %d",
		chunk.X, chunk.Y, actor.Position.X(), actor.Position.Y(),
		physics.State(actor), grid.TileCount())
	r.RenderMessage(status, geom.GridRows+2)

	r.screen.Show()
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// drawFrame outlines the grid area.
func (r *Renderer) drawFrame() {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	w, h := geom.GridCols+1, geom.GridRows+1
	for x := 0; x <= w; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, style)
		r.screen.SetContent(x, h, tcell.RuneHLine, style)
	}
	for y := 0; y <= h; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, style)
		r.screen.SetContent(w, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, style)
	r.screen.SetContent(w, 0, tcell.RuneURCorner, style)
	r.screen.SetContent(0, h, tcell.RuneLLCorner, style)
	r.screen.SetContent(w, h, tcell.RuneLRCorner, style)
}
