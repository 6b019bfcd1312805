package world

import "github.com/google/uuid"

// Op is the kind of a presentation command.
type Op int

const (
	// OpSpawn asks the presentation layer to create an object for a tile.
	OpSpawn Op = iota
	// OpDespawn asks the presentation layer to destroy an object.
	OpDespawn
)

// String returns a human-readable op name.
func (o Op) String() string {
	switch o {
	case OpSpawn:
		return "spawn"
	case OpDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// Command is a fire-and-forget request to the presentation layer.
// Col, Row and Tile are only meaningful for spawns.
type Command struct {
	Op     Op
	Handle EntityHandle
	Col    int
	Row    int
	Tile   Tile
}

// HandleSource mints new presentation handles.
type HandleSource func() EntityHandle

// CommandQueue collects presentation commands issued during an update.
// The presentation layer drains it before the next frame's collision queries run.
type CommandQueue struct {
	pending   []Command
	newHandle HandleSource
}

// NewCommandQueue creates a queue that mints random UUID handles.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{newHandle: uuid.New}
}

// Push appends a command.
func (q *CommandQueue) Push(c Command) {
	q.pending = append(q.pending, c)
}

// Drain returns all pending commands and empties the queue.
func (q *CommandQueue) Drain() []Command {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// Spawn binds a fresh handle to an occupied, unbound cell and queues its spawn.
// Returns false if the cell is empty or already bound.
func (q *CommandQueue) Spawn(g *Grid, col, row int) bool {
	t, ok := g.TileAt(col, row)
	if !ok {
		return false
	}
	if _, bound := g.Renderables.HandleAt(col, row); bound {
		return false
	}
	h := q.newHandle()
	g.Renderables.Bind(col, row, h)
	q.Push(Command{Op: OpSpawn, Handle: h, Col: col, Row: row, Tile: t})
	return true
}

// Despawn unbinds a cell's handle and queues its despawn.
// Despawning a cell without a handle is a no-op that returns false.
func (q *CommandQueue) Despawn(g *Grid, col, row int) bool {
	h, ok := g.Renderables.Unbind(col, row)
	if !ok {
		return false
	}
	q.Push(Command{Op: OpDespawn, Handle: h, Col: col, Row: row})
	return true
}

// Populate spawns handles for every occupied, unbound cell in the region.
// Returns the number of spawns queued.
func (q *CommandQueue) Populate(g *Grid, r Region) int {
	n := 0
	r.each(func(col, row int) {
		if q.Spawn(g, col, row) {
			n++
		}
	})
	return n
}

// Vacate despawns every bound handle in the region.
// Returns the number of despawns queued.
func (q *CommandQueue) Vacate(g *Grid, r Region) int {
	n := 0
	r.each(func(col, row int) {
		if q.Despawn(g, col, row) {
			n++
		}
	})
	return n
}
