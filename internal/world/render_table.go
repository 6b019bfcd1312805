package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/chunkrunner/internal/geom"
)

// EntityHandle identifies a presentation object owned by the external
// presentation layer. The zero value (uuid.Nil) means no handle.
type EntityHandle = uuid.UUID

// RenderTable relates grid cells to presentation handles. It records which
// cell a handle belongs to and nothing more; handle lifetime is owned elsewhere.
type RenderTable struct {
	handles [geom.GridRows][geom.GridCols]EntityHandle
}

// Bind associates a handle with a cell, replacing any previous association.
func (t *RenderTable) Bind(col, row int, h EntityHandle) {
	if !inBounds(col, row) {
		return
	}
	t.handles[row][col] = h
}

// HandleAt returns the handle bound to a cell, if any.
func (t *RenderTable) HandleAt(col, row int) (EntityHandle, bool) {
	if !inBounds(col, row) {
		return uuid.Nil, false
	}
	h := t.handles[row][col]
	return h, h != uuid.Nil
}

// Unbind removes and returns the handle bound to a cell.
// Unbinding an empty cell is a no-op that returns false.
func (t *RenderTable) Unbind(col, row int) (EntityHandle, bool) {
	h, ok := t.HandleAt(col, row)
	if !ok {
		return uuid.Nil, false
	}
	t.handles[row][col] = uuid.Nil
	return h, true
}

// Each calls fn for every bound cell in row-major order.
func (t *RenderTable) Each(fn func(col, row int, h EntityHandle)) {
	for row := range t.handles {
		for col, h := range t.handles[row] {
			if h != uuid.Nil {
				fn(col, row, h)
			}
		}
	}
}

// Len returns the number of bound cells.
func (t *RenderTable) Len() int {
	n := 0
	t.Each(func(int, int, EntityHandle) { n++ })
	return n
}
