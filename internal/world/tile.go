// Package world provides the materialized tile grid, collision queries and
// procedural generation for the streamed platformer world.
package world

// AtlasSize is the number of tile sprites in the atlas.
const AtlasSize = 12

// Tile represents one occupied, collidable grid cell.
// An empty cell holds no Tile at all.
type Tile struct {
	Index int // Which sprite in the atlas, in [0, AtlasSize)
}

// fallbackGlyphs are the display characters used when no atlas data is loaded.
var fallbackGlyphs = [AtlasSize]rune{'#', '#', '#', '#', '%', '%', '%', '%', '=', '=', '*', '*'}

// Rune returns the tile's fallback display character.
func (t Tile) Rune() rune {
	if t.Index < 0 || t.Index >= AtlasSize {
		return '?'
	}
	return fallbackGlyphs[t.Index]
}
