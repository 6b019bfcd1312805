package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef describes one atlas entry loaded from JSON.
type TileDef struct {
	Name  string `json:"name"`  // Identifier (e.g., "stone")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex foreground color (e.g., "#8A8A8A")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the foreground as a tcell color, or the default color if
// the hex string is malformed.
func (d *TileDef) TCellColor() tcell.Color {
	c, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Atlas maps tile indices to display glyphs and styles.
type Atlas struct {
	tiles  []TileDef
	styles []tcell.Style
}

// NewAtlas creates an atlas from loaded tile definitions.
// Every definition must have a glyph and a valid color.
func NewAtlas(tiles []TileDef) (*Atlas, error) {
	a := &Atlas{
		tiles:  tiles,
		styles: make([]tcell.Style, len(tiles)),
	}
	for i := range tiles {
		if tiles[i].Glyph == "" {
			return nil, fmt.Errorf("tile %d (%s): missing glyph", i, tiles[i].Name)
		}
		fg, err := ParseHexColor(tiles[i].Color)
		if err != nil {
			return nil, fmt.Errorf("tile %d (%s): %w", i, tiles[i].Name, err)
		}
		a.styles[i] = tcell.StyleDefault.Foreground(fg)
	}
	return a, nil
}

// LoadAtlas loads the embedded tiles.json and checks it has exactly want entries.
func LoadAtlas(want int) (*Atlas, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) != want {
		return nil, fmt.Errorf("tiles.json has %d tiles, want %d", len(file.Tiles), want)
	}
	return NewAtlas(file.Tiles)
}

// MustLoadAtlas loads the atlas, panicking on error.
func MustLoadAtlas(want int) *Atlas {
	a, err := LoadAtlas(want)
	if err != nil {
		panic(err)
	}
	return a
}

// Glyph returns the display character for a tile index, or '?' if out of range.
func (a *Atlas) Glyph(index int) rune {
	if index < 0 || index >= len(a.tiles) {
		return '?'
	}
	return a.tiles[index].GlyphRune()
}

// Style returns the display style for a tile index.
func (a *Atlas) Style(index int) tcell.Style {
	if index < 0 || index >= len(a.styles) {
		return tcell.StyleDefault
	}
	return a.styles[index]
}

// GetByName returns the tile definition with the given name, or nil if not found.
func (a *Atlas) GetByName(name string) *TileDef {
	for i := range a.tiles {
		if a.tiles[i].Name == name {
			return &a.tiles[i]
		}
	}
	return nil
}

// Count returns the number of atlas entries.
func (a *Atlas) Count() int {
	return len(a.tiles)
}
