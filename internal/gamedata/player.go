package gamedata

import "github.com/gdamore/tcell/v2"

// PlayerDef is the player template loaded from JSON.
type PlayerDef struct {
	Name       string `json:"name"`
	Glyph      string `json:"glyph"`
	Color      string `json:"color"`
	Background string `json:"background"`
	SightRange int    `json:"sightRange"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlayerDef) GlyphRune() rune {
	return glyphRune(p.Glyph)
}

// Colors returns the foreground and background colors.
func (p *PlayerDef) Colors() (fg, bg tcell.Color) {
	fg, err := ParseHexColor(p.Color)
	if err != nil {
		fg = tcell.ColorYellow
	}
	bg, err = ParseHexColor(p.Background)
	if err != nil {
		bg = tcell.ColorBlack
	}
	return fg, bg
}

// LoadPlayer loads the player template from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}
