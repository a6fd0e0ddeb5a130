package gamedata

import "github.com/gdamore/tcell/v2"

// TileStyle is how one terrain type is drawn.
type TileStyle struct {
	Glyph      string `json:"glyph"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (s TileStyle) GlyphRune() rune {
	return glyphRune(s.Glyph)
}

// Colors returns the parsed foreground and background colors.
func (s TileStyle) Colors() (fg, bg tcell.Color) {
	fg, err := ParseHexColor(s.Foreground)
	if err != nil {
		fg = tcell.ColorDefault
	}
	bg, err = ParseHexColor(s.Background)
	if err != nil {
		bg = tcell.ColorDefault
	}
	return fg, bg
}

// Terrain is the terrain palette plus the monster alert colors.
type Terrain struct {
	Water   TileStyle `json:"water"`
	Ground  TileStyle `json:"ground"`
	Neutral string    `json:"neutral"` // monster background while unaware of the player
	Alert   string    `json:"alert"`   // monster background while it sees the player
}

// AlertColors returns the neutral and alert background colors.
func (t *Terrain) AlertColors() (neutral, alert tcell.Color) {
	neutral, err := ParseHexColor(t.Neutral)
	if err != nil {
		neutral = tcell.ColorBlack
	}
	alert, err = ParseHexColor(t.Alert)
	if err != nil {
		alert = tcell.ColorRed
	}
	return neutral, alert
}

// LoadTerrain loads the palette from the embedded terrain.json file.
func LoadTerrain() (*Terrain, error) {
	t, err := Load[Terrain]("terrain.json")
	if err != nil {
		return nil, err
	}
	return &t, nil
}
