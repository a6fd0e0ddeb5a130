package gamedata

import (
	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster kind loaded from JSON.
type MonsterDef struct {
	ID                 string `json:"id"`                 // Unique identifier (e.g., "vosklamati")
	Name               string `json:"name"`               // Display name, suffixed with "#i" when spawned
	Glyph              string `json:"glyph"`              // Single character for rendering (e.g., "!")
	Color              string `json:"color"`              // Hex foreground color (e.g., "#00FF00")
	MoveProbabilityMin int    `json:"moveProbabilityMin"` // Inclusive lower bound of the wander chance
	MoveProbabilityMax int    `json:"moveProbabilityMax"` // Inclusive upper bound of the wander chance
	SightRange         int    `json:"sightRange"`         // Viewshed range in tiles
	SpawnWeight        int    `json:"spawnWeight"`        // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	return glyphRune(m.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorGreen // fallback
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

// glyphRune returns the first byte of s as a rune, or '?' when s is empty.
func glyphRune(s string) rune {
	if len(s) == 0 {
		return '?'
	}
	return rune(s[0])
}
