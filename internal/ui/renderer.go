package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// TileStyle is how one terrain type is drawn.
type TileStyle struct {
	Glyph  rune
	FG, BG tcell.Color
}

// Renderer draws a world to a sink.
type Renderer struct {
	sink   Sink
	water  TileStyle
	ground TileStyle
}

// NewRenderer creates a renderer using the terrain palette.
func NewRenderer(sink Sink, terrain *gamedata.Terrain) *Renderer {
	return &Renderer{
		sink:   sink,
		water:  tileStyle(terrain.Water),
		ground: tileStyle(terrain.Ground),
	}
}

func tileStyle(s gamedata.TileStyle) TileStyle {
	fg, bg := s.Colors()
	return TileStyle{Glyph: s.GlyphRune(), FG: fg, BG: bg}
}

// Render draws every revealed tile, then every entity standing on a tile
// the player can currently see.
func (r *Renderer) Render(w *entity.World) {
	m := w.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Idx(x, y)
			if !m.Revealed[idx] {
				continue
			}
			style := r.styleFor(m.Tiles[idx])
			r.sink.SetCell(x, y, style.Glyph, style.FG, style.BG)
		}
	}

	for _, e := range w.Join(w.Positions, w.Renderables) {
		pos, _ := w.Positions.Get(e)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.Idx(pos.X, pos.Y)] {
			continue
		}
		rend, _ := w.Renderables.Get(e)
		r.sink.SetCell(pos.X, pos.Y, rend.Glyph, rend.FG, rend.BG)
	}
}

func (r *Renderer) styleFor(t world.TileType) TileStyle {
	if t == world.TileGround {
		return r.ground
	}
	return r.water
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	x := 0
	for _, ch := range msg {
		r.sink.SetCell(x, y, ch, tcell.ColorWhite, tcell.ColorBlack)
		x++
	}
}
