package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
)

// SpawnPlayer creates the player at (x, y) from its template and points
// PlayerPos at it. A sightRange above zero overrides the template's range.
func (w *World) SpawnPlayer(def *gamedata.PlayerDef, x, y, sightRange int) (ecs.Entity, error) {
	if w.hasPlayer {
		return 0, ErrPlayerExists
	}
	if sightRange <= 0 {
		sightRange = def.SightRange
	}
	fg, bg := def.Colors()

	e := w.Create()
	w.Positions.Insert(e, Position{X: x, Y: y})
	w.Names.Insert(e, Name{Label: def.Name})
	w.Renderables.Insert(e, Renderable{Glyph: def.GlyphRune(), FG: fg, BG: bg})
	w.Viewsheds.Insert(e, NewViewshed(sightRange))
	if err := w.MarkPlayer(e); err != nil {
		return 0, err
	}
	w.PlayerPos = Position{X: x, Y: y}.Point()
	return e, nil
}

// SpawnMonster creates a monster of the given kind at (x, y). The label is
// the kind name followed by "#ordinal"; the wander chance is drawn from the
// kind's range. A sightRange above zero overrides the kind's range.
func (w *World) SpawnMonster(def *gamedata.MonsterDef, x, y, ordinal, sightRange int, bg tcell.Color, rng dice.Roller) ecs.Entity {
	if sightRange <= 0 {
		sightRange = def.SightRange
	}

	e := w.Create()
	w.Positions.Insert(e, Position{X: x, Y: y})
	w.Names.Insert(e, Name{Label: fmt.Sprintf("%s #%d", def.Name, ordinal)})
	w.Monsters.Insert(e, Monster{
		MoveProbability: rng.Range(def.MoveProbabilityMin, def.MoveProbabilityMax+1),
	})
	w.Renderables.Insert(e, Renderable{Glyph: def.GlyphRune(), FG: def.TCellColor(), BG: bg})
	w.Viewsheds.Insert(e, NewViewshed(sightRange))
	w.BlocksTile.Insert(e, BlocksTile{})
	return e
}
