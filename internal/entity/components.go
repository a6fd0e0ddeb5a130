// Package entity defines the simulation's components and the World that
// holds them together with the map and the tracked player position.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/marshcrawl/internal/world"
)

// Position is an entity's tile.
type Position struct {
	X, Y int
}

// Point converts the position to a map point.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Renderable is how an entity is drawn. BG is changed by the monster AI to
// show whether a monster has noticed the player.
type Renderable struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

// Viewshed caches the tiles an entity can see. Visible is only valid while
// Dirty is false; anything that moves the entity must set Dirty.
type Viewshed struct {
	Visible mapset.Set[world.Point]
	Range   int
	Dirty   bool
}

// NewViewshed returns a dirty viewshed with the given sight range.
func NewViewshed(sightRange int) Viewshed {
	return Viewshed{
		Visible: mapset.New[world.Point](),
		Range:   sightRange,
		Dirty:   true,
	}
}

// Name is an entity's label.
type Name struct {
	Label string
}

// Player marks the single player entity.
type Player struct{}

// Monster marks an AI-controlled entity.
type Monster struct {
	MoveProbability int // percent chance to wander each step, 0..100
}

// BlocksTile marks entities that occupy their tile exclusively.
type BlocksTile struct{}
