package entity

import (
	"errors"

	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// ErrPlayerExists is returned when a second player is spawned.
var ErrPlayerExists = errors.New("entity: player already spawned")

// World is the simulation context handed to every system: the component
// stores, the map and the player's tracked position.
type World struct {
	entities ecs.Allocator

	Positions   *ecs.Store[Position]
	Renderables *ecs.Store[Renderable]
	Viewsheds   *ecs.Store[Viewshed]
	Names       *ecs.Store[Name]
	Players     *ecs.Store[Player]
	Monsters    *ecs.Store[Monster]
	BlocksTile  *ecs.Store[BlocksTile]

	// Map is the current level's map.
	Map *world.Map
	// PlayerPos mirrors the player's Position for the monster AI.
	PlayerPos world.Point

	player    ecs.Entity
	hasPlayer bool
}

// NewWorld creates an empty world over m.
func NewWorld(m *world.Map) *World {
	return &World{
		Positions:   ecs.NewStore[Position](),
		Renderables: ecs.NewStore[Renderable](),
		Viewsheds:   ecs.NewStore[Viewshed](),
		Names:       ecs.NewStore[Name](),
		Players:     ecs.NewStore[Player](),
		Monsters:    ecs.NewStore[Monster](),
		BlocksTile:  ecs.NewStore[BlocksTile](),
		Map:         m,
	}
}

// Create allocates a new entity with no components.
func (w *World) Create() ecs.Entity {
	return w.entities.Create()
}

// Count returns the number of entities in the world.
func (w *World) Count() int {
	return w.entities.Count()
}

// Join returns the entities holding every given component, in creation order.
func (w *World) Join(stores ...ecs.Presence) []ecs.Entity {
	return w.entities.Join(stores...)
}

// Player returns the player entity, if one has been spawned.
func (w *World) Player() (ecs.Entity, bool) {
	return w.player, w.hasPlayer
}

// MarkPlayer attaches the Player marker to e. Only one entity may hold it.
func (w *World) MarkPlayer(e ecs.Entity) error {
	if w.hasPlayer {
		return ErrPlayerExists
	}
	w.Players.Insert(e, Player{})
	w.player = e
	w.hasPlayer = true
	return nil
}

// NameOf returns e's label, or "" when it has none.
func (w *World) NameOf(e ecs.Entity) string {
	if n, ok := w.Names.Get(e); ok {
		return n.Label
	}
	return ""
}
