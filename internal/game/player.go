package game

import (
	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/entity"
)

// TryMovePlayer moves the player by (dx, dy) unless the destination is off
// the map or blocked. It reports whether the player moved.
func TryMovePlayer(w *entity.World, dx, dy int) bool {
	e, ok := w.Player()
	if !ok {
		return false
	}
	pos, ok := w.Positions.Get(e)
	if !ok {
		return false
	}

	x, y := pos.X+dx, pos.Y+dy
	if w.Map.IsBlocked(x, y) {
		return false
	}
	placePlayer(w, pos, x, y)
	return true
}

// TeleportPlayer moves the player to the centre of a random room. With no
// rooms it does nothing.
func TeleportPlayer(w *entity.World, rng dice.Roller) bool {
	rooms := w.Map.Rooms
	if len(rooms) == 0 {
		return false
	}
	e, ok := w.Player()
	if !ok {
		return false
	}
	pos, ok := w.Positions.Get(e)
	if !ok {
		return false
	}

	x, y := rooms[rng.Range(0, len(rooms))].Center()
	placePlayer(w, pos, x, y)
	return true
}

func placePlayer(w *entity.World, pos *entity.Position, x, y int) {
	pos.X, pos.Y = x, y
	e, _ := w.Player()
	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
	w.PlayerPos = pos.Point()
}
