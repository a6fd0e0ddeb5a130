package systems

import (
	"context"
	"testing"

	"github.com/samdwyer/marshcrawl/internal/entity"
)

func TestMapIndexerBlockedConsistency(t *testing.T) {
	w := newTestWorld(
		"~~~~~~",
		"~....~",
		"~....~",
		"~~~~~~",
	)
	player := addPlayer(w, 1, 1, 4)
	addMonster(w, "a", 2, 1, 4, 0)
	addMonster(w, "b", 4, 2, 4, 0)

	// stale blocks from an earlier step must be cleared
	w.Map.Blocked[w.Map.Idx(3, 2)] = true

	NewMapIndexer(nil).Run(context.Background(), w)

	m := w.Map
	for _, e := range w.Join(w.Positions, w.BlocksTile) {
		p := position(w, e)
		if !m.Blocked[m.Idx(p.X, p.Y)] {
			t.Errorf("blocking entity at %v not marked blocked", p)
		}
	}
	if !m.IsBlocked(2, 1) || !m.IsBlocked(4, 2) {
		t.Error("monster tiles should be blocked")
	}
	pp := position(w, player)
	if m.IsBlocked(pp.X, pp.Y) {
		t.Error("the player does not block its tile")
	}
	if m.IsBlocked(3, 2) {
		t.Error("stale block at (3,2) should have been reset")
	}
	for i, tile := range m.Tiles {
		if tile.IsBlocking() && !m.Blocked[i] {
			t.Errorf("water tile %v not blocked", m.Point(i))
		}
	}
}

func TestMapIndexerSkipsOffMapEntities(t *testing.T) {
	w := newTestWorld(
		"...",
		"...",
	)
	e := addMonster(w, "lost", 7, -2, 4, 0)

	NewMapIndexer(nil).Run(context.Background(), w)

	for i, blocked := range w.Map.Blocked {
		if blocked {
			t.Errorf("tile %v blocked by off-map entity %d", w.Map.Point(i), e)
		}
	}
	if pos, _ := w.Positions.Get(e); *pos != (entity.Position{X: 7, Y: -2}) {
		t.Errorf("indexer must not move entities, got %+v", *pos)
	}
}
