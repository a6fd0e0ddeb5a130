package game

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
	"github.com/samdwyer/marshcrawl/internal/world"
)

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

func testData(t *testing.T) *gamedata.Data {
	t.Helper()
	data, err := gamedata.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return data
}

func testPipeline(t *testing.T, rng dice.Roller) *Pipeline {
	t.Helper()
	pipe, err := NewPipeline(DefaultConfig(), testData(t).Terrain, rng, nil, nullLogger())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return pipe
}

// newTestSimulation wraps a hand-built world in a primed simulation.
func newTestSimulation(t *testing.T, w *entity.World, rng dice.Roller) *Simulation {
	t.Helper()
	pipe := testPipeline(t, rng)
	pipe.Prime(context.Background(), w)
	return NewSimulation(&Level{ID: uuid.New(), World: w}, pipe, rng, nil, nullLogger())
}

func spawnPlayer(t *testing.T, w *entity.World, x, y int) ecs.Entity {
	t.Helper()
	e, err := w.SpawnPlayer(testData(t).Player, x, y, 0)
	if err != nil {
		t.Fatalf("SpawnPlayer: %v", err)
	}
	return e
}

func positionOf(w *entity.World, e ecs.Entity) world.Point {
	pos, _ := w.Positions.Get(e)
	return pos.Point()
}

func viewshedOf(w *entity.World, e ecs.Entity) *entity.Viewshed {
	vs, _ := w.Viewsheds.Get(e)
	return vs
}
