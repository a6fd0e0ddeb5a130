package systems

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/world"
)

var (
	testNeutral = tcell.NewRGBColor(0, 0, 0)
	testAlert   = tcell.NewRGBColor(255, 0, 0)
)

func newTestWorld(rows ...string) *entity.World {
	return entity.NewWorld(world.Parse(rows...))
}

func addPlayer(w *entity.World, x, y, sight int) ecs.Entity {
	e := w.Create()
	w.Positions.Insert(e, entity.Position{X: x, Y: y})
	w.Names.Insert(e, entity.Name{Label: "Player"})
	w.Viewsheds.Insert(e, entity.NewViewshed(sight))
	if err := w.MarkPlayer(e); err != nil {
		panic(err)
	}
	w.PlayerPos = world.Point{X: x, Y: y}
	return e
}

func addMonster(w *entity.World, name string, x, y, sight, moveProbability int) ecs.Entity {
	e := w.Create()
	w.Positions.Insert(e, entity.Position{X: x, Y: y})
	w.Names.Insert(e, entity.Name{Label: name})
	w.Monsters.Insert(e, entity.Monster{MoveProbability: moveProbability})
	w.Viewsheds.Insert(e, entity.NewViewshed(sight))
	w.Renderables.Insert(e, entity.Renderable{Glyph: '!', FG: tcell.ColorGreen, BG: testNeutral})
	w.BlocksTile.Insert(e, entity.BlocksTile{})
	return e
}

func position(w *entity.World, e ecs.Entity) world.Point {
	pos, _ := w.Positions.Get(e)
	return pos.Point()
}

func viewshed(w *entity.World, e ecs.Entity) *entity.Viewshed {
	vs, _ := w.Viewsheds.Get(e)
	return vs
}

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}
