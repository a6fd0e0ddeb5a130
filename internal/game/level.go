package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// Level is one generated map and everything living on it.
type Level struct {
	ID    uuid.UUID
	World *entity.World
}

// NewLevel generates a map, spawns the player in the first room and one
// monster in the centre of every other room, then primes the blocked grid
// and the viewsheds so the first frame can be drawn before any step runs.
func NewLevel(ctx context.Context, cfg *Config, data *gamedata.Data, rng dice.Roller, pipe *Pipeline, log logrus.FieldLogger) (*Level, error) {
	if data == nil || data.Player == nil || data.Monsters == nil || data.Terrain == nil {
		return nil, errors.New("level: game data not loaded")
	}

	id := uuid.New()
	ctx, span := telemetry.Tracer("game").Start(ctx, "level.build")
	defer span.End()
	span.SetAttributes(attribute.String("level.id", id.String()))

	var m *world.Map
	switch cfg.Map.Generator {
	case GeneratorScatter:
		m = world.GenerateScatter(ctx, cfg.Map.Width, cfg.Map.Height, cfg.Map.Obstacles, rng)
	default:
		m = world.Generate(ctx, cfg.Map.GenConfig(), rng)
	}
	w := entity.NewWorld(m)

	px, py := m.Width/2, m.Height/2
	if len(m.Rooms) > 0 {
		px, py = m.Rooms[0].Center()
	}
	if _, err := w.SpawnPlayer(data.Player, px, py, cfg.Player.SightRange); err != nil {
		return nil, fmt.Errorf("level: spawn player: %w", err)
	}

	neutral, _ := data.Terrain.AlertColors()
	monsters := 0
	for i, room := range m.Rooms[min(1, len(m.Rooms)):] {
		def := data.Monsters.SpawnRandom(rng)
		if def == nil {
			break
		}
		x, y := room.Center()
		w.SpawnMonster(def, x, y, i, cfg.AI.SightRange, neutral, rng)
		monsters++
	}

	level := &Level{ID: id, World: w}
	pipe.Prime(ctx, w)

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.Int("level.monsters", monsters),
		attribute.Int("player.start_x", px),
		attribute.Int("player.start_y", py),
	)
	log.WithFields(logrus.Fields{
		"level_id":  id.String(),
		"generator": cfg.Map.Generator,
		"rooms":     len(m.Rooms),
		"monsters":  monsters,
	}).Info("level built")

	return level, nil
}
