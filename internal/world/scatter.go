package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
)

// DefaultObstacles is the number of water tiles dropped by GenerateScatter.
const DefaultObstacles = 400

// GenerateScatter builds a ground map bordered by water with obstacles water
// tiles dropped at random. The map center is never covered. The result has no rooms.
func GenerateScatter(ctx context.Context, width, height, obstacles int, rng dice.Roller) *Map {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.generate_scatter")
	defer span.End()

	m := NewMap(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.setTile(x, y, TileGround)
		}
	}

	center := m.Idx(width/2, height/2)
	for i := 0; i < obstacles; i++ {
		x := rng.Range(1, width-1)
		y := rng.Range(1, height-1)
		if m.Idx(x, y) != center {
			m.setTile(x, y, TileWater)
		}
	}
	m.PopulateBlocked()

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.obstacles", obstacles),
	)
	return m
}
