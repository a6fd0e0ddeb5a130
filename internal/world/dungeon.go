package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	DefaultMaxRooms = 26
	DefaultMinSize  = 6
	DefaultMaxSize  = 15

	// DefaultCorridorWidth carves the adjacent row/column too.
	DefaultCorridorWidth = 2
)

// GenConfig controls rooms-and-corridors generation.
type GenConfig struct {
	Width         int
	Height        int
	MaxRooms      int
	MinSize       int // inclusive
	MaxSize       int // exclusive
	CorridorWidth int // 1 or 2
}

// DefaultGenConfig returns the standard 80x50 layout parameters.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxRooms:      DefaultMaxRooms,
		MinSize:       DefaultMinSize,
		MaxSize:       DefaultMaxSize,
		CorridorWidth: DefaultCorridorWidth,
	}
}

// Generate builds a map by placing up to MaxRooms non-overlapping rooms and
// joining each accepted room to the previous one with a corridor. Rejected
// candidates are dropped, so fewer rooms than MaxRooms may result.
func Generate(ctx context.Context, cfg GenConfig, rng dice.Roller) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(cfg.Width, cfg.Height)

	for i := 0; i < cfg.MaxRooms; i++ {
		w := rng.Range(cfg.MinSize, cfg.MaxSize)
		h := rng.Range(cfg.MinSize, cfg.MaxSize)
		x := rng.Range(1, cfg.Width-w)
		y := rng.Range(1, cfg.Height-h)
		candidate := NewRoom(x, y, w, h)

		ok := true
		for _, other := range m.Rooms {
			if candidate.Intersects(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		m.carveRoom(candidate)

		// Connect to the previously accepted room
		if len(m.Rooms) > 0 {
			newX, newY := candidate.Center()
			prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
			if rng.Range(0, 2) == 1 {
				m.carveHorizontalTunnel(prevX, newX, prevY, cfg.CorridorWidth)
				m.carveVerticalTunnel(prevY, newY, newX, cfg.CorridorWidth)
			} else {
				m.carveVerticalTunnel(prevY, newY, prevX, cfg.CorridorWidth)
				m.carveHorizontalTunnel(prevX, newX, newY, cfg.CorridorWidth)
			}
		}

		m.Rooms = append(m.Rooms, candidate)
	}

	m.PopulateBlocked()

	span.SetAttributes(
		attribute.Int("dungeon.width", m.Width),
		attribute.Int("dungeon.height", m.Height),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.Int("dungeon.max_rooms", cfg.MaxRooms),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m
}

// carveRoom sets the room interior to ground.
func (m *Map) carveRoom(room Room) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.setTile(x, y, TileGround)
		}
	}
}

// carveHorizontalTunnel carves row y between x1 and x2, plus row y+1 for wide corridors.
func (m *Map) carveHorizontalTunnel(x1, x2, y, width int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.setTile(x, y, TileGround)
		if width > 1 {
			m.setTile(x, y+1, TileGround)
		}
	}
}

// carveVerticalTunnel carves column x between y1 and y2, plus column x+1 for wide corridors.
func (m *Map) carveVerticalTunnel(y1, y2, x, width int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.setTile(x, y, TileGround)
		if width > 1 {
			m.setTile(x+1, y, TileGround)
		}
	}
}
