package world

import (
	"math"
	"strings"

	"github.com/samdwyer/marshcrawl/internal/path"
)

// Map is the tile grid plus its rooms and the derived per-tile sets.
// Every per-tile slice is indexed by Idx.
type Map struct {
	Width  int
	Height int
	Tiles  []TileType
	Rooms  []Room

	Revealed []bool // ever seen by the player
	Visible  []bool // seen by the player right now
	Blocked  []bool // terrain or a blocking entity, rebuilt every step
}

// NewMap creates a map filled with water.
func NewMap(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, n),
		Rooms:    make([]Room, 0),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWater
	}
	m.PopulateBlocked()
	return m
}

// Parse builds a map from rows of text: '.' is ground, anything else water.
// Blocked is populated from the terrain.
func Parse(rows ...string) *Map {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	m := NewMap(width, height)
	for y, row := range rows {
		for x := 0; x < len(row) && x < width; x++ {
			if row[x] == '.' {
				m.Tiles[m.Idx(x, y)] = TileGround
			}
		}
	}
	m.PopulateBlocked()
	return m
}

// Idx returns the tile index of (x, y).
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// Point returns the coordinates of a tile index.
func (m *Map) Point(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds returns true if (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at the given position. Off-map positions read as water.
func (m *Map) Tile(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWater
	}
	return m.Tiles[m.Idx(x, y)]
}

// IsWalkable returns true if the static terrain at (x, y) is ground.
func (m *Map) IsWalkable(x, y int) bool {
	return !m.Tile(x, y).IsBlocking()
}

// IsBlocked returns true if (x, y) is off the map or currently blocked.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.Idx(x, y)]
}

// setTile writes a tile, ignoring off-map coordinates.
func (m *Map) setTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.Idx(x, y)] = t
	}
}

// PopulateBlocked resets Blocked to the static terrain.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t.IsBlocking()
	}
}

// Dimensions returns the map size.
func (m *Map) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque reports whether (x, y) stops sight. Off-map tiles are opaque.
func (m *Map) IsOpaque(x, y int) bool {
	return m.Tile(x, y).IsBlocking()
}

// Exits returns the cardinal neighbours of idx that are on the map and not blocked.
func (m *Map) Exits(idx int) []path.Exit {
	p := m.Point(idx)
	exits := make([]path.Exit, 0, 4)
	for _, d := range [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		x, y := p.X+d.X, p.Y+d.Y
		if !m.IsBlocked(x, y) {
			exits = append(exits, path.Exit{Idx: m.Idx(x, y), Cost: 1})
		}
	}
	return exits
}

// Distance is the Euclidean distance between two tile indices.
func (m *Map) Distance(a, b int) float64 {
	return Distance(m.Point(a), m.Point(b))
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the terrain as rows of '.' and '~'.
func (m *Map) String() string {
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[m.Idx(x, y)] == TileGround {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('~')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ path.Graph = (*Map)(nil)
