package world

import "testing"

func TestIdxBijection(t *testing.T) {
	m := NewMap(13, 7)
	seen := make([]bool, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Idx(x, y)
			if idx != y*m.Width+x {
				t.Fatalf("Idx(%d,%d) = %d, want %d", x, y, idx, y*m.Width+x)
			}
			if idx < 0 || idx >= len(seen) {
				t.Fatalf("Idx(%d,%d) = %d out of range", x, y, idx)
			}
			if seen[idx] {
				t.Fatalf("Idx(%d,%d) = %d already used", x, y, idx)
			}
			seen[idx] = true
			if p := m.Point(idx); p.X != x || p.Y != y {
				t.Errorf("Point(%d) = %v, want (%d,%d)", idx, p, x, y)
			}
		}
	}
	for idx, ok := range seen {
		if !ok {
			t.Errorf("index %d never produced", idx)
		}
	}
}

func TestNewMapIsWater(t *testing.T) {
	m := NewMap(4, 3)
	if len(m.Tiles) != 12 || len(m.Blocked) != 12 || len(m.Visible) != 12 || len(m.Revealed) != 12 {
		t.Fatal("per-tile slices must have width*height entries")
	}
	for i := range m.Tiles {
		if m.Tiles[i] != TileWater || !m.Blocked[i] {
			t.Fatalf("tile %d should be blocked water", i)
		}
	}
}

func TestParse(t *testing.T) {
	m := Parse(
		"~~~~",
		"~..~",
		"~~~~",
	)
	if m.Width != 4 || m.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width, m.Height)
	}
	if !m.IsWalkable(1, 1) || !m.IsWalkable(2, 1) {
		t.Error("ground tiles should be walkable")
	}
	if m.IsBlocked(1, 1) {
		t.Error("ground should not be blocked after Parse")
	}
	if !m.IsBlocked(0, 0) || !m.IsBlocked(-1, 0) || !m.IsBlocked(4, 1) {
		t.Error("water and off-map tiles should be blocked")
	}
	if got := m.String(); got != "~~~~\n~..~\n~~~~\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestTileOffMapIsWater(t *testing.T) {
	m := Parse("...")
	tests := []struct {
		x, y int
		want TileType
	}{
		{0, 0, TileGround},
		{-1, 0, TileWater},
		{3, 0, TileWater},
		{0, 1, TileWater},
	}
	for _, tt := range tests {
		if got := m.Tile(tt.x, tt.y); got != tt.want {
			t.Errorf("Tile(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestExits(t *testing.T) {
	m := Parse(
		"~.~",
		"...",
		"~~~",
	)
	exits := m.Exits(m.Idx(1, 1))
	if len(exits) != 3 {
		t.Fatalf("Exits = %v, want 3 exits", exits)
	}

	// A blocking entity removes the exit
	m.Blocked[m.Idx(0, 1)] = true
	if got := len(m.Exits(m.Idx(1, 1))); got != 2 {
		t.Errorf("Exits after blocking = %d, want 2", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	m := NewMap(10, 10)
	if d := m.Distance(m.Idx(1, 1), m.Idx(2, 2)); d < 1.41 || d > 1.42 {
		t.Errorf("diagonal Distance = %v, want ~1.414", d)
	}
}

func TestTileTypeString(t *testing.T) {
	tests := []struct {
		tile     TileType
		expected string
	}{
		{TileWater, "water"},
		{TileGround, "ground"},
		{TileType(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.tile.String(); got != tt.expected {
			t.Errorf("TileType(%d).String() = %q, want %q", tt.tile, got, tt.expected)
		}
	}
}
