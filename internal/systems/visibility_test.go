package systems

import (
	"context"
	"testing"

	"github.com/zyedidia/generic/mapset"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/samdwyer/marshcrawl/internal/telemetry"
	"github.com/samdwyer/marshcrawl/internal/world"
)

func sameSet(a, b mapset.Set[world.Point]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(p world.Point) {
		if !b.Has(p) {
			same = false
		}
	})
	return same
}

func copySet(s mapset.Set[world.Point]) mapset.Set[world.Point] {
	c := mapset.New[world.Point]()
	s.Each(func(p world.Point) { c.Put(p) })
	return c
}

var roomRows = []string{
	"~~~~~~~~~~",
	"~........~",
	"~........~",
	"~...~....~",
	"~........~",
	"~~~~~~~~~~",
}

func TestVisibilityIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(roomRows...)
	player := addPlayer(w, 2, 2, 8)
	vis := NewVisibility(PolicyOnDirty, nil, nullLogger())

	if n := vis.Run(ctx, w); n != 1 {
		t.Fatalf("first Run recomputed %d viewsheds, want 1", n)
	}
	vs := viewshed(w, player)
	if vs.Dirty {
		t.Error("Run should clear the dirty flag")
	}
	first := copySet(vs.Visible)

	if n := vis.Run(ctx, w); n != 0 {
		t.Errorf("clean viewshed recomputed %d times, want 0", n)
	}

	vs.Dirty = true
	vis.Run(ctx, w)
	if !sameSet(first, viewshed(w, player).Visible) {
		t.Error("recomputing with no change produced a different visible set")
	}
}

func TestVisibilityRevealedIsMonotonic(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(
		"~~~~~~~~~~~~",
		"~....~.....~",
		"~....~.....~",
		"~..........~",
		"~~~~~~~~~~~~",
	)
	player := addPlayer(w, 1, 1, 3)
	vis := NewVisibility(PolicyOnDirty, nil, nullLogger())
	m := w.Map

	vis.Run(ctx, w)
	if !m.Visible[m.Idx(1, 1)] || !m.Revealed[m.Idx(1, 1)] {
		t.Fatal("the player's own tile should be visible and revealed")
	}

	steps := []world.Point{{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 9, Y: 2}, {X: 2, Y: 3}}
	before := append([]bool(nil), m.Revealed...)
	for _, p := range steps {
		pos, _ := w.Positions.Get(player)
		pos.X, pos.Y = p.X, p.Y
		w.PlayerPos = p
		viewshed(w, player).Dirty = true

		vis.Run(ctx, w)

		for i := range before {
			if before[i] && !m.Revealed[i] {
				t.Fatalf("tile %v un-revealed after moving to %v", m.Point(i), p)
			}
		}
		before = append(before[:0], m.Revealed...)
	}

	pos, _ := w.Positions.Get(player)
	pos.X, pos.Y = 9, 2
	viewshed(w, player).Dirty = true
	vis.Run(ctx, w)
	if m.Visible[m.Idx(1, 1)] {
		t.Error("(1,1) is out of range from (9,2) and should not be visible")
	}
	if !m.Revealed[m.Idx(1, 1)] {
		t.Error("(1,1) should stay revealed")
	}
}

func TestVisibilityMonsterDoesNotTouchMap(t *testing.T) {
	w := newTestWorld(roomRows...)
	mon := addMonster(w, "watcher", 6, 2, 8, 0)

	NewVisibility(PolicyOnDirty, nil, nullLogger()).Run(context.Background(), w)

	vs := viewshed(w, mon)
	if vs.Dirty || vs.Visible.Size() == 0 {
		t.Fatalf("monster viewshed = dirty %v size %d, want clean and non-empty", vs.Dirty, vs.Visible.Size())
	}
	for i := range w.Map.Visible {
		if w.Map.Visible[i] || w.Map.Revealed[i] {
			t.Fatalf("monster viewshed leaked into map at %v", w.Map.Point(i))
		}
	}
}

func TestVisibilityEveryStepPolicy(t *testing.T) {
	ctx := context.Background()
	w := newTestWorld(roomRows...)
	player := addPlayer(w, 2, 2, 8)
	mon := addMonster(w, "watcher", 6, 2, 8, 0)
	viewshed(w, player).Dirty = false
	viewshed(w, mon).Dirty = false

	vis := NewVisibility(PolicyEveryStep, nil, nullLogger())
	if n := vis.Run(ctx, w); n != 2 {
		t.Errorf("Run recomputed %d viewsheds, want 2", n)
	}
	if !viewshed(w, mon).Visible.Has(world.Point{X: 2, Y: 2}) {
		t.Error("monster should see the player across the open room")
	}
}

func TestVisibilityCountsRecomputes(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	met, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	w := newTestWorld(roomRows...)
	addPlayer(w, 2, 2, 8)
	addMonster(w, "watcher", 6, 2, 8, 0)

	NewVisibility(PolicyOnDirty, met, nullLogger()).Run(ctx, w)

	totals, err := telemetry.Totals(ctx, reader)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals[telemetry.MetricRecomputes] != 2 {
		t.Errorf("%s = %d, want 2", telemetry.MetricRecomputes, totals[telemetry.MetricRecomputes])
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyOnDirty, false},
		{"dirty", PolicyOnDirty, false},
		{"always", PolicyEveryStep, false},
		{"sometimes", PolicyOnDirty, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
