package systems

import (
	"context"

	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
)

// MapIndexer rebuilds the map's Blocked grid from terrain and the positions
// of every entity that blocks its tile.
type MapIndexer struct {
	metrics *telemetry.Metrics
}

// NewMapIndexer creates an indexer. A nil met records nothing.
func NewMapIndexer(met *telemetry.Metrics) *MapIndexer {
	if met == nil {
		met = telemetry.NoopMetrics()
	}
	return &MapIndexer{metrics: met}
}

// Run resets Blocked to the static terrain, then marks blocking entities.
// Entities standing off the map are skipped.
func (ix *MapIndexer) Run(ctx context.Context, w *entity.World) {
	m := w.Map
	m.PopulateBlocked()

	for _, e := range w.Join(w.Positions, w.BlocksTile) {
		pos, _ := w.Positions.Get(e)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		m.Blocked[m.Idx(pos.X, pos.Y)] = true
	}

	ix.metrics.IndexerRuns.Add(ctx, 1)
}
