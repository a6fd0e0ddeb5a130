package systems

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/fov"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// Policy decides which viewsheds are recomputed on a step.
type Policy int

const (
	// PolicyOnDirty recomputes only viewsheds whose Dirty flag is set.
	PolicyOnDirty Policy = iota
	// PolicyEveryStep recomputes every viewshed on every step.
	PolicyEveryStep
)

// String returns the config spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyOnDirty:
		return "dirty"
	case PolicyEveryStep:
		return "always"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config value into a Policy. The empty string is
// PolicyOnDirty.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "dirty":
		return PolicyOnDirty, nil
	case "always":
		return PolicyEveryStep, nil
	default:
		return PolicyOnDirty, fmt.Errorf("unknown visibility policy %q (want dirty or always)", s)
	}
}

// Visibility recomputes viewsheds by shadowcasting over the static terrain.
// The player's viewshed also drives the map's Visible and Revealed sets.
type Visibility struct {
	Policy Policy

	metrics *telemetry.Metrics
	log     logrus.FieldLogger
}

// NewVisibility creates the visibility system. A nil met records nothing.
func NewVisibility(policy Policy, met *telemetry.Metrics, log logrus.FieldLogger) *Visibility {
	if met == nil {
		met = telemetry.NoopMetrics()
	}
	return &Visibility{
		Policy:  policy,
		metrics: met,
		log:     log.WithField("component", "visibility"),
	}
}

// Run recomputes the viewsheds selected by the policy and returns how many
// were recomputed.
func (v *Visibility) Run(ctx context.Context, w *entity.World) int {
	recomputed := 0
	w.Viewsheds.Each(func(e ecs.Entity, vs *entity.Viewshed) {
		pos, ok := w.Positions.Get(e)
		if !ok || (v.Policy == PolicyOnDirty && !vs.Dirty) {
			return
		}

		vs.Visible = fov.Compute(pos.Point(), vs.Range, w.Map)
		vs.Dirty = false
		recomputed++

		isPlayer := w.Players.Has(e)
		if isPlayer {
			v.updateMap(w.Map, vs)
		}
		v.metrics.Recomputes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("player", isPlayer)))
		v.log.WithFields(logrus.Fields{
			"entity":  w.NameOf(e),
			"visible": vs.Visible.Size(),
		}).Trace("viewshed recomputed")
	})
	return recomputed
}

// updateMap replaces the map's Visible set with the player's fresh viewshed
// and adds it to Revealed. Revealed only ever grows.
func (v *Visibility) updateMap(m *world.Map, vs *entity.Viewshed) {
	for i := range m.Visible {
		m.Visible[i] = false
	}
	vs.Visible.Each(func(p world.Point) {
		if !m.InBounds(p.X, p.Y) {
			return
		}
		idx := m.Idx(p.X, p.Y)
		m.Visible[idx] = true
		m.Revealed[idx] = true
	})
}
