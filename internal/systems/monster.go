package systems

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/ecs"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/path"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// AttackRange is the distance below which a monster attacks instead of moving.
// It covers the eight neighbouring tiles.
const AttackRange = 1.5

// Decision kinds, used as the "decision" metric attribute and log message.
const (
	DecisionAttack = "attack"
	DecisionChase  = "chase"
	DecisionWander = "wander"
	DecisionIdle   = "idle"
)

// Attack is a monster's signal that it attacked the player this step. What
// the attack does is up to the caller.
type Attack struct {
	Attacker ecs.Entity
	Name     string
	Target   ecs.Entity
}

// AIOptions configures MonsterAI.
type AIOptions struct {
	// Neutral and Alert are the monster background colors while it does not
	// and does see the player.
	Neutral tcell.Color
	Alert   tcell.Color

	// WanderChecksBlocked makes wandering also reject tiles that are currently
	// blocked. By default only static terrain is checked, so two wandering
	// monsters can share a tile until the next chase.
	WanderChecksBlocked bool
}

// MonsterAI decides, for each monster in entity order, whether to attack,
// chase the player or wander.
type MonsterAI struct {
	opts    AIOptions
	rng     dice.Roller
	metrics *telemetry.Metrics
	log     logrus.FieldLogger
}

// NewMonsterAI creates the AI system. A nil met records nothing.
func NewMonsterAI(rng dice.Roller, opts AIOptions, met *telemetry.Metrics, log logrus.FieldLogger) *MonsterAI {
	if met == nil {
		met = telemetry.NoopMetrics()
	}
	return &MonsterAI{
		opts:    opts,
		rng:     rng,
		metrics: met,
		log:     log.WithField("component", "ai"),
	}
}

// Run makes one decision per monster and returns the attacks made. It reads
// the Blocked grid left by the previous step.
func (ai *MonsterAI) Run(ctx context.Context, w *entity.World) []Attack {
	var attacks []Attack
	player, _ := w.Player()

	for _, e := range w.Join(w.Positions, w.Monsters, w.Viewsheds, w.Names) {
		pos, _ := w.Positions.Get(e)
		mon, _ := w.Monsters.Get(e)
		vs, _ := w.Viewsheds.Get(e)
		name := w.NameOf(e)

		seesPlayer := vs.Visible.Has(w.PlayerPos)
		if r, ok := w.Renderables.Get(e); ok {
			if seesPlayer {
				r.BG = ai.opts.Alert
			} else {
				r.BG = ai.opts.Neutral
			}
		}

		var decision string
		switch {
		case world.Distance(pos.Point(), w.PlayerPos) < AttackRange:
			decision = DecisionAttack
			attacks = append(attacks, Attack{Attacker: e, Name: name, Target: player})
			ai.log.WithFields(logrus.Fields{
				"monster": name,
				"x":       pos.X,
				"y":       pos.Y,
			}).Info("monster attacks the player")
		case seesPlayer:
			decision = DecisionIdle
			if ai.chase(w, pos, vs) {
				decision = DecisionChase
			}
		default:
			decision = DecisionIdle
			if ai.wander(w, pos, mon, vs) {
				decision = DecisionWander
			}
		}

		ai.metrics.AIDecisions.Add(ctx, 1, telemetry.DecisionAttr(decision))
		ai.log.WithFields(logrus.Fields{
			"monster": name,
			"x":       pos.X,
			"y":       pos.Y,
		}).Debug(decision)
	}
	return attacks
}

// chase moves the monster one step along the shortest path to the player.
// It reports false when there is no path or the path has no second step.
func (ai *MonsterAI) chase(w *entity.World, pos *entity.Position, vs *entity.Viewshed) bool {
	m := w.Map
	if !m.InBounds(pos.X, pos.Y) || !m.InBounds(w.PlayerPos.X, w.PlayerPos.Y) {
		return false
	}
	res := path.Find(m, m.Idx(pos.X, pos.Y), m.Idx(w.PlayerPos.X, w.PlayerPos.Y))
	if !res.Success || len(res.Steps) < 2 {
		return false
	}
	next := m.Point(res.Steps[1])
	pos.X, pos.Y = next.X, next.Y
	vs.Dirty = true
	return true
}

// wander rolls against the monster's move probability and, on success, tries
// a random step to one of the eight neighbours.
func (ai *MonsterAI) wander(w *entity.World, pos *entity.Position, mon *entity.Monster, vs *entity.Viewshed) bool {
	roll := ai.rng.Range(0, 101)
	if mon.MoveProbability <= 0 || roll > mon.MoveProbability {
		return false
	}
	dx := ai.rng.Range(-1, 2)
	dy := ai.rng.Range(-1, 2)
	if dx == 0 && dy == 0 {
		return false
	}

	x, y := pos.X+dx, pos.Y+dy
	m := w.Map
	if !m.InBounds(x, y) || !m.IsWalkable(x, y) {
		return false
	}
	if ai.opts.WanderChecksBlocked && m.IsBlocked(x, y) {
		return false
	}
	pos.X, pos.Y = x, y
	vs.Dirty = true
	return true
}
