package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/entity"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
	"github.com/samdwyer/marshcrawl/internal/systems"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
)

// Pipeline is the set of systems one step runs, in order: AI, Indexer,
// Visibility.
type Pipeline struct {
	AI         *systems.MonsterAI
	Indexer    *systems.MapIndexer
	Visibility *systems.Visibility
}

// NewPipeline builds the systems from cfg. The AI takes its alert colors from
// the terrain palette.
func NewPipeline(cfg *Config, terrain *gamedata.Terrain, rng dice.Roller, met *telemetry.Metrics, log logrus.FieldLogger) (*Pipeline, error) {
	policy, err := systems.ParsePolicy(cfg.Visibility.Policy)
	if err != nil {
		return nil, err
	}
	neutral, alert := terrain.AlertColors()
	return &Pipeline{
		AI: systems.NewMonsterAI(rng, systems.AIOptions{
			Neutral:             neutral,
			Alert:               alert,
			WanderChecksBlocked: cfg.AI.WanderChecksBlocked,
		}, met, log),
		Indexer:    systems.NewMapIndexer(met),
		Visibility: systems.NewVisibility(policy, met, log),
	}, nil
}

// Prime fills the blocked grid and the viewsheds without moving anything.
func (p *Pipeline) Prime(ctx context.Context, w *entity.World) {
	p.Indexer.Run(ctx, w)
	p.Visibility.Run(ctx, w)
}

// StepReport describes what one Tick or Submit did.
type StepReport struct {
	State      RunState // state after the call
	Moved      bool     // the intent moved the player
	Ran        bool     // the system pipeline ran
	Attacks    []systems.Attack
	Recomputed int // viewsheds recomputed by the pipeline
}

// Simulation owns the current level and advances it one intent at a time.
// It is not safe for concurrent use.
type Simulation struct {
	State RunState
	Level *Level

	pipeline *Pipeline
	rng      dice.Roller
	metrics  *telemetry.Metrics
	tracer   trace.Tracer
	log      logrus.FieldLogger
}

// NewSimulation starts a paused simulation on level. A nil met records nothing.
func NewSimulation(level *Level, pipe *Pipeline, rng dice.Roller, met *telemetry.Metrics, log logrus.FieldLogger) *Simulation {
	if met == nil {
		met = telemetry.NoopMetrics()
	}
	return &Simulation{
		State:    Paused,
		Level:    level,
		pipeline: pipe,
		rng:      rng,
		metrics:  met,
		tracer:   telemetry.Tracer("sim"),
		log:      log.WithField("component", "sim"),
	}
}

// World returns the current level's world.
func (s *Simulation) World() *entity.World {
	return s.Level.World
}

// Tick advances the state machine by one transition and performs its effect.
func (s *Simulation) Tick(ctx context.Context, intent Intent) StepReport {
	next, effect := Next(s.State, intent)
	var report StepReport

	switch effect {
	case EffectApplyIntent:
		report.Moved = s.applyIntent(ctx, intent)
	case EffectRunSystems:
		report.Attacks, report.Recomputed = s.step(ctx)
		report.Ran = true
	}

	s.State = next
	report.State = next
	return report
}

// Submit applies intent and, if it started a turn, runs the turn. This is
// what a blocking input loop calls once per key press.
func (s *Simulation) Submit(ctx context.Context, intent Intent) StepReport {
	first := s.Tick(ctx, intent)
	if s.State != Running {
		return first
	}
	report := s.Tick(ctx, IntentNone)
	report.Moved = first.Moved
	return report
}

func (s *Simulation) applyIntent(ctx context.Context, intent Intent) bool {
	w := s.Level.World
	var moved bool
	if intent == IntentTeleport {
		moved = TeleportPlayer(w, s.rng)
	} else {
		dx, dy := intent.Delta()
		moved = TryMovePlayer(w, dx, dy)
	}

	s.metrics.PlayerMoves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", intent.String()),
		attribute.Bool("moved", moved),
	))
	s.log.WithFields(logrus.Fields{
		"intent": intent.String(),
		"moved":  moved,
		"x":      w.PlayerPos.X,
		"y":      w.PlayerPos.Y,
	}).Debug("player intent")
	return moved
}

func (s *Simulation) step(ctx context.Context) ([]systems.Attack, int) {
	ctx, span := s.tracer.Start(ctx, "sim.step")
	defer span.End()
	start := time.Now()

	w := s.Level.World
	attacks := s.pipeline.AI.Run(ctx, w)
	s.pipeline.Indexer.Run(ctx, w)
	recomputed := s.pipeline.Visibility.Run(ctx, w)

	elapsed := time.Since(start)
	s.metrics.Steps.Add(ctx, 1)
	s.metrics.StepDuration.Record(ctx, elapsed.Seconds())
	span.SetAttributes(
		attribute.String("level.id", s.Level.ID.String()),
		attribute.Int("step.attacks", len(attacks)),
		attribute.Int("step.recomputed", recomputed),
		attribute.Int64("duration_us", elapsed.Microseconds()),
	)
	return attacks, recomputed
}
