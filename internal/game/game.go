package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/marshcrawl/internal/dice"
	"github.com/samdwyer/marshcrawl/internal/gamedata"
	"github.com/samdwyer/marshcrawl/internal/systems"
	"github.com/samdwyer/marshcrawl/internal/telemetry"
	"github.com/samdwyer/marshcrawl/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      *Config
	data     *gamedata.Data
	metrics  *telemetry.Metrics
	log      logrus.FieldLogger
	sim      *Simulation
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg *Config, met *telemetry.Metrics, log logrus.FieldLogger) (*Game, error) {
	data, err := gamedata.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, data.Terrain),
		cfg:      cfg,
		data:     data,
		metrics:  met,
		log:      log,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")

	rng := dice.New(g.cfg.Seed)
	pipe, err := NewPipeline(g.cfg, g.data.Terrain, rng, g.metrics, g.log)
	if err != nil {
		initSpan.End()
		return err
	}
	level, err := NewLevel(ctx, g.cfg, g.data, rng, pipe, g.log)
	if err != nil {
		initSpan.End()
		return err
	}
	g.sim = NewSimulation(level, pipe, rng, g.metrics, g.log)

	initSpan.SetAttributes(
		attribute.Int64("seed", rng.Seed()),
		attribute.String("level.id", level.ID.String()),
	)
	initSpan.End()
	g.log.WithField("seed", rng.Seed()).Info("game started")

	// Main game loop
	for g.running {
		g.render()

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

func (g *Game) render() {
	g.screen.Clear()
	g.renderer.Render(g.sim.World())
	if g.message != "" {
		_, h := g.screen.Size()
		g.renderer.RenderMessage(g.message, h-1)
	}
	g.screen.Show()
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	intent, quit := IntentFromKey(ev)
	if quit {
		g.running = false
		return
	}
	report := g.sim.Submit(ctx, intent)
	if report.Ran {
		g.message = attackMessage(report.Attacks)
	}
}

// attackMessage summarises the attacks of one step for the message line.
func attackMessage(attacks []systems.Attack) string {
	if len(attacks) == 0 {
		return ""
	}
	names := make([]string, len(attacks))
	for i, a := range attacks {
		names[i] = a.Name
	}
	return strings.Join(names, ", ") + " lunges at you!"
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
