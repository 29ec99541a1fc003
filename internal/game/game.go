package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpgschool/internal/entity"
	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/input"
	"github.com/samdwyer/rpgschool/internal/session"
	"github.com/samdwyer/rpgschool/internal/telemetry"
	"github.com/samdwyer/rpgschool/internal/world"
)

// EventSource delivers the keystrokes that arrived since the last call.
type EventSource interface {
	Drain() ([]input.Keystroke, error)
}

// Renderer draws a session snapshot.
type Renderer interface {
	Render(snap session.Snapshot) error
}

// Game holds the entire game state.
type Game struct {
	cfg        Config
	session    *session.Session
	controller *Controller
	keymap     *input.Keymap
	source     EventSource
	renderer   Renderer
	logger     *slog.Logger
	running    bool
}

// New creates a game with the school map and the embedded roster.
func New(ctx context.Context, cfg Config, source EventSource, renderer Renderer, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid FPS %d", cfg.FPS)
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}

	defs, err := gamedata.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	npcs, err := entity.NewRoster(defs, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create characters: %w", err)
	}

	sess, err := session.New(grid, entity.NewPlayer(cfg.PlayerStart), npcs)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	span.SetAttributes(
		attribute.Int("map.width", grid.Width()),
		attribute.Int("map.height", grid.Height()),
		attribute.Int("npc.count", len(npcs)),
		attribute.Int("player.start_x", cfg.PlayerStart.X),
		attribute.Int("player.start_y", cfg.PlayerStart.Y),
		attribute.Int64("seed", seed),
	)

	return NewWithSession(cfg, sess, source, renderer, logger), nil
}

// NewWithSession creates a game around an existing session.
func NewWithSession(cfg Config, sess *session.Session, source EventSource, renderer Renderer, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		cfg:        cfg,
		session:    sess,
		controller: NewController(sess, logger),
		keymap:     input.DefaultKeymap(),
		source:     source,
		renderer:   renderer,
		logger:     logger,
		running:    true,
	}
}

// Session returns the game's session.
func (g *Game) Session() *session.Session { return g.session }

// Controller returns the game's interaction controller.
func (g *Game) Controller() *Controller { return g.controller }

// Running reports whether the loop should keep going.
func (g *Game) Running() bool { return g.running }

// Run executes the main game loop until a quit event arrives or ctx is done.
// A failing input source or renderer ends the loop with its error.
func (g *Game) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(g.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.logger.Info("game loop started", "fps", g.cfg.FPS)
	defer g.logger.Info("game loop stopped")

	for g.running {
		if err := g.Tick(ctx); err != nil {
			return err
		}
		if !g.running {
			break
		}

		select {
		case <-ctx.Done():
			g.running = false
		case <-ticker.C:
		}
	}
	return nil
}

// Tick feeds every pending keystroke to the controller in arrival order,
// then renders once.
func (g *Game) Tick(ctx context.Context) error {
	strokes, err := g.source.Drain()
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	for _, ks := range strokes {
		typing := g.controller.Mode() == ModeTextEntry
		ev, ok := g.keymap.Translate(ks, typing)
		if !ok {
			continue
		}
		if g.controller.Handle(ctx, ev) {
			g.running = false
			return nil
		}
	}

	if err := g.renderer.Render(g.session.Snapshot()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
