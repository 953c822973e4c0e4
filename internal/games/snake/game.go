// Package snake implements the classic snake game: a snake steered through a
// walled grid eats apples, grows, and speeds up until it runs into a wall or
// itself.
package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Package-level settings used by the registry factory.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets an explicit config file for games created by New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset for games created by New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger games report lifecycle events to. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the simulation to the platform's frame loop.
type Game struct {
	preset config.DifficultyPreset
	cfg    config.SnakeConfig
	sim    *Sim
	log    *log.Logger
	frame  time.Duration
	tick   uint64

	// Screen layout
	screenW int
	screenH int
	offsetX int
	offsetY int

	paused   bool
	tooSmall bool
}

// New creates a game using the package-level difficulty preset.
func New() *Game {
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		preset = config.DifficultyNormal
	}
	return NewWithPreset(preset)
}

// NewWithPreset creates a game with an explicit difficulty preset.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Difficulty returns the preset the game was created with.
func (g *Game) Difficulty() string {
	return string(g.preset)
}

// Reset loads configuration and starts a new simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger
	sc, err := config.LoadSnake(configPath)
	if err != nil {
		g.log.Warn("falling back to default snake config", "err", err)
		sc = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&sc, g.preset)
	if err := sc.Validate(); err != nil {
		g.log.Warn("preset left an unplayable config, using defaults", "err", err)
		sc = config.DefaultSnakeConfig()
		config.ApplySnakePreset(&sc, g.preset)
	}
	g.cfg = sc

	g.sim = NewSim(SettingsFromConfig(sc), cfg.Seed)
	g.frame = cfg.FrameDuration()
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("session started",
		"difficulty", g.preset,
		"grid", sc.Grid.Width, "interval", sc.Timing.TickInterval, "seed", cfg.Seed)
}

// Resize recomputes the layout for a new screen size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.sim == nil {
		return
	}
	grid := g.sim.Grid()
	boardW := grid.Width * tileWidth
	boardH := grid.Height
	g.tooSmall = w < boardW || h < boardH+hudHeight
	g.offsetX = max((w-boardW)/2, 0)
	g.offsetY = hudHeight + max((h-hudHeight-boardH)/2, 0)
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionPause) && g.sim.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.sim.State() == StateGameOver {
		g.sim.Restart()
	}
	for _, a := range input.Sequence() {
		if d, ok := directionFromAction(a); ok {
			g.sim.Steer(d)
		}
	}

	events := g.sim.Update(g.frame)
	g.logEvents(events)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventScored:
			g.log.Debug("apple eaten", "apples", e.Score, "interval", g.sim.Interval())
		case core.EventGameOver:
			g.log.Info("game over", "apples", e.Score, "length", g.sim.Snake().Len(), "tick", g.tick)
		case core.EventRestarted:
			g.log.Debug("session restarted")
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Config returns the effective configuration of the running game.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}
