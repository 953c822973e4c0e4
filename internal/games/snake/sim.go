package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Settings are the tunables of a simulation.
type Settings struct {
	Grid          Grid
	TickInterval  time.Duration
	DecayFactor   float64
	MinInterval   time.Duration // 0 = no floor
	QueueCapacity int
	Apple         AppleRange
	TailLength    int
	DeathInterval time.Duration
	DeathFrames   int
}

// DefaultSettings returns the classic 22x22 board.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultSnakeConfig())
}

// SettingsFromConfig converts a loaded configuration.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	return Settings{
		Grid:          Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		TickInterval:  cfg.Timing.TickInterval,
		DecayFactor:   cfg.Timing.DecayFactor,
		MinInterval:   cfg.Timing.MinInterval,
		QueueCapacity: cfg.Queue.Capacity,
		Apple: AppleRange{
			Low:         cfg.Apple.MarginLow,
			InitialHigh: cfg.Apple.InitialHigh,
			RespawnHigh: cfg.Apple.RespawnHigh,
		},
		TailLength:    DefaultTailLength,
		DeathInterval: cfg.Death.FrameInterval,
		DeathFrames:   cfg.Death.Frames,
	}
}

// Sim holds everything scoped to a playing session: input buffer, snake,
// apple, walls, timers and lifecycle state. One Sim serves consecutive
// sessions; each game over rebuilds it in place.
type Sim struct {
	settings Settings
	rng      *rand.Rand

	queue   *DirectionQueue
	snake   *Snake
	apple   core.Point
	walls   []core.Point
	wallSet WallSet

	move       MoveTimer
	death      MoveTimer
	deathFrame int

	state    State
	score    int    // Apples eaten this session
	moves    uint64 // Moves this session
	sessions int    // Sessions started, including the current one

	events []core.Event
}

// NewSim creates a simulation and starts its first session.
// Equal settings and seeds produce equal runs for equal inputs.
func NewSim(settings Settings, seed int64) *Sim {
	s := &Sim{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
		queue:    NewDirectionQueue(settings.QueueCapacity),
		snake:    &Snake{},
		move:     NewMoveTimer(settings.TickInterval),
		death:    NewMoveTimer(settings.DeathInterval),
	}
	s.begin()
	return s
}

// begin sets up a fresh session. The timers are reused with their starting
// periods restored.
func (s *Sim) begin() {
	g := s.settings.Grid
	s.queue.Reset()
	s.snake.Reset(g.Center(), DirRight, s.settings.TailLength)
	s.walls = g.Walls()
	s.wallSet = NewWallSet(s.walls)
	s.apple = s.settings.Apple.Initial(s.rng, g)
	s.move.SetDuration(s.settings.TickInterval)
	s.move.Reset()
	s.death.SetDuration(s.settings.DeathInterval)
	s.death.Reset()
	s.deathFrame = 0
	s.state = StatePlaying
	s.score = 0
	s.moves = 0
	s.sessions++
}

// Steer offers a direction to the input queue. Input is ignored outside play.
func (s *Sim) Steer(d Direction) bool {
	if s.state != StatePlaying {
		return false
	}
	return s.queue.Offer(d)
}

// Update advances the clock of the current state by delta, runs at most one
// step, and returns the events produced since the last call.
func (s *Sim) Update(delta time.Duration) []core.Event {
	switch s.state {
	case StatePlaying:
		if s.move.Tick(delta) {
			s.state = Step(s, s.state)
		}
	case StateGameOver:
		if s.death.Tick(delta) {
			s.state = Step(s, s.state)
		}
	}
	return s.drain()
}

// Restart abandons the current session and starts a new one immediately.
func (s *Sim) Restart() {
	s.begin()
	s.emit(core.EventRestarted)
}

func (s *Sim) stepPlaying() State {
	if d, ok := s.queue.Pop(); ok && d != s.snake.Heading.Opposite() {
		s.snake.Heading = d
	}
	s.snake.Advance()
	s.moves++
	s.emit(core.EventMoved)

	if HitsBody(s.snake) || HitsWall(s.snake.Head, s.wallSet) {
		s.death.Reset()
		s.deathFrame = 0
		s.emit(core.EventGameOver)
		return StateGameOver
	}

	if s.snake.Head == s.apple {
		s.eat()
	}
	return StatePlaying
}

func (s *Sim) eat() {
	s.snake.Grow()
	s.score++
	s.apple = s.settings.Apple.Respawn(s.rng, s.settings.Grid)
	s.move.Scale(s.settings.DecayFactor, s.settings.MinInterval)
	s.emit(core.EventScored)
}

func (s *Sim) stepGameOver() State {
	if s.deathFrame < s.settings.DeathFrames-1 {
		s.deathFrame++
		return StateGameOver
	}
	s.begin()
	s.emit(core.EventRestarted)
	return StatePlaying
}

func (s *Sim) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{Kind: kind, Score: s.score})
}

func (s *Sim) drain() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := slices.Clone(s.events)
	s.events = s.events[:0]
	return out
}

// State returns the lifecycle state.
func (s *Sim) State() State {
	return s.state
}

// Score returns the apples eaten this session.
func (s *Sim) Score() int {
	return s.score
}

// Interval returns the current time between moves.
func (s *Sim) Interval() time.Duration {
	return s.move.Duration()
}

// Snake returns the live snake. Callers must not modify it.
func (s *Sim) Snake() *Snake {
	return s.snake
}

// Apple returns the apple position.
func (s *Sim) Apple() core.Point {
	return s.apple
}

// Walls returns the wall tiles in row-major order.
func (s *Sim) Walls() []core.Point {
	return s.walls
}

// Grid returns the board geometry.
func (s *Sim) Grid() Grid {
	return s.settings.Grid
}

// DeathFrame returns the index of the death presentation frame on screen.
func (s *Sim) DeathFrame() int {
	return s.deathFrame
}
