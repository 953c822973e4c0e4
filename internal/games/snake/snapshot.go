package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable simulation state for rendering checks and
// determinism testing.
type Snapshot struct {
	Session    int
	Moves      uint64
	State      State
	Score      int
	Head       core.Point
	Heading    Direction
	Segments   []core.Point
	Apple      core.Point
	Interval   time.Duration
	DeathFrame int
	Pending    []Direction
}

// Snapshot returns a copy of the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Session:    s.sessions,
		Moves:      s.moves,
		State:      s.state,
		Score:      s.score,
		Head:       s.snake.Head,
		Heading:    s.snake.Heading,
		Segments:   s.snake.Segments(),
		Apple:      s.apple,
		Interval:   s.move.Duration(),
		DeathFrame: s.deathFrame,
		Pending:    s.queue.Pending(),
	}
}

// Snapshot returns the simulation snapshot of the running game.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}
