// Package registry maps game ids to factories. Games register themselves in
// init(), so commands can create them by id without importing game packages
// directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the contract between a game and the platform.
// Games are pure logic with no terminal dependencies; the platform owns input
// mapping, frame timing and drawing the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line and in the score table.
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a new game for the given screen size, frame rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame. Input holds the actions pressed since the
	// previous frame, in press order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// Factory creates a new, unstarted game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register adds a game factory under id.
// Registering the same id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
