package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// difficultyReporter is implemented by games that record scores per difficulty.
type difficultyReporter interface {
	Difficulty() string
}

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	altScreen  bool
	embedded   bool // Back returns to the caller instead of being ignored
	quitting   bool
	backToMenu bool
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
// sessionID groups the scores of one program run or SSH connection.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		sessionID:  sessionID,
		inputFrame: core.NewInputFrame(),
		altScreen:  true,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := mapGameKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionFullscreen:
		m.altScreen = !m.altScreen
		if m.altScreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case action == core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that cannot relayout are restarted at the new size
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.saveErr = m.saveScore(e.Score)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished session. Empty sessions are not recorded.
func (m Model) saveScore(score int) error {
	if m.store == nil || score <= 0 {
		return nil
	}
	entry := storage.ScoreEntry{
		GameID:    m.game.ID(),
		SessionID: m.sessionID,
		Score:     score,
	}
	if d, ok := m.game.(difficultyReporter); ok {
		entry.Difficulty = d.Difficulty()
	}
	_, err := m.store.SaveScore(entry)
	return err
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state reported by the last simulated frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// SaveErr returns the error from the most recent score save, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// IsBackToMenu reports whether the player asked to return to the menu.
func (m Model) IsBackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// When embedded is set, B returns to the caller instead of being ignored.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string, embedded bool) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, sessionID)
	model.embedded = embedded

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		if err := m.SaveErr(); err != nil {
			return m.backToMenu, fmt.Errorf("tui: %w", err)
		}
		return m.backToMenu, nil
	}
	return false, nil
}
