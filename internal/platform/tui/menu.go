package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty config.DifficultyPreset
	Title      string
	Best       int // Best recorded score at this difficulty
}

// difficultyItems lists the presets with their best recorded scores.
// A missing store or a failed lookup only hides the score.
func difficultyItems(store *storage.Store) []MenuItem {
	items := []MenuItem{
		{Difficulty: config.DifficultyEasy, Title: "Easy"},
		{Difficulty: config.DifficultyNormal, Title: "Normal"},
		{Difficulty: config.DifficultyHard, Title: "Hard"},
	}
	if store == nil {
		return items
	}
	for i := range items {
		items[i].Best, _ = store.HighScore("snake", string(items[i].Difficulty))
	}
	return items
}

// MenuModel is the difficulty picker shown before a game.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	help   help.Model

	selected    *MenuItem
	quitting    bool
	wantsScores bool
}

// NewMenuModel creates a new menu model. The cursor starts on Normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  difficultyItems(store),
		cursor: 1,
		config: cfg,
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch mapMenuKey(msg) {
		case MenuActionQuit, MenuActionBack:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)
		case MenuActionDown:
			m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
		case MenuActionSelect:
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		case MenuActionScoreboard:
			m.wantsScores = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	current := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	lines := []string{
		"",
		title.Render("  S N A K E  "),
		"",
		"Select a difficulty",
		"",
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s", item.Title)
		if item.Best > 0 {
			line += fmt.Sprintf("  best %d", item.Best)
		}
		if i == m.cursor {
			line = current.Render(">" + line[1:])
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", dim.Render(m.help.View(defaultMenuKeys)))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantsScores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	switch {
	case result.WantsScoreboard:
	case m.Selected() != nil:
		result.Difficulty = m.Selected().Difficulty
	default:
		result.Quit = true
	}
	return result, nil
}
