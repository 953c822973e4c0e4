package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// quitKey ends the program from any screen of a game.
var quitKey = key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q/esc", "quit"))

// gameBindings maps in-game keys to actions. Steering keys come first.
var gameBindings = []struct {
	binding key.Binding
	action  core.Action
}{
	{key.NewBinding(key.WithKeys("w", "up")), core.ActionUp},
	{key.NewBinding(key.WithKeys("s", "down")), core.ActionDown},
	{key.NewBinding(key.WithKeys("a", "left")), core.ActionLeft},
	{key.NewBinding(key.WithKeys("d", "right")), core.ActionRight},
	{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
	{key.NewBinding(key.WithKeys("b")), core.ActionBack},
	{key.NewBinding(key.WithKeys("p", " ")), core.ActionPause},
	{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
	{key.NewBinding(key.WithKeys("f")), core.ActionFullscreen},
}

// mapGameKey translates a key press during play.
// Returns the action (may be ActionNone) and whether it's a quit request.
func mapGameKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, quitKey) {
		return core.ActionQuit, true
	}
	for _, b := range gameBindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// menuKeys are the difficulty menu bindings, also rendered as its help line.
type menuKeys struct {
	Up, Down, Select, Scores, Back, Quit key.Binding
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Back}}
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
	Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	Back:   key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

// mapMenuKey translates a key press in the difficulty menu.
func mapMenuKey(msg tea.KeyMsg) MenuAction {
	k := defaultMenuKeys
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scores):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
