package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuSelectsDifficulty(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want config.DifficultyPreset
	}{
		{"default is normal", []string{"enter"}, config.DifficultyNormal},
		{"up to easy", []string{"up", "enter"}, config.DifficultyEasy},
		{"down to hard", []string{"j", "enter"}, config.DifficultyHard},
		{"clamped at bottom", []string{"down", "down", "down", "enter"}, config.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = NewMenuModel(nil, core.DefaultConfig())
			for _, k := range tt.keys {
				model, _ = model.Update(keyMsg(k))
			}

			selected := model.(MenuModel).Selected()
			if selected == nil {
				t.Fatal("nothing selected")
			}
			if selected.Difficulty != tt.want {
				t.Errorf("selected %q, want %q", selected.Difficulty, tt.want)
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(keyMsg("tab"))
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab did not request the scoreboard")
	}

	next, _ = m.Update(keyMsg("q"))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q did not quit")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "snake", Difficulty: "hard", Score: 42}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if !strings.Contains(m.View(), "42") {
		t.Errorf("menu does not show best hard score:\n%s", m.View())
	}
}
