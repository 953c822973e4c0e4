package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	mine := storage.NewSessionID()
	entries := []storage.ScoreEntry{
		{GameID: "snake", Difficulty: "easy", SessionID: mine, Score: 5},
		{GameID: "snake", Difficulty: "hard", Score: 9},
		{GameID: "snake", Difficulty: "hard", Score: 3},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	var model tea.Model = NewScoreboardModel(store, "snake", mine, 100, 30)
	sb := model.(ScoreboardModel)
	if len(sb.scores) != 3 || sb.scores[0].Score != 9 {
		t.Fatalf("All board = %+v", sb.scores)
	}

	rows := sb.table.Rows()
	if rows[1][0] != "#2*" {
		t.Errorf("own session row rank = %q, want #2*", rows[1][0])
	}

	if !strings.Contains(sb.View(), "this session: 1 games, best 5") {
		t.Errorf("view lacks the session summary:\n%s", sb.View())
	}

	// All -> Easy -> Normal -> Hard
	for i := 0; i < 3; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	sb = model.(ScoreboardModel)
	if len(sb.scores) != 2 {
		t.Errorf("Hard board has %d rows, want 2", len(sb.scores))
	}
	if !strings.Contains(sb.View(), "Hard") {
		t.Error("view does not name the current board")
	}

	// Wraps back to Recent
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = model.(ScoreboardModel)
	if len(sb.scores) != 3 || sb.scores[0].Score != 3 {
		t.Errorf("Recent board = %+v", sb.scores)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", "", 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc did not go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit")
	}
}
