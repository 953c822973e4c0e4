package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// boardLimit caps the rows loaded for one board.
const boardLimit = 100

// board is one page of the scoreboard: a leaderboard filtered by difficulty,
// or the latest finished sessions.
type board struct {
	Title      string
	Difficulty string // Empty matches every difficulty
	Recent     bool
}

var boards = []board{
	{Title: "All"},
	{Title: "Easy", Difficulty: "easy"},
	{Title: "Normal", Difficulty: "normal"},
	{Title: "Hard", Difficulty: "hard"},
	{Title: "Recent", Recent: true},
}

// scoreboardKeys are the scoreboard bindings, also rendered as the help line.
type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev board")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the finished sessions of one game, one board at a time.
// Rows recorded by the current play session are marked with a star.
type ScoreboardModel struct {
	store     *storage.Store
	gameID    string
	sessionID string

	board  int
	scores []storage.ScoreEntry
	mine   map[int64]bool // Entry ids recorded by this session
	best   int            // Best score of this session

	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the All board.
func NewScoreboardModel(store *storage.Store, gameID, sessionID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		gameID:    gameID,
		sessionID: sessionID,
		mine:      make(map[int64]bool),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.table = newScoreTable(width, height)
	m.loadSession()
	m.loadBoard()
	return m
}

// newScoreTable builds the table widget sized for the terminal.
func newScoreTable(width, height int) table.Model {
	dateWidth := 14
	if width > 60 {
		dateWidth = 18
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Apples", Width: 8},
			{Title: "Level", Width: 8},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))
	t.SetStyles(s)
	return t
}

// loadSession collects the entries this play session recorded.
func (m *ScoreboardModel) loadSession() {
	if m.store == nil || m.sessionID == "" {
		return
	}
	entries, err := m.store.SessionScores(m.sessionID)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.GameID != m.gameID {
			continue
		}
		m.mine[e.ID] = true
		m.best = max(m.best, e.Score)
	}
}

// loadBoard fetches the rows of the current board.
func (m *ScoreboardModel) loadBoard() {
	m.scores = nil
	if m.store != nil {
		b := boards[m.board]
		var err error
		if b.Recent {
			m.scores, err = m.store.RecentScores(m.gameID, boardLimit)
		} else {
			m.scores, err = m.store.TopScores(m.gameID, b.Difficulty, boardLimit)
		}
		if err != nil {
			m.scores = nil
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rank := "#" + strconv.Itoa(i+1)
		if m.mine[s.ID] {
			rank += "*"
		}
		rows[i] = table.Row{rank, strconv.Itoa(s.Score), s.Difficulty, s.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := defaultScoreboardKeys
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.board = (m.board + 1) % len(boards)
			m.loadBoard()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.board = (m.board + len(boards) - 1) % len(boards)
			m.loadBoard()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newScoreTable(m.width, m.height)
		m.loadBoard()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, board tabs, table and help line.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))

	tabs := make([]string, len(boards))
	for i, b := range boards {
		if i == m.board {
			tabs[i] = active.Render(" " + b.Title + " ")
		} else {
			tabs[i] = dim.Render(" " + b.Title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width {
		tabLine = fmt.Sprintf("< %s >", boards[m.board].Title)
	}

	var body string
	if len(m.scores) == 0 {
		body = dim.Italic(true).Padding(1, 2).Render("No scores recorded yet.\nEat an apple to get on the board!")
	} else {
		body = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title.Render("SNAKE SCORES - "+boards[m.board].Title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")
	if len(m.mine) > 0 {
		b.WriteString(centerText(fmt.Sprintf("* this session: %d games, best %d", len(m.mine), m.best), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dim.Render(m.help.View(defaultScoreboardKeys)), m.width))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID, sessionID string, width, height int) (goBack bool, err error) {
	finalModel, err := tea.NewProgram(
		NewScoreboardModel(store, gameID, sessionID, width, height),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
