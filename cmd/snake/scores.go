package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresRecent     bool
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best snake scores, or the latest ones with --recent.

Examples:
  snake scores
  snake scores --difficulty hard
  snake scores --recent --limit 20
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show scores for this preset: easy, normal, hard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest games instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresDifficulty != "" {
		if _, err := config.ParsePreset(flagScoresDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores("snake"); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("All snake scores cleared.")
		return
	}

	title := "High Scores"
	var scores []storage.ScoreEntry
	if flagScoresRecent {
		title = "Recent Games"
		scores, err = store.RecentScores("snake", flagScoresLimit)
	} else {
		scores, err = store.TopScores("snake", flagScoresDifficulty, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	if flagScoresDifficulty != "" && !flagScoresRecent {
		title += " (" + flagScoresDifficulty + ")"
	}
	fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Println(scoresTable(scores))

	stats, err := store.GetGameStats("snake")
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Sessions: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.Sessions, stats.HighScore, stats.AvgScore)
	}
}

// scoresTable renders score entries as a bordered table.
func scoresTable(scores []storage.ScoreEntry) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Apples", "Level", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, entry := range scores {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", entry.Score),
			entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}
