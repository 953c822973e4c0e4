// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play              - Play a game
//	snake menu              - Pick a difficulty interactively and play repeatedly
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//	snake config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat apples, don't bite yourself",
	Long: `Snake is the classic arcade game played in your terminal.

The snake moves on a walled grid at a fixed pace. Every apple makes it one
segment longer and a little faster. Hitting a wall or your own body ends
the round; a new one starts right after.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores --recent`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
