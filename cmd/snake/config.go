package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	flagConfigDefaults   bool
	flagConfigDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the snake configuration as YAML.

The config is looked up in this order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Save the output to ~/.snake/configs/snake.yaml to customize the game.

Examples:
  snake config
  snake config --defaults > ~/.snake/configs/snake.yaml
  snake config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults && flagConfigDifficulty == "" {
		os.Stdout.Write(config.GetDefaultYAML("snake"))
		return
	}

	preset, err := config.ParsePreset(flagConfigDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultSnakeConfig()
	if !flagConfigDefaults {
		cfg, err = config.LoadSnake(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	config.ApplySnakePreset(&cfg, preset)

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
