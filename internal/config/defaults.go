package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  22,
			Height: 22,
		},
		Timing: SnakeTiming{
			TickInterval: 300 * time.Millisecond,
			DecayFactor:  0.95,
			MinInterval:  40 * time.Millisecond,
		},
		Queue: SnakeQueue{
			Capacity: 10,
		},
		Apple: SnakeApple{
			MarginLow:   2,
			InitialHigh: 2,
			RespawnHigh: 1,
		},
		Death: SnakeDeath{
			FrameInterval: 100 * time.Millisecond,
			Frames:        3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
