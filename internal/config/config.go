// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   SnakeGrid   `yaml:"grid"`
	Timing SnakeTiming `yaml:"timing"`
	Queue  SnakeQueue  `yaml:"queue"`
	Apple  SnakeApple  `yaml:"apple"`
	Death  SnakeDeath  `yaml:"death"`
}

// SnakeGrid defines the playfield size in tiles, wall ring included.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines the movement cadence.
type SnakeTiming struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	DecayFactor  float64       `yaml:"decay_factor"` // Applied to the interval per apple
	MinInterval  time.Duration `yaml:"min_interval"` // 0 = no floor
}

// SnakeQueue defines the buffered direction input.
type SnakeQueue struct {
	Capacity int `yaml:"capacity"`
}

// SnakeApple defines the random placement range for apples.
// X is drawn from [MarginLow, Width-InitialHigh) when a session starts and
// from [MarginLow, Width-RespawnHigh) after an apple is eaten (same for Y).
type SnakeApple struct {
	MarginLow   int `yaml:"margin_low"`
	InitialHigh int `yaml:"initial_high"`
	RespawnHigh int `yaml:"respawn_high"`
}

// SnakeDeath defines the game over presentation before a new session starts.
type SnakeDeath struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Frames        int           `yaml:"frames"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid snake config")

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	// Wall ring plus a 4-tile starting snake must fit
	if c.Grid.Width < 8 || c.Grid.Height < 5 {
		return fmt.Errorf("%w: grid %dx%d is too small", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.Timing.DecayFactor <= 0 || c.Timing.DecayFactor > 1 {
		return fmt.Errorf("%w: decay_factor %.3f not in (0, 1]", ErrInvalidConfig, c.Timing.DecayFactor)
	}
	if c.Timing.MinInterval < 0 {
		return fmt.Errorf("%w: min_interval must not be negative", ErrInvalidConfig)
	}
	if c.Timing.MinInterval > c.Timing.TickInterval {
		return fmt.Errorf("%w: min_interval %v is above tick_interval %v",
			ErrInvalidConfig, c.Timing.MinInterval, c.Timing.TickInterval)
	}
	if c.Queue.Capacity <= 0 {
		return fmt.Errorf("%w: queue capacity must be positive", ErrInvalidConfig)
	}
	if c.Apple.MarginLow < 1 {
		return fmt.Errorf("%w: apple margin_low must keep apples off the wall", ErrInvalidConfig)
	}
	for name, high := range map[string]int{"initial_high": c.Apple.InitialHigh, "respawn_high": c.Apple.RespawnHigh} {
		if high < 1 {
			return fmt.Errorf("%w: apple %s must keep apples off the wall", ErrInvalidConfig, name)
		}
		if c.Grid.Width-high <= c.Apple.MarginLow || c.Grid.Height-high <= c.Apple.MarginLow {
			return fmt.Errorf("%w: apple %s leaves an empty placement range", ErrInvalidConfig, name)
		}
	}
	if c.Death.Frames < 0 || c.Death.FrameInterval <= 0 {
		return fmt.Errorf("%w: death presentation needs a positive frame interval", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// IntervalScaleForPreset returns the multiplier applied to the starting tick interval.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 4.0 / 3.0
	case DifficultyHard:
		return 2.0 / 3.0
	default:
		return 1.0
	}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
