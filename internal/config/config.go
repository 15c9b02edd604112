// Package config provides YAML-based configuration loading, difficulty
// presets and live reloading for the snake arena.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the snake arena.
type SnakeConfig struct {
	GridSize       int             `yaml:"grid_size"`
	CellSize       int             `yaml:"cell_size"`       // Pixels per cell in rendered board images
	InitialSpeed   int             `yaml:"initial_speed"`   // Tick interval at score 0, ms
	SpeedIncrement int             `yaml:"speed_increment"` // Interval reduction per 50 points, ms
	MaxSpeed       int             `yaml:"max_speed"`       // Lower bound of the tick interval, ms
	Mode           snake.Mode      `yaml:"mode"`
	Agent          AgentConfig     `yaml:"agent"`
	Spectator      SpectatorConfig `yaml:"spectator"`
}

// AgentConfig tunes the AI player used by spectator games.
type AgentConfig struct {
	MistakeRate float64 `yaml:"mistake_rate"` // Probability of a random turn, 0.0 to 1.0
}

// SpectatorConfig controls the pool of live AI games.
type SpectatorConfig struct {
	Games        int           `yaml:"games"`         // Number of concurrent live games
	RestartDelay time.Duration `yaml:"restart_delay"` // Pause between a game over and the next game
}

// Game returns the simulation tuning carried by the config.
func (c SnakeConfig) Game() snake.GameConfig {
	return snake.GameConfig{
		GridSize:       c.GridSize,
		CellSize:       c.CellSize,
		InitialSpeed:   c.InitialSpeed,
		SpeedIncrement: c.SpeedIncrement,
		MaxSpeed:       c.MaxSpeed,
	}
}

// Validate reports the first problem found in c, wrapped in ErrInvalidConfig.
func (c SnakeConfig) Validate() error {
	switch {
	case c.GridSize < 4:
		return fmt.Errorf("%w: grid_size must be at least 4, got %d", ErrInvalidConfig, c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial_speed must be positive, got %d", ErrInvalidConfig, c.InitialSpeed)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %d", ErrInvalidConfig, c.MaxSpeed)
	case c.MaxSpeed > c.InitialSpeed:
		return fmt.Errorf("%w: max_speed %d exceeds initial_speed %d", ErrInvalidConfig, c.MaxSpeed, c.InitialSpeed)
	case c.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed_increment must not be negative, got %d", ErrInvalidConfig, c.SpeedIncrement)
	case !c.Mode.Valid():
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	case c.Agent.MistakeRate < 0 || c.Agent.MistakeRate > 1:
		return fmt.Errorf("%w: agent.mistake_rate must be within [0, 1], got %g", ErrInvalidConfig, c.Agent.MistakeRate)
	case c.Spectator.Games < 0:
		return fmt.Errorf("%w: spectator.games must not be negative, got %d", ErrInvalidConfig, c.Spectator.Games)
	case c.Spectator.RestartDelay < 0:
		return fmt.Errorf("%w: spectator.restart_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
