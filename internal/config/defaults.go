package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:       snake.DefaultConfig.GridSize,
		CellSize:       snake.DefaultConfig.CellSize,
		InitialSpeed:   snake.DefaultConfig.InitialSpeed,
		SpeedIncrement: snake.DefaultConfig.SpeedIncrement,
		MaxSpeed:       snake.DefaultConfig.MaxSpeed,
		Mode:           snake.ModeWalls,
		Agent: AgentConfig{
			MistakeRate: snake.DefaultMistakeRate,
		},
		Spectator: SpectatorConfig{
			Games:        3,
			RestartDelay: 2 * time.Second,
		},
	}
}
