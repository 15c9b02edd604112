package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the AI play",
	Long: `Run an AI-controlled game. A new game starts a moment after each
game over. Scores are not recorded.

The AI's mistake rate and the restart delay come from the config file
(agent.mistake_rate, spectator.restart_delay).

Controls:
  Q/Ctrl+C  - Quit`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(snake.IDDemo)
	if err != nil {
		return err
	}
	return tui.Run(game, nil, runtimeConfig())
}
