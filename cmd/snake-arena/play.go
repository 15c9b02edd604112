package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagMode  string
	flagSpeed string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake. Without --mode or --speed a setup screen
lets you choose both.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Start, pause and resume
  R            - Restart
  M            - Switch mode (when not playing)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Modes:
  walls         - Hitting the border ends the game
  pass-through  - The snake wraps to the opposite side

Speeds:
  slow, normal, fast

Examples:
  snake-arena play
  snake-arena play --mode pass-through
  snake-arena play --speed fast --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Board mode: walls or pass-through (default from config)")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Difficulty: slow, normal or fast")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	mode := snakeCfg.Mode
	if flagMode != "" {
		mode = snake.Mode(flagMode)
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q (want walls or pass-through)", flagMode)
		}
	}
	speed, err := config.ParseSpeed(flagSpeed)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("mode") && !cmd.Flags().Changed("speed") {
		sel, err := tui.RunSnakeSetup(mode, cfg)
		if err != nil {
			return err
		}
		if sel == nil {
			return nil
		}
		mode, speed = sel.Mode, sel.Speed
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(newSnakeGame(mode, speed), store, cfg)
}

// newSnakeGame creates a player game with the configured tuning at the given speed.
func newSnakeGame(mode snake.Mode, speed config.Speed) registry.Game {
	gc := snakeCfg
	config.ApplySpeed(&gc, speed)
	logger.Debug("starting game", "mode", mode, "speed", speed, "initial_speed", gc.InitialSpeed)
	return snake.New(mode).WithConfig(gc.Game())
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
