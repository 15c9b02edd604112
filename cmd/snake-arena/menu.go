package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab to open
the scoreboard. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case res.GameID == snake.IDDemo:
			game, err := registry.Create(res.GameID)
			if err != nil {
				return err
			}
			if err := tui.Run(game, nil, cfg); err != nil {
				return err
			}

		default:
			mode := snake.ModeWalls
			if res.GameID == snake.IDPassThrough {
				mode = snake.ModePassThrough
			}
			sel, err := tui.RunSnakeSetup(mode, cfg)
			if err != nil {
				return err
			}
			if sel == nil {
				continue
			}
			if err := tui.Run(newSnakeGame(sel.Mode, sel.Speed), store, cfg); err != nil {
				return err
			}
		}
	}
}
