// snake-arena is a terminal Snake game with an AI spectator mode, an SSH
// server and an HTTP API for accounts, leaderboards and live games.
//
// Usage:
//
//	snake-arena list             - List available game variants
//	snake-arena play             - Play Snake (setup screen unless flags are given)
//	snake-arena watch            - Watch the AI play
//	snake-arena menu             - Start menu to pick games interactively
//	snake-arena scores [game]    - Show high scores
//	snake-arena serve            - Start SSH server for remote play
//	snake-arena api              - Start the HTTP API with live AI games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/snake.db)
//	--config <path>     - Use a custom snake.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs.
	logger   *log.Logger
	snakeCfg config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake-arena",
	Short: "Snake Arena - Snake in your terminal, over SSH and over HTTP",
	Long: `Snake Arena is a Snake game for the terminal with walls and
pass-through modes, three difficulty levels and an AI you can watch.

Available commands:
  list     - Show all game variants
  play     - Play Snake
  watch    - Watch the AI play
  menu     - Interactive game picker menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Start the HTTP API

Examples:
  snake-arena play --mode pass-through --speed fast
  snake-arena watch
  snake-arena serve --ssh :2222
  snake-arena api --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// setup creates the logger and loads the game configuration.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-arena",
		Level:           level,
	})
	log.SetDefault(logger)

	snakeCfg, err = config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	applyGameConfig(snakeCfg)
	return nil
}

// applyGameConfig makes cfg the tuning of games created from the registry.
func applyGameConfig(cfg config.SnakeConfig) {
	snake.Configure(cfg.Game())
	snake.SetMistakeRate(cfg.Agent.MistakeRate)
	snake.SetRestartDelay(cfg.Spectator.RestartDelay)
}

// runtimeConfig builds the frame settings from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
