package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/api"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/spectator"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagAPIAddr  string
	flagAPIWatch bool
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API: accounts, the online leaderboard and a pool of
live AI games that clients can watch.

Endpoints:
  POST /auth/signup, /auth/login, /auth/logout   GET /auth/me?email=
  GET  /leaderboard?mode=&limit=                 POST /leaderboard?email=
  GET  /games                                    POST /games/:id/join, /games/:id/leave
  GET  /games/:id/state                          GET  /games/:id/board.png?size=

With --watch and --config, edits to the config file are applied to live
games when they next restart.

Examples:
  snake-arena api
  snake-arena api --addr :9000 --config ./snake.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
	apiCmd.Flags().BoolVar(&flagAPIWatch, "watch", false, "Reload --config on change")
}

func runAPI(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := spectator.DefaultOptions()
	opts.Games = snakeCfg.Spectator.Games
	opts.Config = snakeCfg.Game()
	opts.MistakeRate = snakeCfg.Agent.MistakeRate
	opts.RestartDelay = snakeCfg.Spectator.RestartDelay
	opts.Seed = flagSeed

	hub := spectator.NewHub(opts, logger.WithPrefix("spectator"))
	hub.Start(ctx)
	defer hub.Close()

	if flagAPIWatch {
		if flagConfig == "" {
			return errors.New("--watch needs --config")
		}
		w, err := config.NewWatcher(flagConfig, snakeCfg, logger.WithPrefix("config"))
		if err != nil {
			return err
		}
		w.Subscribe(func(cfg config.SnakeConfig) {
			hub.Reconfigure(cfg.Game())
		})
		go func() {
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("config watcher stopped", "err", err)
			}
		}()
	}

	srv := api.NewServer(store, hub, logger.WithPrefix("api"), snakeCfg.CellSize)
	return srv.ListenAndServe(ctx, flagAPIAddr)
}
