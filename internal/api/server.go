// Package api exposes accounts, the leaderboard and the spectator games
// over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/snake-arena/internal/spectator"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Server wires the HTTP routes to the store and the spectator hub.
type Server struct {
	store    *storage.Store
	hub      *spectator.Hub
	logger   *log.Logger
	cellSize int
	engine   *gin.Engine
}

// NewServer builds the router. cellSize is the pixel size of one board
// cell in rendered thumbnails before any resize.
func NewServer(store *storage.Store, hub *spectator.Hub, logger *log.Logger, cellSize int) *Server {
	if cellSize <= 0 {
		cellSize = 20
	}
	s := &Server{
		store:    store,
		hub:      hub,
		logger:   logger,
		cellSize: cellSize,
		engine:   gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), requestLogger(s.logger), cors())

	auth := r.Group("/auth")
	auth.POST("/signup", s.signup)
	auth.POST("/login", s.login)
	auth.POST("/logout", s.logout)
	auth.GET("/me", s.me)

	r.GET("/leaderboard", s.leaderboard)
	r.POST("/leaderboard", s.submitScore)

	games := r.Group("/games")
	games.GET("", s.listGames)
	games.POST("/:id/join", s.joinGame)
	games.POST("/:id/leave", s.leaveGame)
	games.GET("/:id/state", s.gameState)
	games.GET("/:id/board.png", s.gameBoard)
}

// Handler returns the router for use with net/http or httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}
	return nil
}
