package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the arcade to SSH clients through Wish.
type SSHServer struct {
	config SSHServerConfig
	snake  config.SnakeConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a server. The store may be nil, in which case
// scores are not saved. The caller owns the store.
func NewSSHServer(cfg SSHServerConfig, snakeCfg config.SnakeConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}

	srv := &SSHServer{
		config: cfg,
		snake:  snakeCfg,
		store:  store,
		logger: logger.WithPrefix("ssh"),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, s.snake, cfg, sshSession.User()).WithLogger(s.logger)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenSetup
	screenScoreboard
	screenGame
)

// SessionModel manages the full session flow inside one Bubble Tea
// program: menu, setup, scoreboard and game, returning to the menu
// instead of exiting.
type SessionModel struct {
	store      *storage.Store
	snake      config.SnakeConfig
	config     core.RuntimeConfig
	username   string
	logger     *log.Logger
	screen     sessionScreen
	menu       MenuModel
	setup      SnakeSetupModel
	scoreboard ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, snakeCfg config.SnakeConfig, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:    store,
		snake:    snakeCfg,
		config:   cfg,
		username: username,
		logger:   log.Default(),
		menu:     NewMenuModel(store, cfg),
	}
}

// WithLogger sets the logger passed to games.
func (m SessionModel) WithLogger(l *log.Logger) SessionModel {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSetup:
		return m.updateSetup(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.config = m.menu.Config()
		switch id := m.menu.Selected().GameID; id {
		case snake.IDWalls, snake.IDPassThrough:
			mode := snake.ModeWalls
			if id == snake.IDPassThrough {
				mode = snake.ModePassThrough
			}
			m.screen = screenSetup
			m.setup = NewSnakeSetupModel(mode, m.config.ScreenW, m.config.ScreenH)
			return m, m.setup.Init()
		default:
			game, err := registry.Create(id)
			if err != nil {
				m.logger.Error("unknown game selected", "game", id, "err", err)
				return m.toMenu()
			}
			// Spectating never records scores.
			return m.startGame(game, nil)
		}
	}

	return m, cmd
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if sm, ok := next.(SnakeSetupModel); ok {
		m.setup = sm
	}

	switch {
	case m.setup.IsQuitting():
		return m.quit()
	case m.setup.WantsBack():
		return m.toMenu()
	case m.setup.Selected() != nil:
		sel := m.setup.Selected()
		cfg := m.snake
		config.ApplySpeed(&cfg, sel.Speed)
		m.logger.Info("game started", "user", m.username, "mode", sel.Mode, "speed", sel.Speed)
		return m.startGame(snake.New(sel.Mode).WithConfig(cfg.Game()), m.store)
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game, store *storage.Store) (tea.Model, tea.Cmd) {
	m.screen = screenGame
	m.game = NewModel(game, store, m.config).WithLogger(m.logger)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m.quit()
		case "q", "esc":
			return m.toMenu()
		case "ctrl+s":
			// Screenshots would land on the server.
			return m, nil
		}
	}

	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSetup:
		return m.setup.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
