// Package spectator runs a pool of AI-driven snake games that clients can
// watch live.
package spectator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// ErrGameNotFound is returned for an unknown live game ID.
var ErrGameNotFound = errors.New("spectator: game not found")

// Live game statuses.
const (
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Options configures a Hub.
type Options struct {
	Games        int              // Number of concurrent games
	Config       snake.GameConfig // Simulation tuning for new games
	MistakeRate  float64          // Agent random-move probability
	RestartDelay time.Duration    // Time a finished game stays visible
	TickInterval time.Duration    // Polling interval of each game loop
	Seed         int64            // 0 means time-based
	Names        []string         // Bot display names, cycled
	Modes        []snake.Mode     // Modes assigned round-robin, default walls then pass-through
}

// DefaultOptions returns the stock spectator pool.
func DefaultOptions() Options {
	return Options{
		Games:        3,
		Config:       snake.DefaultConfig,
		MistakeRate:  snake.DefaultMistakeRate,
		RestartDelay: 2 * time.Second,
		TickInterval: 10 * time.Millisecond,
		Names:        []string{"SnakeMaster", "PixelViper", "NeonNoodle", "GridRunner", "TailChaser"},
		Modes:        []snake.Mode{snake.ModeWalls, snake.ModePassThrough},
	}
}

// LiveGame is the public summary of one running game.
type LiveGame struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"playerId"`
	PlayerName string     `json:"playerName"`
	Score      int        `json:"currentScore"`
	Mode       snake.Mode `json:"mode"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"startedAt"`
	Viewers    int        `json:"viewerCount"`
}

type liveGame struct {
	mu        sync.Mutex
	info      LiveGame
	session   *snake.Session
	restartAt time.Time
	pending   *snake.GameConfig // applied at the next restart
}

// View is a consistent snapshot of one game for rendering.
type View struct {
	Game     LiveGame
	State    *snake.GameState
	GridSize int
}

// Hub owns the live games. All methods are safe for concurrent use.
type Hub struct {
	opts   Options
	logger *log.Logger

	mu    sync.RWMutex
	games map[string]*liveGame
	order []string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHub creates the games in their playing state. Call Start to run them.
func NewHub(opts Options, logger *log.Logger) *Hub {
	if len(opts.Names) == 0 {
		opts.Names = DefaultOptions().Names
	}
	if len(opts.Modes) == 0 {
		opts.Modes = DefaultOptions().Modes
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultOptions().TickInterval
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	h := &Hub{
		opts:   opts,
		logger: logger,
		games:  make(map[string]*liveGame, opts.Games),
	}

	now := time.Now()
	for i := 0; i < opts.Games; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		mode := opts.Modes[i%len(opts.Modes)]

		session := snake.NewSession(opts.Config, mode, rng)
		session.SetDriver(snake.NewAgent(rng).WithMistakeRate(opts.MistakeRate))
		session.Start(now)

		g := &liveGame{
			info: LiveGame{
				ID:         uuid.NewString(),
				PlayerID:   uuid.NewString(),
				PlayerName: opts.Names[i%len(opts.Names)],
				Mode:       mode,
				Status:     StatusPlaying,
				StartedAt:  now,
			},
			session: session,
		}
		session.OnGameOver(func(score int) {
			logger.Debug("live game over", "id", g.info.ID, "player", g.info.PlayerName, "score", score)
		})

		h.games[g.info.ID] = g
		h.order = append(h.order, g.info.ID)
	}
	return h
}

// Start runs every game in its own goroutine until ctx is cancelled or
// Close is called.
func (h *Hub) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range h.order {
		g := h.games[id]
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.run(ctx, g)
		}()
	}
	h.logger.Info("spectator games running", "count", len(h.order), "restart_delay", h.opts.RestartDelay)
}

// Close stops all game loops and waits for them to exit.
func (h *Hub) Close() {
	if h.cancel != nil {
		h.cancel()
	}
	h.wg.Wait()
}

func (h *Hub) run(ctx context.Context, g *liveGame) {
	ticker := time.NewTicker(h.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.advance(g, now)
		}
	}
}

// advance drives one game forward: restart after the delay once finished,
// otherwise tick when due.
func (h *Hub) advance(g *liveGame, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.session.State()
	if st.Status == snake.StatusGameOver {
		if g.restartAt.IsZero() {
			g.info.Status = StatusFinished
			g.info.Score = st.Score
			g.restartAt = now.Add(h.opts.RestartDelay)
			return
		}
		if now.Before(g.restartAt) {
			return
		}
		g.restartAt = time.Time{}
		if g.pending != nil {
			// Not playing, so ChangeConfig cannot refuse.
			_ = g.session.ChangeConfig(*g.pending)
			g.pending = nil
		} else {
			g.session.Reset()
		}
		g.session.Start(now)
		g.info.Status = StatusPlaying
		g.info.StartedAt = now
	}

	g.session.TryTick(now)
	g.info.Score = g.session.State().Score
}

// stepAll advances every game once. Used by tests in place of Start.
func (h *Hub) stepAll(now time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range h.order {
		h.advance(h.games[id], now)
	}
}

func (h *Hub) lookup(id string) (*liveGame, error) {
	h.mu.RLock()
	g, ok := h.games[id]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// List returns all live games in creation order.
func (h *Hub) List() []LiveGame {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]LiveGame, 0, len(h.order))
	for _, id := range h.order {
		g := h.games[id]
		g.mu.Lock()
		out = append(out, g.info)
		g.mu.Unlock()
	}
	return out
}

// Get returns the summary of one game.
func (h *Hub) Get(id string) (LiveGame, error) {
	g, err := h.lookup(id)
	if err != nil {
		return LiveGame{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.info, nil
}

// Snapshot returns the current board of one game. The state is immutable
// and may be read without further locking.
func (h *Hub) Snapshot(id string) (*snake.GameState, error) {
	g, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.State(), nil
}

// View returns the summary, board and grid size of one game, taken together.
func (h *Hub) View(id string) (View, error) {
	g, err := h.lookup(id)
	if err != nil {
		return View{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return View{
		Game:     g.info,
		State:    g.session.State(),
		GridSize: g.session.Config().GridSize,
	}, nil
}

// Join registers a viewer on a game.
func (h *Hub) Join(id string) error {
	g, err := h.lookup(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.info.Viewers++
	g.mu.Unlock()
	return nil
}

// Leave unregisters a viewer. The count never drops below zero, and
// leaving an unknown game is not an error.
func (h *Hub) Leave(id string) {
	g, err := h.lookup(id)
	if err != nil {
		return
	}
	g.mu.Lock()
	g.info.Viewers = max(0, g.info.Viewers-1)
	g.mu.Unlock()
}

// Reconfigure applies cfg to every game the next time it restarts.
// Running games keep their board until they end.
func (h *Hub) Reconfigure(cfg snake.GameConfig) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range h.order {
		g := h.games[id]
		g.mu.Lock()
		g.pending = &cfg
		g.mu.Unlock()
	}
	h.logger.Info("spectator config updated", "grid", cfg.GridSize, "initial_speed", cfg.InitialSpeed)
}
