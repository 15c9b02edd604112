package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

// Registry IDs of the playable variants.
const (
	IDWalls       = "snake"
	IDPassThrough = "snake_wrap"
	IDDemo        = "snake_demo"
)

// DefaultRestartDelay is how long a finished demo game stays on screen.
const DefaultRestartDelay = 2 * time.Second

// Package-level settings applied to games created afterwards, set by the
// CLI from the loaded configuration.
var (
	gameConfig   = DefaultConfig
	mistakeRate  = DefaultMistakeRate
	restartDelay = DefaultRestartDelay
)

// Configure sets the tuning used by games created from the registry.
func Configure(cfg GameConfig) {
	gameConfig = cfg
}

// SetMistakeRate sets the random-move probability of demo agents.
func SetMistakeRate(p float64) {
	mistakeRate = p
}

// SetRestartDelay sets how long a finished demo waits before a new game.
func SetRestartDelay(d time.Duration) {
	restartDelay = d
}

func init() {
	registry.Register(IDWalls, func() registry.Game {
		return New(ModeWalls)
	})
	registry.Register(IDPassThrough, func() registry.Game {
		return New(ModePassThrough)
	})
	registry.Register(IDDemo, func() registry.Game {
		return NewDemo(ModeWalls)
	})
}

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	mode         Mode
	demo         bool
	cfg          GameConfig
	restartDelay time.Duration
	session      *Session

	screenW int
	screenH int

	frames    uint64
	ended     bool      // set by the game-over listener, consumed by Step
	restartAt time.Time // demo only
}

// New creates a player-controlled game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode, cfg: gameConfig, restartDelay: restartDelay}
}

// NewDemo creates an agent-controlled game that restarts itself after game over.
func NewDemo(mode Mode) *Game {
	g := New(mode)
	g.demo = true
	return g
}

// WithConfig overrides the tuning for a game that has not been Reset yet.
func (g *Game) WithConfig(cfg GameConfig) *Game {
	g.cfg = cfg
	return g
}

// ID returns the registry identifier for the variant.
func (g *Game) ID() string {
	switch {
	case g.demo:
		return IDDemo
	case g.mode == ModePassThrough:
		return IDPassThrough
	default:
		return IDWalls
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch {
	case g.demo:
		return "Snake (Spectate AI)"
	case g.mode == ModePassThrough:
		return "Snake (Pass-through)"
	default:
		return "Snake (Walls)"
	}
}

// Session exposes the underlying controller.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts over with a fresh idle game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frames = 0
	g.ended = false
	g.restartAt = time.Time{}

	g.session = NewSession(g.cfg, g.mode, rng)
	g.session.OnGameOver(func(int) { g.ended = true })
	if g.demo {
		g.session.SetDriver(NewAgent(rng).WithMistakeRate(mistakeRate))
	}
}

// Resize updates the screen size used for layout without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies the frame's input, then ticks the session if it is due.
func (g *Game) Step(in core.InputFrame, now time.Time) core.StepResult {
	g.frames++

	if g.demo {
		g.stepDemo(now)
	} else {
		g.applyInput(in, now)
	}

	g.session.TryTick(now)

	res := core.StepResult{State: g.State(), Ended: g.ended}
	g.ended = false
	return res
}

func (g *Game) applyInput(in core.InputFrame, now time.Time) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionUp:
			g.session.ChangeDirection(DirUp)
		case core.ActionDown:
			g.session.ChangeDirection(DirDown)
		case core.ActionLeft:
			g.session.ChangeDirection(DirLeft)
		case core.ActionRight:
			g.session.ChangeDirection(DirRight)
		case core.ActionPause:
			g.session.TogglePause(now)
		case core.ActionRestart:
			g.session.Reset()
		case core.ActionToggleMode:
			// Refused with ErrSessionActive while playing.
			if g.session.ChangeMode(g.session.Mode().Toggle()) == nil {
				g.mode = g.session.Mode()
			}
		}
	}
}

func (g *Game) stepDemo(now time.Time) {
	switch g.session.State().Status {
	case StatusIdle:
		g.session.Start(now)
	case StatusGameOver:
		if g.restartAt.IsZero() {
			g.restartAt = now.Add(g.restartDelay)
			return
		}
		if !now.Before(g.restartAt) {
			g.restartAt = time.Time{}
			g.session.Reset()
			g.session.Start(now)
		}
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Status:   string(st.Status),
		GameOver: st.Status == StatusGameOver,
		Paused:   st.Status == StatusPaused,
	}
}

// Render draws the HUD, the board and any status overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	st := g.session.State()

	g.renderHUD(dst, st)

	layout, ok := NewBoardLayout(g.cfg.GridSize, dst.Width(), dst.Height(), hudHeight)
	if !ok {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", layout.MinW, layout.MinH))
		return
	}
	DrawBoard(dst, layout, st)

	switch st.Status {
	case StatusIdle:
		drawOverlay(dst, "S N A K E", "Press SPACE to start")
	case StatusPaused:
		drawOverlay(dst, "Paused", "Press SPACE to resume")
	case StatusGameOver:
		if g.demo {
			drawOverlay(dst, "GAME OVER", "Restarting...")
		} else {
			drawOverlay(dst, fmt.Sprintf("Game Over - %d", st.Score), "R: restart  M: mode")
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, st *GameState) {
	label := "SNAKE"
	if g.demo {
		label = "SPECTATING"
	}
	hud := fmt.Sprintf(" %s  Score: %d  Speed: %dms  Mode: %s", label, st.Score, st.Speed, modeLabel(st.Mode))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func modeLabel(m Mode) string {
	if m == ModePassThrough {
		return "PASS-THROUGH"
	}
	return "WALLS"
}
