package snake

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrSessionActive is returned when a reset-only change is requested mid-game.
var ErrSessionActive = errors.New("snake: cannot change settings while playing")

// Driver chooses a direction before every applied tick.
// *Agent is the stock implementation used by spectator games.
type Driver interface {
	NextMove(s *GameState, gridSize int) Direction
}

// Session owns one game: its authoritative state, the timing baseline and
// the status machine idle -> playing <-> paused, playing -> game-over.
//
// A Session is not safe for concurrent use. Callers that feed it from
// several goroutines must serialize access.
type Session struct {
	cfg   GameConfig
	mode  Mode
	rng   *rand.Rand
	state *GameState

	driver Driver

	// lastTick is the time the last transition was applied (or the
	// start/resume time). Zero while not playing.
	lastTick time.Time

	// heading is the direction the snake actually moved on the last
	// applied tick. Turns are validated against it as well as against the
	// pending direction so two quick turns cannot fold the head back onto
	// the neck.
	heading Direction

	stateListeners    []func(*GameState)
	gameOverListeners []func(score int)
}

// NewSession creates an idle session. Grid size comes from cfg.GridSize.
func NewSession(cfg GameConfig, mode Mode, rng *rand.Rand) *Session {
	s := &Session{cfg: cfg, mode: mode, rng: rng}
	s.Reset()
	return s
}

// State returns the current state. Do not modify it.
func (s *Session) State() *GameState {
	return s.state
}

// Config returns the session's tuning parameters.
func (s *Session) Config() GameConfig {
	return s.cfg
}

// Mode returns the boundary mode of the current game.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetDriver installs an autonomous player; nil returns control to ChangeDirection.
func (s *Session) SetDriver(d Driver) {
	s.driver = d
}

// OnState registers fn to receive every new state after a transition.
func (s *Session) OnState(fn func(*GameState)) {
	s.stateListeners = append(s.stateListeners, fn)
}

// OnGameOver registers fn to be called once per game with the final score.
func (s *Session) OnGameOver(fn func(score int)) {
	s.gameOverListeners = append(s.gameOverListeners, fn)
}

// Start moves an idle game to playing. The first tick fires one speed
// interval after now.
func (s *Session) Start(now time.Time) bool {
	if s.state.Status != StatusIdle {
		return false
	}
	s.lastTick = now
	s.commit(s.state.withStatus(StatusPlaying))
	return true
}

// Pause suspends a playing game.
func (s *Session) Pause() bool {
	if s.state.Status != StatusPlaying {
		return false
	}
	s.lastTick = time.Time{}
	s.commit(s.state.withStatus(StatusPaused))
	return true
}

// Resume continues a paused game. Time spent paused is not credited: the
// next tick fires one full interval after now.
func (s *Session) Resume(now time.Time) bool {
	if s.state.Status != StatusPaused {
		return false
	}
	s.lastTick = now
	s.commit(s.state.withStatus(StatusPlaying))
	return true
}

// TogglePause starts an idle game, pauses a running one or resumes a paused one.
func (s *Session) TogglePause(now time.Time) bool {
	switch s.state.Status {
	case StatusIdle:
		return s.Start(now)
	case StatusPlaying:
		return s.Pause()
	case StatusPaused:
		return s.Resume(now)
	}
	return false
}

// Reset discards the current game and replaces it with a fresh idle one.
// Any tick that was due for the old game is dropped.
func (s *Session) Reset() {
	s.lastTick = time.Time{}
	fresh := NewState(s.mode, s.cfg.GridSize, s.cfg, s.rng)
	s.heading = fresh.Direction
	s.commit(fresh)
}

// ChangeMode switches between walls and pass-through by resetting the game.
func (s *Session) ChangeMode(m Mode) error {
	if s.state.Status == StatusPlaying {
		return ErrSessionActive
	}
	s.mode = m
	s.Reset()
	return nil
}

// ChangeConfig swaps the tuning parameters (difficulty, grid size) by resetting the game.
func (s *Session) ChangeConfig(cfg GameConfig) error {
	if s.state.Status == StatusPlaying {
		return ErrSessionActive
	}
	s.cfg = cfg
	s.Reset()
	return nil
}

// ChangeDirection requests a turn for the next tick. Reversals, and turns
// that would reverse the last movement, are ignored.
func (s *Session) ChangeDirection(d Direction) bool {
	if !IsValidDirectionChange(s.heading, d) {
		return false
	}
	next := ApplyDirectionChange(s.state, d)
	if next == s.state {
		return false
	}
	s.commit(next)
	return true
}

// TryTick applies one GameTick if the game is playing and at least one
// speed interval has elapsed since the last applied tick. Returns whether
// the state changed.
func (s *Session) TryTick(now time.Time) bool {
	prev := s.state
	if prev.Status != StatusPlaying {
		return false
	}
	if now.Sub(s.lastTick) < time.Duration(prev.Speed)*time.Millisecond {
		return false
	}
	s.lastTick = now

	cur := prev
	if s.driver != nil {
		cur = ApplyDirectionChange(cur, s.driver.NextMove(cur, s.cfg.GridSize))
	}

	next := GameTick(cur, s.cfg.GridSize, s.cfg, s.rng)
	s.heading = next.Direction
	s.commit(next)

	if next.Status == StatusGameOver {
		s.lastTick = time.Time{}
		for _, fn := range s.gameOverListeners {
			fn(next.Score)
		}
	}
	return true
}

// Run polls TryTick every interval until ctx is done. Cancelling ctx is
// the way to stop a running game loop; no tick fires after Run returns.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.TryTick(now)
		}
	}
}

func (s *Session) commit(next *GameState) {
	s.state = next
	for _, fn := range s.stateListeners {
		fn(next)
	}
}
