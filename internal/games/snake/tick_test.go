package snake

import (
	"math/rand"
	"testing"
)

func playingState(body []Position, dir Direction, food Position, mode Mode) *GameState {
	return &GameState{
		Snake:     body,
		Food:      food,
		Direction: dir,
		Status:    StatusPlaying,
		Mode:      mode,
		Speed:     DefaultConfig.InitialSpeed,
	}
}

func TestGameTickNoOpWhenNotPlaying(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := NewState(ModeWalls, 20, DefaultConfig, rng)

	for _, st := range []Status{StatusIdle, StatusPaused, StatusGameOver} {
		s := base.withStatus(st)
		if got := GameTick(s, 20, DefaultConfig, rng); got != s {
			t.Errorf("GameTick in status %s returned a new state", st)
		}
	}
}

func TestGameTickMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := playingState([]Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, DirRight, Position{X: 0, Y: 0}, ModeWalls)

	next := GameTick(s, 20, DefaultConfig, rng)

	want := []Position{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if !equalBodies(next.Snake, want) {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
	if next.Score != 0 || next.Food != s.Food {
		t.Errorf("moving without eating changed score or food: %+v", next)
	}
	if s.Snake[0] != (Position{X: 10, Y: 10}) {
		t.Error("GameTick modified its input")
	}
}

func TestGameTickEats(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := playingState([]Position{{X: 14, Y: 10}, {X: 13, Y: 10}, {X: 12, Y: 10}}, DirRight, Position{X: 15, Y: 10}, ModeWalls)

	next := GameTick(s, 20, DefaultConfig, rng)

	want := []Position{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}, {X: 12, Y: 10}}
	if !equalBodies(next.Snake, want) {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
	if next.Score != 10 {
		t.Errorf("score = %d, expected 10", next.Score)
	}
	if occupies(next.Snake, next.Food) || !InBounds(next.Food, 20) {
		t.Errorf("new food %v is invalid", next.Food)
	}
	if next.Status != StatusPlaying {
		t.Errorf("status = %s, expected playing", next.Status)
	}
}

func TestGameTickWallEndsGame(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	body := []Position{{X: 19, Y: 10}, {X: 18, Y: 10}}
	s := playingState(body, DirRight, Position{X: 0, Y: 0}, ModeWalls)
	s.Score = 30

	next := GameTick(s, 20, DefaultConfig, rng)

	if next.Status != StatusGameOver {
		t.Fatalf("status = %s, expected game-over", next.Status)
	}
	if !equalBodies(next.Snake, body) || next.Score != 30 || next.Food != s.Food {
		t.Errorf("game over must keep snake, food and score: %+v", next)
	}
}

func TestGameTickPassThroughWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := playingState([]Position{{X: 19, Y: 10}, {X: 18, Y: 10}}, DirRight, Position{X: 5, Y: 5}, ModePassThrough)

	next := GameTick(s, 20, DefaultConfig, rng)

	if next.Status != StatusPlaying {
		t.Fatalf("status = %s, expected playing", next.Status)
	}
	if next.Head() != (Position{X: 0, Y: 10}) {
		t.Errorf("head = %v, expected (0,10)", next.Head())
	}
}

func TestGameTickSelfCollision(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Head turns down into the second-to-last cell of a hook.
	body := []Position{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	s := playingState(body, DirDown, Position{X: 0, Y: 0}, ModeWalls)

	next := GameTick(s, 20, DefaultConfig, rng)
	if next.Status != StatusGameOver {
		t.Errorf("status = %s, expected game-over", next.Status)
	}
}

func TestGameTickChasingTailIsLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// A 2x2 loop: the head moves into the cell the tail leaves.
	body := []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	s := playingState(body, DirDown, Position{X: 8, Y: 8}, ModeWalls)

	next := GameTick(s, 20, DefaultConfig, rng)

	if next.Status != StatusPlaying {
		t.Fatalf("status = %s, expected playing", next.Status)
	}
	want := []Position{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if !equalBodies(next.Snake, want) {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
}

func TestGameTickTailBlocksWhenEating(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Same loop as above, but food on the tail cell: the snake grows, so
	// the tail stays put and the head runs into it.
	body := []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	s := playingState(body, DirDown, Position{X: 1, Y: 2}, ModeWalls)

	next := GameTick(s, 20, DefaultConfig, rng)

	if next.Status != StatusGameOver {
		t.Fatalf("status = %s, expected game-over", next.Status)
	}
	if next.Score != s.Score || !equalBodies(next.Snake, body) {
		t.Errorf("game over must leave score and snake unchanged, got score %d snake %v", next.Score, next.Snake)
	}
}

func TestGameTickSpeedFollowsScore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := playingState([]Position{{X: 4, Y: 4}, {X: 3, Y: 4}}, DirRight, Position{X: 5, Y: 4}, ModeWalls)
	s.Score = 40

	next := GameTick(s, 20, DefaultConfig, rng)

	if next.Score != 50 {
		t.Fatalf("score = %d, expected 50", next.Score)
	}
	if next.Speed != 145 {
		t.Errorf("speed = %d, expected 145", next.Speed)
	}
}

func TestNewState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewState(ModePassThrough, 20, DefaultConfig, rng)

	want := []Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if !equalBodies(s.Snake, want) {
		t.Errorf("snake = %v, expected %v", s.Snake, want)
	}
	if s.Direction != DirRight || s.Status != StatusIdle || s.Score != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
	if s.Mode != ModePassThrough || s.Speed != DefaultConfig.InitialSpeed {
		t.Errorf("unexpected mode or speed %+v", s)
	}
	if occupies(s.Snake, s.Food) {
		t.Errorf("food %v on the snake", s.Food)
	}
}

func equalBodies(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
