package snake

import "math/rand"

// NewState builds a fresh idle game: a three-cell snake centred on the grid
// heading right, food on a free cell, score zero and the initial speed.
func NewState(mode Mode, gridSize int, cfg GameConfig, rng *rand.Rand) *GameState {
	cx, cy := gridSize/2, gridSize/2

	body := make([]Position, initialLength)
	for i := range body {
		body[i] = Position{X: cx - i, Y: cy}
	}

	return &GameState{
		Snake:     body,
		Food:      GenerateFood(body, gridSize, rng),
		Direction: DirRight,
		Score:     0,
		Status:    StatusIdle,
		Mode:      mode,
		Speed:     cfg.InitialSpeed,
	}
}

// withStatus returns a copy of s in the given status.
func (s *GameState) withStatus(st Status) *GameState {
	next := s.with()
	next.Status = st
	return next
}
