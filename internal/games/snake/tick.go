package snake

import "math/rand"

// GameTick advances s by one step and returns the resulting state.
//
// When s is not playing, s itself is returned so callers can detect the
// no-op by pointer comparison. Otherwise a new state is returned and s is
// left untouched. Collisions are checked wall first, then self; either ends
// the game with snake, food and score unchanged.
//
// The tail cell is not an obstacle on a move that does not eat, since the
// tail vacates during the same step.
func GameTick(s *GameState, gridSize int, cfg GameConfig, rng *rand.Rand) *GameState {
	if s.Status != StatusPlaying || len(s.Snake) == 0 {
		return s
	}

	newHead := NextPosition(s.Head(), s.Direction, gridSize, s.Mode)

	if WallCollision(newHead, gridSize, s.Mode) {
		return s.over()
	}

	ateFood := FoodCollision(newHead, s.Food)

	obstacles := s.Snake
	if !ateFood {
		obstacles = s.Snake[:len(s.Snake)-1]
	}
	if SelfCollision(newHead, obstacles) {
		return s.over()
	}

	keep := len(s.Snake)
	if !ateFood {
		keep--
	}
	body := make([]Position, 0, keep+1)
	body = append(body, newHead)
	body = append(body, s.Snake[:keep]...)

	next := s.with()
	next.Snake = body
	if ateFood {
		next.Score = s.Score + FoodReward
		next.Food = GenerateFood(body, gridSize, rng)
	}
	next.Speed = CalculateSpeed(next.Score, cfg)
	return next
}

func (s *GameState) over() *GameState {
	next := s.with()
	next.Status = StatusGameOver
	return next
}
