package snake

// IsValidDirectionChange rejects only the exact reverse of current.
// Repeating the current direction is a valid no-op.
func IsValidDirectionChange(current, next Direction) bool {
	return next != current.Opposite()
}

// ApplyDirectionChange returns s with its direction replaced by d, or s
// itself when the game is not playing or d would reverse the snake.
// The latest accepted change before a tick is the one that tick uses.
func ApplyDirectionChange(s *GameState, d Direction) *GameState {
	if s.Status != StatusPlaying || s.Direction == d {
		return s
	}
	if !IsValidDirectionChange(s.Direction, d) {
		return s
	}
	next := s.with()
	next.Direction = d
	return next
}
