package snake

import "github.com/vovakirdan/snake-arena/internal/core"

// NextPosition moves p one cell in direction d.
// In pass-through mode coordinates wrap modulo gridSize. In walls mode the
// raw, possibly out-of-range, position is returned for collision detection
// to reject.
func NextPosition(p Position, d Direction, gridSize int, m Mode) Position {
	dx, dy := d.Delta()
	next := Position{X: p.X + dx, Y: p.Y + dy}
	if m == ModePassThrough {
		next.X = core.Wrap(next.X, gridSize)
		next.Y = core.Wrap(next.Y, gridSize)
	}
	return next
}

// InBounds reports whether p lies inside [0, gridSize)².
func InBounds(p Position, gridSize int) bool {
	return core.Square(gridSize).Contains(p.X, p.Y)
}

// Distance is the Manhattan distance between two cells, ignoring wraparound.
func Distance(a, b Position) int {
	return core.Manhattan(a.X, a.Y, b.X, b.Y)
}
