package snake

// WallCollision reports whether p is outside the grid. Always false in pass-through mode.
func WallCollision(p Position, gridSize int, m Mode) bool {
	if m == ModePassThrough {
		return false
	}
	return !InBounds(p, gridSize)
}

// SelfCollision reports whether p lands on any segment of snake other than
// the head at index 0. p is the proposed new head; snake is the pre-move body.
func SelfCollision(p Position, snake []Position) bool {
	if len(snake) < 2 {
		return false
	}
	return occupies(snake[1:], p)
}

// FoodCollision reports whether p is the food cell.
func FoodCollision(p, food Position) bool {
	return p == food
}

func occupies(cells []Position, p Position) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
