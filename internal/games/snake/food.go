package snake

import "math/rand"

// maxFoodAttempts bounds rejection sampling before falling back to a scan.
const maxFoodAttempts = 64

// NoFood is returned by GenerateFood when the snake covers the whole grid.
var NoFood = Position{X: -1, Y: -1}

// GenerateFood picks a uniformly random free cell. After maxFoodAttempts
// rejected draws it scans the board and picks among the remaining free
// cells, so it terminates even on a nearly full grid. Returns NoFood when
// no cell is free.
func GenerateFood(snake []Position, gridSize int, rng *rand.Rand) Position {
	if gridSize <= 0 {
		return NoFood
	}

	occupied := make(map[Position]struct{}, len(snake))
	for _, p := range snake {
		occupied[p] = struct{}{}
	}

	for i := 0; i < maxFoodAttempts; i++ {
		p := Position{X: rng.Intn(gridSize), Y: rng.Intn(gridSize)}
		if _, taken := occupied[p]; !taken {
			return p
		}
	}

	free := make([]Position, 0, gridSize*gridSize-len(occupied))
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			p := Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return NoFood
	}
	return free[rng.Intn(len(free))]
}
