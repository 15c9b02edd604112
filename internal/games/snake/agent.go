package snake

import "math/rand"

// DefaultMistakeRate is the chance per move that the agent turns at random.
const DefaultMistakeRate = 0.10

// Agent is a greedy food-seeking player used for spectator demos.
// It occasionally picks a random legal turn so that it plays like a person.
type Agent struct {
	rng         *rand.Rand
	mistakeRate float64
}

// NewAgent creates an agent drawing randomness from rng.
func NewAgent(rng *rand.Rand) *Agent {
	return &Agent{rng: rng, mistakeRate: DefaultMistakeRate}
}

// WithMistakeRate sets the probability of a random move, clamped to [0, 1].
func (a *Agent) WithMistakeRate(p float64) *Agent {
	a.mistakeRate = min(max(p, 0), 1)
	return a
}

// NextMove picks the direction for the next tick.
//
// Among the turns that are not a reversal, it drops those that would hit a
// wall (walls mode) or the body minus its tail, then takes the one whose
// landing cell is closest to the food. Ties keep the UP, DOWN, LEFT, RIGHT
// order. With no safe turn it keeps the current direction.
func (a *Agent) NextMove(s *GameState, gridSize int) Direction {
	turns := nonReversing(s.Direction)

	if a.rng.Float64() < a.mistakeRate {
		return turns[a.rng.Intn(len(turns))]
	}

	head := s.Head()
	body := s.Snake[:len(s.Snake)-1]

	best, bestDist := s.Direction, -1
	for _, d := range turns {
		next := NextPosition(head, d, gridSize, s.Mode)
		if WallCollision(next, gridSize, s.Mode) || occupies(body, next) {
			continue
		}
		if dist := Distance(next, s.Food); bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// nonReversing returns the three directions other than the reverse of d,
// in tie-break order.
func nonReversing(d Direction) []Direction {
	out := make([]Direction, 0, 3)
	for _, c := range Directions {
		if c != d.Opposite() {
			out = append(out, c)
		}
	}
	return out
}
