package snake

import (
	"math/rand"
	"testing"
)

func TestAgentNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	agent := NewAgent(rng)
	s := playingState([]Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, DirRight, Position{X: 15, Y: 10}, ModeWalls)

	right := 0
	const trials = 1000
	for range make([]struct{}, trials) {
		d := agent.NextMove(s, 20)
		if d == DirLeft {
			t.Fatal("agent reversed into its neck")
		}
		if d == DirRight {
			right++
		}
	}
	if right < trials*8/10 {
		t.Errorf("agent chose RIGHT %d/%d times, expected a clear majority", right, trials)
	}
}

func TestAgentGreedy(t *testing.T) {
	tests := []struct {
		name string
		body []Position
		dir  Direction
		food Position
		mode Mode
		want Direction
	}{
		{
			name: "food ahead",
			body: []Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
			dir:  DirRight,
			food: Position{X: 10, Y: 5},
			want: DirRight,
		},
		{
			name: "food above",
			body: []Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
			dir:  DirRight,
			food: Position{X: 5, Y: 0},
			want: DirUp,
		},
		{
			name: "tie prefers up",
			body: []Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
			dir:  DirRight,
			food: Position{X: 2, Y: 5},
			want: DirUp,
		},
		{
			name: "avoids wall",
			body: []Position{{X: 5, Y: 0}, {X: 4, Y: 0}},
			dir:  DirRight,
			food: Position{X: 5, Y: 19},
			want: DirDown,
		},
		{
			name: "wall ignored in pass-through",
			body: []Position{{X: 5, Y: 0}, {X: 4, Y: 0}},
			dir:  DirRight,
			food: Position{X: 5, Y: 19},
			mode: ModePassThrough,
			want: DirUp,
		},
		{
			name: "trapped keeps direction",
			body: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}},
			dir:  DirUp,
			food: Position{X: 10, Y: 10},
			want: DirUp,
		},
		{
			name: "tail cell is safe",
			body: []Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
			dir:  DirLeft,
			food: Position{X: 1, Y: 5},
			want: DirDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode := tc.mode
			if mode == "" {
				mode = ModeWalls
			}
			agent := NewAgent(rand.New(rand.NewSource(1))).WithMistakeRate(0)
			s := playingState(tc.body, tc.dir, tc.food, mode)

			if got := agent.NextMove(s, 20); got != tc.want {
				t.Errorf("NextMove = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestAgentMistakeRateClamped(t *testing.T) {
	agent := NewAgent(rand.New(rand.NewSource(1)))
	if agent.WithMistakeRate(-1).mistakeRate != 0 {
		t.Error("negative mistake rate should clamp to 0")
	}
	if agent.WithMistakeRate(3).mistakeRate != 1 {
		t.Error("mistake rate above 1 should clamp to 1")
	}
}
