package snake

import "testing"

func TestNextPositionWallsNeverWraps(t *testing.T) {
	const grid = 20
	for x := 1; x < grid-1; x++ {
		for y := 1; y < grid-1; y++ {
			p := Position{X: x, Y: y}
			for _, d := range Directions {
				next := NextPosition(p, d, grid, ModeWalls)
				dx, dy := next.X-p.X, next.Y-p.Y
				if abs(dx)+abs(dy) != 1 {
					t.Fatalf("NextPosition(%v, %v) = %v, expected a unit step", p, d, next)
				}
			}
		}
	}

	edge := NextPosition(Position{X: 19, Y: 10}, DirRight, grid, ModeWalls)
	if edge != (Position{X: 20, Y: 10}) {
		t.Errorf("walls mode should return the raw out-of-range cell, got %v", edge)
	}
	edge = NextPosition(Position{X: 5, Y: 0}, DirUp, grid, ModeWalls)
	if edge != (Position{X: 5, Y: -1}) {
		t.Errorf("walls mode should return the raw out-of-range cell, got %v", edge)
	}
}

func TestNextPositionPassThroughWraps(t *testing.T) {
	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"left edge", Position{X: 0, Y: 10}, DirLeft, Position{X: 19, Y: 10}},
		{"right edge", Position{X: 19, Y: 10}, DirRight, Position{X: 0, Y: 10}},
		{"top edge", Position{X: 7, Y: 0}, DirUp, Position{X: 7, Y: 19}},
		{"bottom edge", Position{X: 7, Y: 19}, DirDown, Position{X: 7, Y: 0}},
		{"interior", Position{X: 7, Y: 7}, DirDown, Position{X: 7, Y: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NextPosition(tc.from, tc.dir, 20, ModePassThrough)
			if got != tc.want {
				t.Errorf("NextPosition(%v, %v) = %v, expected %v", tc.from, tc.dir, got, tc.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v is its own opposite", d)
		}
	}
}

func TestDirectionText(t *testing.T) {
	for _, d := range Directions {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", d, err)
		}
		var back Direction
		if err := back.UnmarshalText(b); err != nil || back != d {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}
	var d Direction
	if err := d.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("unknown direction should fail to parse")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
