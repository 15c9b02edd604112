package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestSquare(t *testing.T) {
	r := Square(20)
	if !r.Contains(0, 0) || !r.Contains(19, 19) {
		t.Error("Square(20) should contain its corners")
	}
	if r.Contains(20, 0) || r.Contains(0, -1) {
		t.Error("Square(20) should not contain cells outside [0,20)")
	}
	cx, cy := r.Center()
	if cx != 10 || cy != 10 {
		t.Errorf("Center() = (%d, %d), expected (10, 10)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{-1, 20, 19},
		{20, 20, 0},
		{0, 20, 0},
		{19, 20, 19},
		{-21, 20, 19},
		{45, 20, 5},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestAbsManhattan(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if d := Manhattan(0, 0, 3, -4); d != 7 {
		t.Errorf("Manhattan = %d, expected 7", d)
	}
}
