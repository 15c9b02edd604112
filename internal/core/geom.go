// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on an integer grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the rectangle covering a side x side grid anchored at the origin.
func Square(side int) Rect {
	return Rect{W: side, H: side}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n) using modular arithmetic.
// Negative values wrap from the top: Wrap(-1, 20) == 19.
func Wrap(val, n int) int {
	if n <= 0 {
		return val
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns the taxicab distance between (x1, y1) and (x2, y2).
func Manhattan(x1, y1, x2, y2 int) int {
	return Abs(x1-x2) + Abs(y1-y2)
}
