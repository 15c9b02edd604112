package snake

import (
	"math/rand"
	"testing"
)

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	body := []Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}, {X: 8, Y: 11}, {X: 8, Y: 12}}

	for range make([]struct{}, 2000) {
		food := GenerateFood(body, 20, rng)
		if !InBounds(food, 20) {
			t.Fatalf("food %v outside the grid", food)
		}
		if occupies(body, food) {
			t.Fatalf("food %v placed on the snake", food)
		}
	}
}

func TestGenerateFoodNearlyFullGrid(t *testing.T) {
	const grid = 6
	hole := Position{X: 4, Y: 1}

	var body []Position
	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			if p := (Position{X: x, Y: y}); p != hole {
				body = append(body, p)
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for range make([]struct{}, 20) {
		if got := GenerateFood(body, grid, rng); got != hole {
			t.Fatalf("GenerateFood = %v, expected the only free cell %v", got, hole)
		}
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	body := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	rng := rand.New(rand.NewSource(1))

	if got := GenerateFood(body, 2, rng); got != NoFood {
		t.Errorf("GenerateFood on a full grid = %v, expected NoFood", got)
	}
}
