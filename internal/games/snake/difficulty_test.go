package snake

import "testing"

func TestCalculateSpeed(t *testing.T) {
	cfg := DefaultConfig

	if got := CalculateSpeed(0, cfg); got != cfg.InitialSpeed {
		t.Errorf("CalculateSpeed(0) = %d, expected %d", got, cfg.InitialSpeed)
	}

	tests := []struct {
		score, want int
	}{
		{10, 150},
		{49, 150},
		{50, 145},
		{99, 145},
		{100, 140},
		{1000, 50},
		{1_000_000, 50},
	}
	for _, tc := range tests {
		if got := CalculateSpeed(tc.score, cfg); got != tc.want {
			t.Errorf("CalculateSpeed(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestCalculateSpeedMonotone(t *testing.T) {
	cfg := GameConfig{GridSize: 20, InitialSpeed: 200, SpeedIncrement: 7, MaxSpeed: 40}

	prev := CalculateSpeed(0, cfg)
	for score := 10; score <= 5000; score += 10 {
		got := CalculateSpeed(score, cfg)
		if got > prev {
			t.Fatalf("speed increased from %d to %d at score %d", prev, got, score)
		}
		if got < cfg.MaxSpeed {
			t.Fatalf("speed %d below the floor %d", got, cfg.MaxSpeed)
		}
		prev = got
	}
	if prev != cfg.MaxSpeed {
		t.Errorf("speed at a huge score = %d, expected floor %d", prev, cfg.MaxSpeed)
	}
}
