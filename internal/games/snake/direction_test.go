package snake

import "testing"

func TestIsValidDirectionChange(t *testing.T) {
	for _, d := range Directions {
		if IsValidDirectionChange(d, d.Opposite()) {
			t.Errorf("reversal %v -> %v should be rejected", d, d.Opposite())
		}
		if !IsValidDirectionChange(d, d) {
			t.Errorf("same direction %v should be valid", d)
		}
	}
	if !IsValidDirectionChange(DirRight, DirUp) || !IsValidDirectionChange(DirUp, DirLeft) {
		t.Error("perpendicular turns should be valid")
	}
}

func TestApplyDirectionChange(t *testing.T) {
	st := playingState([]Position{{X: 5, Y: 5}, {X: 4, Y: 5}}, DirRight, Position{X: 0, Y: 0}, ModeWalls)

	turned := ApplyDirectionChange(st, DirUp)
	if turned.Direction != DirUp {
		t.Errorf("direction = %v, expected UP", turned.Direction)
	}
	if st.Direction != DirRight {
		t.Error("ApplyDirectionChange must not modify its input")
	}

	if got := ApplyDirectionChange(st, DirLeft); got != st {
		t.Error("reversal should return the same state")
	}

	idle := st.withStatus(StatusIdle)
	if got := ApplyDirectionChange(idle, DirUp); got != idle {
		t.Error("direction changes are ignored when not playing")
	}
}
