package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

func newTestGame(mode Mode, demo bool) *Game {
	g := New(mode)
	if demo {
		g = NewDemo(mode)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{IDWalls, IDPassThrough, IDDemo} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %s", id, g.ID())
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []Position {
		g := newTestGame(ModePassThrough, false)
		now := t0
		g.Step(frame(core.ActionPause), now)
		inputs := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
		for i := 0; i < 200; i++ {
			now = now.Add(50 * time.Millisecond)
			var in core.InputFrame
			if i%7 == 0 {
				in = frame(inputs[(i/7)%len(inputs)])
			}
			g.Step(in, now)
		}
		return g.Session().State().Snake
	}

	a, b := run(), run()
	if !equalBodies(a, b) {
		t.Errorf("same seed and inputs diverged:\n%v\n%v", a, b)
	}
}

func TestGameInputMapping(t *testing.T) {
	g := newTestGame(ModeWalls, false)

	g.Step(frame(core.ActionPause), t0)
	if g.State().Status != string(StatusPlaying) {
		t.Fatalf("space should start the game, status %s", g.State().Status)
	}

	g.Step(frame(core.ActionToggleMode), t0)
	if g.Session().Mode() != ModeWalls {
		t.Error("mode toggle should be ignored while playing")
	}

	g.Step(frame(core.ActionUp), t0)
	if g.Session().State().Direction != DirUp {
		t.Error("up action should turn the snake")
	}

	g.Step(frame(core.ActionPause), t0)
	if !g.State().Paused {
		t.Error("space should pause a running game")
	}

	g.Step(frame(core.ActionToggleMode), t0)
	if g.Session().Mode() != ModePassThrough || g.ID() != IDPassThrough {
		t.Error("mode toggle should apply while paused")
	}

	g.Step(frame(core.ActionRestart), t0)
	if g.State().Status != string(StatusIdle) {
		t.Error("restart should reset to idle")
	}
}

func TestGameEndedReportedOnce(t *testing.T) {
	g := newTestGame(ModeWalls, false)

	now := t0
	g.Step(frame(core.ActionPause), now)

	ended := 0
	for range make([]struct{}, 100) {
		now = now.Add(200 * time.Millisecond)
		if g.Step(core.InputFrame{}, now).Ended {
			ended++
		}
	}
	if !g.State().GameOver {
		t.Fatal("snake running right should hit the wall")
	}
	if ended != 1 {
		t.Errorf("Ended reported %d times, expected 1", ended)
	}
}

func TestDemoRestartsAfterDelay(t *testing.T) {
	g := newTestGame(ModeWalls, true)

	now := t0
	g.Step(core.InputFrame{}, now)
	if g.State().Status != string(StatusPlaying) {
		t.Fatal("demo should start on its own")
	}

	for i := 0; i < 100000 && !g.State().GameOver; i++ {
		now = now.Add(50 * time.Millisecond)
		g.Step(core.InputFrame{}, now)
	}
	if !g.State().GameOver {
		t.Fatal("demo game never ended")
	}

	g.Step(core.InputFrame{}, now.Add(time.Second))
	if !g.State().GameOver {
		t.Error("demo restarted before the delay")
	}

	g.Step(core.InputFrame{}, now.Add(DefaultRestartDelay+time.Second))
	st := g.Session().State()
	if st.Status != StatusPlaying || st.Score != 0 {
		t.Errorf("demo should restart after the delay, got %s score %d", st.Status, st.Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(ModeWalls, false)
	screen := core.NewScreen(80, 30)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Press SPACE to start") {
		t.Error("idle overlay missing")
	}

	// The idle overlay sits over the board centre, where the snake starts.
	g.Step(frame(core.ActionPause), t0)
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "Press SPACE to start") {
		t.Error("idle overlay still shown while playing")
	}
	if !strings.Contains(out, "██") {
		t.Error("snake not drawn")
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen should show a size warning")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(ModePassThrough, false)
	g.Step(frame(core.ActionPause), t0)

	snap := g.Snapshot()
	if snap.Mode != ModePassThrough || snap.Status != StatusPlaying {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.SnakeLen != initialLength || snap.Head != g.Session().State().Head() {
		t.Errorf("snapshot body mismatch %+v", snap)
	}
	if snap.Frames != 1 {
		t.Errorf("frames = %d, expected 1", snap.Frames)
	}
}
