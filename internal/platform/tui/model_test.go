package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// fakeGame ends after a fixed number of steps with a fixed score.
type fakeGame struct {
	score    int
	endAfter int

	steps   int
	resets  int
	inputs  [][]core.Action
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame, _ time.Time) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Actions())
	ended := g.steps == g.endAfter
	return core.StepResult{State: g.State(), Ended: ended}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState {
	over := g.endAfter > 0 && g.steps >= g.endAfter
	return core.GameState{Score: g.score, GameOver: over}
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m tea.Model, n int) tea.Model {
	now := time.Unix(1_700_000_000, 0)
	for i := 0; i < n; i++ {
		m, _ = m.Update(TickMsg(now.Add(time.Duration(i) * 16 * time.Millisecond)))
	}
	return m
}

func TestModelSavesScoreOnceWhenGameEnds(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{score: 42, endAfter: 3}

	m := NewModel(game, store, core.DefaultConfig())
	m.Init()
	tick(m, 10)

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 42 {
		t.Errorf("saved score = %d, want 42", scores[0].Score)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{score: 0, endAfter: 1}

	m := NewModel(game, store, core.DefaultConfig())
	m.Init()
	tick(m, 2)

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d scores for a zero game, want 0", len(scores))
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &fakeGame{score: 10, endAfter: 1}
	m := tick(NewModel(game, nil, core.DefaultConfig()), 2).(Model)

	if !m.GameState().GameOver {
		t.Error("game state not captured from step")
	}
}

func TestModelForwardsInputOncePerFrame(t *testing.T) {
	game := &fakeGame{}
	var m tea.Model = NewModel(game, nil, core.DefaultConfig())

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 2)

	if len(game.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(game.inputs))
	}
	first := game.inputs[0]
	if len(first) != 2 || first[0] != core.ActionUp || first[1] != core.ActionLeft {
		t.Errorf("first frame input = %v, want [up left]", first)
	}
	if len(game.inputs[1]) != 0 {
		t.Errorf("second frame input = %v, want empty", game.inputs[1])
	}
}

func TestModelQuit(t *testing.T) {
	m, cmd := NewModel(&fakeGame{}, nil, core.DefaultConfig()).Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if m.View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, core.DefaultConfig())
	m.Init()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1 (resize must not restart)", game.resets)
	}
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized to %v, want [100 30]", game.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRunsSnake(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7

	var m tea.Model = NewModel(snake.New(snake.ModeWalls), nil, cfg)
	m.Init()

	if !strings.Contains(m.View(), "SNAKE") {
		t.Fatalf("idle view has no HUD:\n%s", m.View())
	}

	m = press(m, runeKey(" "))
	m = tick(m, 1)

	if got := m.(Model).GameState().Status; got != string(snake.StatusPlaying) {
		t.Errorf("status = %q after space, want playing", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "xy")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen is missing %q", want)
		}
	}
}

func TestScoreboardBoards(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.SaveScore(snake.IDWalls, 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	u, err := store.CreateUser(ctx, "alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if _, _, err := store.SubmitScore(ctx, u.ID, 120, snake.ModeWalls); err != nil {
		t.Fatalf("SubmitScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 1 || m.scores[0].Score != 50 {
		t.Fatalf("local walls board = %+v, want one score of 50", m.scores)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if len(m.scores) != 0 {
		t.Errorf("local pass-through board = %+v, want empty", m.scores)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyTab}).(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Player != "alice" || m.scores[0].Score != 120 {
		t.Errorf("online walls board = %+v, want alice with 120", m.scores)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}).(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after going back twice, want 0", m.cursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty scoreboard view:\n%s", m.View())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc}).(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc did not go back")
	}
}
