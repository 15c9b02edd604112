package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", runeKey(" "), core.ActionPause, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"m", runeKey("m"), core.ActionToggleMode, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
		t.Fatal("up reported as quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionLeft {
		t.Errorf("frame actions = %v, want [up left]", got)
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q not reported as quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey(" "), MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
