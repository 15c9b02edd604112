package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// SnakeSelection holds the user's choices from the Snake setup screen.
type SnakeSelection struct {
	Mode  snake.Mode
	Speed config.Speed
}

// GameID returns the registry ID of the variant for the selected mode.
func (s SnakeSelection) GameID() string {
	if s.Mode == snake.ModePassThrough {
		return snake.IDPassThrough
	}
	return snake.IDWalls
}

// Setup rows.
const (
	setupRowMode = iota
	setupRowSpeed
	setupRowStart
	setupRowCount
)

// SnakeSetupModel lets users choose the board mode and difficulty before a game.
type SnakeSetupModel struct {
	cursor    int
	speedIdx  int
	mode      snake.Mode
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewSnakeSetupModel creates a setup screen preselecting mode at normal speed.
func NewSnakeSetupModel(mode snake.Mode, width, height int) SnakeSetupModel {
	if !mode.Valid() {
		mode = snake.ModeWalls
	}
	m := SnakeSetupModel{
		mode:      mode,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, s := range config.Speeds {
		if s == config.SpeedNormal {
			m.speedIdx = i
		}
	}
	return m
}

// Init initializes the model.
func (m SnakeSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SnakeSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SnakeSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < setupRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// cycle changes the value on the current row.
func (m *SnakeSetupModel) cycle(delta int) {
	switch m.cursor {
	case setupRowMode:
		m.mode = m.mode.Toggle()
	case setupRowSpeed:
		n := len(config.Speeds)
		m.speedIdx = ((m.speedIdx+delta)%n + n) % n
	}
}

// View renders the setup screen.
func (m SnakeSetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Mode:  < %s >", modeTitle(m.mode)),
		fmt.Sprintf("Speed: < %s >", m.speed()),
		"Start",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SnakeSetupModel) speed() config.Speed {
	return config.Speeds[m.speedIdx]
}

// Selected returns the selection, or nil if the user backed out or quit.
func (m SnakeSetupModel) Selected() *SnakeSelection {
	if !m.chosen {
		return nil
	}
	return &SnakeSelection{Mode: m.mode, Speed: m.speed()}
}

// IsQuitting returns true if user wants to quit.
func (m SnakeSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SnakeSetupModel) WantsBack() bool {
	return m.back
}

func modeTitle(mode snake.Mode) string {
	if mode == snake.ModePassThrough {
		return "Pass-through"
	}
	return "Walls"
}

// RunSnakeSetup runs the setup screen and returns the selection, or nil
// if the user left without choosing.
func RunSnakeSetup(mode snake.Mode, cfg core.RuntimeConfig) (*SnakeSelection, error) {
	p := tea.NewProgram(
		NewSnakeSetupModel(mode, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SnakeSetupModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
