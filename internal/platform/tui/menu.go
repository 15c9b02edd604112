package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// MenuItem is one snake variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
	Best   int  // Best local score, 0 if none
	Scored bool // False for variants that never record scores
}

// variantBlurb describes what sets a variant apart.
func variantBlurb(id string) string {
	switch id {
	case snake.IDWalls:
		return "the border is deadly"
	case snake.IDPassThrough:
		return "wrap around the edges"
	case snake.IDDemo:
		return "watch the AI play"
	}
	return ""
}

// menuItems lists the registered variants with their best local scores.
// A nil store or a failed lookup leaves the best score at 0.
func menuItems(store *storage.Store) []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Blurb:  variantBlurb(g.ID),
			Scored: g.ID != snake.IDDemo,
		}
		if item.Scored && store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	return items
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu of every registered variant. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init has no startup command.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and tracks terminal size.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// itemLine renders one row: title, blurb and best score in fixed columns.
func itemLine(item MenuItem) string {
	best := "-"
	switch {
	case !item.Scored:
		best = "AI"
	case item.Best > 0:
		best = fmt.Sprintf("best %d", item.Best)
	}
	return fmt.Sprintf("%-22s %-24s %9s", item.Title, item.Blurb, best)
}

// View draws the variant list with best scores.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("~~~~<  S N A K E   A R E N A", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + itemLine(item)
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + itemLine(item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("↑/↓ choose · Enter play · Tab scores · Q quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the menu was left with q or esc.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether Tab was pressed.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to centre it. Width is measured in
// cells, so styled strings centre correctly.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what RunMenu hands back to the caller.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns what the user picked.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		res.Quit = true
	default:
		res.GameID = m.Selected().GameID
	}
	return res, nil
}
