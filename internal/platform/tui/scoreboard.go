package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 24  // Width of board list sidebar
	maxScores          = 100 // Max scores to load
	loadTimeout        = 2 * time.Second
)

// scoreRow is one line of any board, local or online.
type scoreRow struct {
	Player string
	Score  int
	Date   time.Time
}

// board is one tab of the scoreboard.
type board struct {
	Title string
	load  func(ctx context.Context, store *storage.Store) ([]scoreRow, error)
}

// localBoard lists games played on this machine for a registry game ID.
func localBoard(title, gameID string) board {
	return board{
		Title: title,
		load: func(_ context.Context, store *storage.Store) ([]scoreRow, error) {
			entries, err := store.TopScores(gameID, maxScores)
			if err != nil {
				return nil, err
			}
			rows := make([]scoreRow, len(entries))
			for i, e := range entries {
				rows[i] = scoreRow{Player: "local", Score: e.Score, Date: e.CreatedAt}
			}
			return rows, nil
		},
	}
}

// onlineBoard lists submitted scores of registered players for a mode.
func onlineBoard(title string, mode snake.Mode) board {
	return board{
		Title: title,
		load: func(ctx context.Context, store *storage.Store) ([]scoreRow, error) {
			entries, err := store.Leaderboard(ctx, mode, maxScores)
			if err != nil {
				return nil, err
			}
			rows := make([]scoreRow, len(entries))
			for i, e := range entries {
				rows[i] = scoreRow{Player: e.Username, Score: e.Score, Date: e.Date}
			}
			return rows, nil
		},
	}
}

// defaultBoards returns the tabs in display order.
func defaultBoards() []board {
	return []board{
		localBoard("Local: Walls", snake.IDWalls),
		localBoard("Local: Pass-through", snake.IDPassThrough),
		onlineBoard("Online: Walls", snake.ModeWalls),
		onlineBoard("Online: Pass-through", snake.ModePassThrough),
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev board")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards      []board
	cursor      int            // Currently selected board index
	store       *storage.Store // Score storage
	scores      []scoreRow
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the board list as a sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		boards:      defaultBoards(),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Adjust column widths if we have more space
	if tableWidth > 60 {
		columns[1].Width = min(tableWidth-40, 20)
		columns[3].Width = 18
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores for the selected board.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.loadErr = nil
	if m.store != nil && len(m.boards) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		m.scores, m.loadErr = m.boards[m.cursor].load(ctx, m.store)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.Date.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectBoard(m.cursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectBoard(m.cursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectBoard moves to board i, wrapping around, and loads it.
func (m *ScoreboardModel) selectBoard(i int) {
	n := len(m.boards)
	if n == 0 {
		return
	}
	m.cursor = (i%n + n) % n
	m.loadScores()
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	scoreActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	scoreMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard. Wide terminals get the board list as a
// sidebar, narrow ones get it as a row of tabs above the table.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.boards) > 0 {
		title += " - " + m.boards[m.cursor].Title
	}

	var body string
	table := scoreFrameStyle.Render(m.renderTableContent())
	if m.showSidebar {
		list := scoreFrameStyle.Width(sidebarWidth).Render(m.renderBoardList("\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", table)
	} else {
		tabs := m.renderBoardList(" ")
		if lipgloss.Width(tabs) > m.width-4 && len(m.boards) > 0 {
			tabs = fmt.Sprintf("< %s >", m.boards[m.cursor].Title)
		}
		body = lipgloss.JoinVertical(lipgloss.Center, tabs, "", table)
	}

	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(scoreMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderBoardList renders the board names joined by sep, highlighting the
// selected one.
func (m ScoreboardModel) renderBoardList(sep string) string {
	names := make([]string, len(m.boards))
	for i, bd := range m.boards {
		name := " " + bd.Title + " "
		if i == m.cursor {
			names[i] = scoreActiveStyle.Render(name)
		} else {
			names[i] = scoreMutedStyle.Render(name)
		}
	}
	return strings.Join(names, sep)
}

// renderTableContent renders the table, an error or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(2, 4).
			Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return scoreMutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
