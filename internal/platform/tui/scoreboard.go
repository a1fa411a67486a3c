package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ponpon/internal/registry"
	"github.com/vovakirdan/ponpon/internal/storage"
)

const (
	maxBoardRounds = 50
	// Below this width the date column is dropped.
	dateColumnMinWidth = 64
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).Padding(1, 3)
)

// boardKeys are the scoreboard bindings.
type boardKeys struct {
	Up, Down   key.Binding
	Prev, Next key.Binding
	Back, Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "row")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "row")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "mode")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "mode")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best stored rounds of each mode with the
// combo, chain and fever figures of every round.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	store  *storage.Store
	rounds []storage.RoundStats
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.table = table.New(table.WithFocused(true))
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).BorderForeground(lipgloss.Color("8"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	m.table.SetStyles(s)
	m.layoutTable()
	m.load()
	return m
}

// boardColumns sizes the columns to the window width.
func boardColumns(width int) []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Combo", Width: 6},
		{Title: "Chain", Width: 6},
		{Title: "Fevers", Width: 6},
		{Title: "Tiles", Width: 6},
	}
	if width >= dateColumnMinWidth {
		cols = append(cols, table.Column{Title: "Played", Width: 12})
	}
	return cols
}

func (m *ScoreboardModel) layoutTable() {
	m.table.SetRows(nil)
	m.table.SetColumns(boardColumns(m.width))
	// title, tabs, summary, frame, detail and help
	m.table.SetHeight(max(m.height-12, 3))
	m.help.Width = m.width
}

func (m *ScoreboardModel) load() {
	m.rounds, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if rounds, err := m.store.TopRounds(id, maxBoardRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	withDate := m.width >= dateColumnMinWidth
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		row := table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprintf("x%d", r.MaxCombo),
			fmt.Sprint(r.LongestChain),
			fmt.Sprint(r.FeverCount),
			fmt.Sprint(r.TilesCleared),
		}
		if withDate {
			row = append(row, r.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchMode(step int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + step + len(m.modes)) % len(m.modes)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutTable()
		m.fillRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchMode(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the highlighted round, or nil when the board is empty.
func (m ScoreboardModel) Selected() *storage.RoundStats {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rounds) {
		return nil
	}
	return &m.rounds[i]
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("BEST ROUNDS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n")

	if len(m.rounds) == 0 {
		b.WriteString(centerText(boardEmptyStyle.Render("No rounds played in this mode yet."), m.width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.table.View())))
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.detail()), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// summary describes every score saved for the mode, not just the listed rounds.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d played  ·  average %.0f  ·  record %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.HighScore)
}

// detail expands the highlighted round with the figures that do not fit a row.
func (m ScoreboardModel) detail() string {
	r := m.Selected()
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%d chains in %s  ·  round %.8s",
		r.Chains, r.Duration.Round(time.Second), r.ID)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the user leaves it.
// goBack is true when the user asked for the menu rather than to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
