package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
	"github.com/vovakirdan/apple-picking/internal/storage"
)

// ScoreTab selects which list the scoreboard shows.
type ScoreTab int

const (
	TabLocal ScoreTab = iota
	TabGlobal
)

func (t ScoreTab) String() string {
	if t == TabGlobal {
		return "Leaderboard"
	}
	return "High Scores"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Refresh, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "switch list"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the local top-10 list and the global leaderboard.
type ScoreboardModel struct {
	env       Env
	tab       ScoreTab
	player    string
	local     []storage.ScoreEntry
	localErr  error
	global    []leaderboard.Entry
	globalErr error
	loading   bool
	loaded    bool // Global list fetched at least once
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the given tab.
func NewScoreboardModel(env Env, tab ScoreTab, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		env:    env,
		tab:    tab,
		player: env.settings().PlayerName,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.loadLocal()
	m.table = m.createTable()
	m.updateTableRows()

	if tab == TabGlobal && env.Board != nil {
		m.loading = true
	}
	return m
}

// loadLocal reads the local top-10 list.
func (m *ScoreboardModel) loadLocal() {
	if m.env.Scores == nil {
		return
	}
	m.local, m.localErr = m.env.Scores.HighScores()
}

// createTable creates a table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == TabGlobal {
		nameW := 20
		if m.width > 0 {
			nameW = max(10, min(28, m.width-40))
		}
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: nameW},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Mode", Width: 8},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // Leave room for header, tabs, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the list of the current tab.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.tab == TabGlobal {
		rows = make([]table.Row, len(m.global))
		for i, e := range m.global {
			name := e.PlayerName
			if name == m.player {
				name += " (you)"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				name,
				fmt.Sprintf("%d", e.Score),
				e.Time().Local().Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.local))
		for i, s := range m.local {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				modeLabel(s.GameID),
				s.CreatedAt.Local().Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func modeLabel(gameID string) string {
	if strings.HasSuffix(gameID, "_daily") {
		return "daily"
	}
	return "classic"
}

// Init fetches the global list when the scoreboard opens on it.
func (m ScoreboardModel) Init() tea.Cmd {
	if m.loading {
		return fetchEntriesCmd(m.env)
	}
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			if m.tab == TabLocal {
				return m.switchTab(TabGlobal)
			}
			return m.switchTab(TabLocal)

		case key.Matches(msg, m.keys.Refresh):
			if m.tab == TabGlobal {
				return m.refresh()
			}
			m.loadLocal()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case entriesFetchedMsg:
		m.loading = false
		m.loaded = true
		m.globalErr = msg.Err
		if msg.Err == nil {
			m.global = msg.Entries
		}
		if m.tab == TabGlobal {
			m.updateTableRows()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) switchTab(tab ScoreTab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.table = m.createTable()
	m.updateTableRows()
	if tab == TabGlobal && !m.loaded && !m.loading {
		return m.refresh()
	}
	return m, nil
}

func (m ScoreboardModel) refresh() (tea.Model, tea.Cmd) {
	if m.env.Board == nil || m.loading {
		return m, nil
	}
	m.loading = true
	m.globalErr = nil
	return m, fetchEntriesCmd(m.env)
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.tab.String())), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []ScoreTab{TabLocal, TabGlobal} {
		if t == m.tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or a placeholder message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.tab == TabGlobal {
		switch {
		case m.env.Board == nil:
			return emptyStyle.Render("Leaderboard is offline.\nSet a leaderboard URL to compare scores.")
		case m.loading:
			return emptyStyle.Render("Loading leaderboard...")
		case m.globalErr != nil:
			return emptyStyle.Render(fmt.Sprintf("Could not load leaderboard:\n%v\n\nr: retry", m.globalErr))
		case len(m.global) == 0:
			return emptyStyle.Render("No scores submitted yet.\nBe the first!")
		}
		return m.table.View()
	}

	switch {
	case m.localErr != nil:
		return emptyStyle.Render(fmt.Sprintf("Could not read scores:\n%v", m.localErr))
	case len(m.local) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// Tab returns the tab on display.
func (m ScoreboardModel) Tab() ScoreTab {
	return m.tab
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
