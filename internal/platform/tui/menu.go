package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/games/apples"
)

// MenuKind is what a menu entry opens.
type MenuKind int

const (
	MenuPlay MenuKind = iota
	MenuScores
	MenuLeaderboard
	MenuOptions
	MenuQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Kind   MenuKind
	GameID string // Set for MenuPlay
	Title  string
}

// DefaultMenuItems returns the main menu entries in display order.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Kind: MenuPlay, GameID: apples.IDClassic, Title: "Play"},
		{Kind: MenuPlay, GameID: apples.IDDaily, Title: "Daily Seed"},
		{Kind: MenuScores, Title: "High Scores"},
		{Kind: MenuLeaderboard, Title: "Leaderboard"},
		{Kind: MenuOptions, Title: "Options"},
		{Kind: MenuQuit, Title: "Quit"},
	}
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	env       Env
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	highScore int
	player    string
	quitting  bool
	selected  *MenuItem // Set when user picks an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(env Env, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		env:       env,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		player:    env.settings().PlayerName,
	}
	if env.Scores != nil {
		if best, err := env.Scores.HighScore(); err == nil {
			m.highScore = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.Kind == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit // Leave the menu for the picked screen
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  A P P L E   P I C K I N G  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuMutedStyle.Render("Box in apples that add up to 10"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	info := fmt.Sprintf("Player: %s  |  Best: %d", m.player, m.highScore)
	b.WriteString(centerText(menuMutedStyle.Render(info), m.width))
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuMutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
