package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/registry"
)

// page is the part of the app a SessionModel is showing.
type page int

const (
	screenMenu page = iota
	screenGame
	screenScores
	screenOptions
)

// SessionModel manages the full flow: menu -> game, scores or options -> menu.
// It is the top-level model of both the local menu and SSH sessions.
type SessionModel struct {
	env        Env
	config     core.RuntimeConfig
	current    page
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	options    *OptionsModel
	quitting   bool
}

// NewSessionModel creates a session starting at the main menu.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenOptions:
		return m.updateOptions(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuPlay:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu only lists registered games
			return m.toMenu()
		}
		gameModel := NewGameModel(game, m.env, m.config)
		m.gameModel = &gameModel
		m.current = screenGame
		return m, m.gameModel.Init()

	case MenuScores, MenuLeaderboard:
		tab := TabLocal
		if selected.Kind == MenuLeaderboard {
			tab = TabGlobal
		}
		sb := NewScoreboardModel(m.env, tab, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.current = screenScores
		return m, m.scoreboard.Init()

	case MenuOptions:
		opts := NewOptionsModel(m.env, m.config.ScreenW, m.config.ScreenH)
		m.options = &opts
		m.current = screenOptions
		return m, m.options.Init()
	}

	return m.toMenu()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.options.Update(msg)
	if opts, ok := newModel.(OptionsModel); ok {
		m.options = &opts
	}

	if m.options.IsGoingBack() {
		return m.toMenu()
	}
	if m.options.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// toMenu drops the current screen and shows a fresh menu, so the player
// name and best score shown there are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.options = nil
	m.menu = NewMenuModel(m.env, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	case screenOptions:
		return m.options.View()
	}
	return m.menu.View()
}

// IsQuitting returns true once the player left the app.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu-driven app in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
