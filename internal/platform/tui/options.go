package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
	"github.com/vovakirdan/apple-picking/internal/storage"
)

// Option rows.
const (
	optPlayerName = iota
	optMusic
	optVibration
	optBack
	optCount
)

// OptionsModel edits the player name and the two preference toggles.
// Every change is saved right away.
type OptionsModel struct {
	env       Env
	settings  storage.Settings
	cursor    int
	editing   bool
	input     textinput.Model
	keyMapper *KeyMapper
	err       error
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewOptionsModel creates an options screen showing the stored settings.
func NewOptionsModel(env Env, width, height int) OptionsModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Anonymous"
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen + 1

	return OptionsModel{
		env:       env,
		settings:  env.settings(),
		input:     ti,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the options screen.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the options screen.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.goingBack = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < optCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.activate()
	}
	return m, nil
}

// activate toggles or opens the row under the cursor.
func (m OptionsModel) activate() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case optPlayerName:
		m.editing = true
		m.input.SetValue(m.settings.PlayerName)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case optMusic:
		m.settings.BackgroundMusic = !m.settings.BackgroundMusic
		m.save()
	case optVibration:
		m.settings.Vibration = !m.settings.Vibration
		m.save()
	case optBack:
		m.goingBack = true
		return m, tea.Quit
	}
	return m, nil
}

func (m OptionsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.settings.PlayerName = leaderboard.NormalizeName(m.input.Value())
		m.save()
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *OptionsModel) save() {
	if m.env.Settings == nil {
		return
	}
	m.err = m.env.Settings.SaveSettings(m.settings)
}

// View renders the options screen.
func (m OptionsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("OPTIONS"), m.width))
	b.WriteString("\n\n")

	rows := [optCount]string{
		fmt.Sprintf("Player name:       %s", m.settings.PlayerName),
		fmt.Sprintf("Background music:  %s", onOff(m.settings.BackgroundMusic)),
		fmt.Sprintf("Vibration:         %s", onOff(m.settings.Vibration)),
		"Back",
	}
	if m.editing {
		rows[optPlayerName] = "Player name:       " + m.input.View()
	}

	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(centerText(errStyle.Render(fmt.Sprintf("Could not save: %v", m.err)), m.width))
		b.WriteString("\n")
	}
	controls := "Enter: Change  |  Esc: Back  |  Q: Quit"
	if m.editing {
		controls = "Enter: Save  |  Esc: Cancel"
	}
	b.WriteString(centerText(menuMutedStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Settings returns the settings as currently shown.
func (m OptionsModel) Settings() storage.Settings {
	return m.settings
}

// IsGoingBack returns true if user wants to go back to menu.
func (m OptionsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}
