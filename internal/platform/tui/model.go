package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/registry"
)

// submitState tracks the leaderboard submission of the current round.
type submitState int

const (
	submitIdle submitState = iota
	submitPending
	submitDone
	submitFailed
)

// roundStatus is what the game over screen reports beyond the game itself.
type roundStatus struct {
	submit  submitState
	last    submission
	err     error
	rank    int
	ranked  bool
	newHigh bool
}

var roundSeq atomic.Int64

func nextRound() int64 {
	return roundSeq.Add(1)
}

// freshSeed draws a board seed for a new round. Mixing in the round id keeps
// two rounds started within one clock tick apart.
func freshSeed(round int64) int64 {
	seed := time.Now().UnixNano() ^ (round << 40)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// GameModel is the Bubble Tea model for running a round.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	config     core.RuntimeConfig
	submitter  *queueSubmitter
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	status     roundStatus
	round      int64 // Tags submission results; unique per process
	standalone bool  // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new game model. Player name and selection feedback
// come from the stored settings; a leaderboard in env enables submission.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	// Every round gets its own board unless a seed was pinned
	round := nextRound()
	if cfg.Seed == 0 {
		cfg.Seed = freshSeed(round)
	}

	st := env.settings()
	cfg.PlayerName = st.PlayerName
	cfg.Feedback = st.Vibration

	var submitter *queueSubmitter
	if env.Board != nil {
		submitter = newQueueSubmitter()
		cfg.Submitter = submitter
	} else {
		cfg.Submitter = nil
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env,
		config:     cfg,
		submitter:  submitter,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		round:      round,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case scoreSubmittedMsg:
		return m.handleSubmitted(msg)

	case rankFetchedMsg:
		if msg.Round == m.round && msg.Err == nil {
			m.status.rank = msg.Rank
			m.status.ranked = msg.Found
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "u":
		if m.gameState.GameOver && m.status.submit == submitFailed {
			m.status.submit = submitPending
			m.status.err = nil
			return m, submitCmd(m.env, m.round, m.status.last)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc) only when the round is over or paused
	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
		} else {
			m.backToMenu = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleResize keeps the round running on the new layout.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.round = nextRound()
		m.config.Seed = freshSeed(m.round)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.status = roundStatus{}
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	cmds := make([]tea.Cmd, 0, 2)
	if m.submitter != nil {
		for _, sub := range m.submitter.drain() {
			m.status.submit = submitPending
			m.status.last = sub
			cmds = append(cmds, submitCmd(m.env, m.round, sub))
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveScore records the round in the local top-10 list.
func (m *GameModel) saveScore() {
	score := m.gameState.Score
	if m.env.Scores == nil || score <= 0 {
		return
	}
	best, err := m.env.Scores.HighScore()
	if err != nil {
		best = 0
	}
	if _, err := m.env.Scores.RecordScore(m.game.ID(), score); err != nil {
		return
	}
	m.status.newHigh = score > best
}

func (m GameModel) handleSubmitted(msg scoreSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.Round != m.round {
		return m, nil
	}
	if msg.Err != nil {
		m.status.submit = submitFailed
		m.status.err = msg.Err
		return m, nil
	}
	m.status.submit = submitDone
	return m, fetchRankCmd(m.env, m.round, msg.Sub)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".applepick", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// render draws the game and, once the round is over, the status line.
func (m GameModel) render() {
	m.screen.Clear()
	m.game.Render(m.screen)
	if !m.gameState.GameOver {
		return
	}
	text, color := m.statusLine()
	if text != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, text, color)
	}
}

// statusLine describes the local save and the leaderboard submission.
func (m GameModel) statusLine() (string, core.Color) {
	var high string
	if m.status.newHigh {
		high = "NEW HIGH SCORE!  "
	}

	switch m.status.submit {
	case submitPending:
		return high + "Submitting score...", core.ColorMuted
	case submitDone:
		if m.status.ranked {
			return high + fmt.Sprintf("Global Rank: #%d", m.status.rank), core.ColorLeaf
		}
		return high + "Score submitted", core.ColorLeaf
	case submitFailed:
		return high + fmt.Sprintf("Failed to submit score: %v  U: retry", m.status.err), core.ColorFlash
	}

	if m.env.Board == nil && m.gameState.Score > 0 {
		return high + "Offline - score kept locally", core.ColorMuted
	}
	if high != "" {
		return high, core.ColorCursor
	}
	return "", core.ColorDefault
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a single round in its own Bubble Tea program.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, env, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag selections
	)

	_, err := p.Run()
	return err
}
