package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/games/apples"
	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// newTestModel starts a two-second round with one countdown tick per frame.
func newTestModel(t *testing.T, env Env) (GameModel, *apples.Game) {
	t.Helper()
	cfg := testConfig()
	cfg.TickRate = 1
	cfg.RoundSeconds = 2

	game := apples.New()
	m := NewGameModel(game, env, cfg)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// pickOnce finds any rectangle summing to ten and picks it.
func pickOnce(t *testing.T, game *apples.Game) int {
	t.Helper()
	s := game.Session()
	g := s.Grid()
	for r0 := range g.Height() {
		for c0 := range g.Width() {
			for r1 := r0; r1 < g.Height(); r1++ {
				for c1 := c0; c1 < g.Width(); c1++ {
					rect := apples.Rect{MinRow: r0, MaxRow: r1, MinCol: c0, MaxCol: c1}
					if !apples.Evaluate(rect, g).Valid {
						continue
					}
					res, err := s.Select(rect)
					if err != nil {
						t.Fatalf("Select: %v", err)
					}
					return len(res.Cells)
				}
			}
		}
	}
	t.Fatal("no rectangle sums to ten")
	return 0
}

// finishRound ticks until the countdown ends.
func finishRound(t *testing.T, m GameModel) GameModel {
	t.Helper()
	for range 10 {
		m, _ = update(t, m, TickMsg{})
		if m.gameState.GameOver {
			return m
		}
	}
	t.Fatal("round did not end")
	return m
}

func TestGameModelUsesSettings(t *testing.T) {
	settings := NewMemorySettings("ann")
	st, _ := settings.LoadSettings()
	st.Vibration = false
	//nolint:errcheck // In-memory store
	settings.SaveSettings(st)

	m, game := newTestModel(t, Env{Settings: settings, Board: &fakeBoard{}})

	if m.config.PlayerName != "ann" || m.config.Feedback {
		t.Errorf("config = %+v", m.config)
	}
	if game.Session().PlayerName() != "ann" {
		t.Errorf("session player = %q", game.Session().PlayerName())
	}
	if m.config.Submitter == nil {
		t.Error("a leaderboard should enable submission")
	}

	offline, _ := newTestModel(t, Env{})
	if offline.config.Submitter != nil || offline.submitter != nil {
		t.Error("no leaderboard means no submitter")
	}
}

func TestGameModelRoundEndSavesAndSubmitsOnce(t *testing.T) {
	scores := &fakeScores{}
	board := &fakeBoard{}
	env := Env{Scores: scores, Settings: NewMemorySettings("ann"), Board: board}

	m, game := newTestModel(t, env)
	picked := pickOnce(t, game)

	m = finishRound(t, m)

	if scores.count() != 1 {
		t.Fatalf("local saves = %d, want 1", scores.count())
	}
	if !m.status.newHigh {
		t.Error("first score should be a new high score")
	}
	if m.status.submit != submitPending {
		t.Fatalf("submit state = %v, want pending", m.status.submit)
	}
	if want := (submission{"ann", picked}); m.status.last != want {
		t.Errorf("queued %v, want %v", m.status.last, want)
	}

	// More frames after the end change nothing
	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}
	if scores.count() != 1 {
		t.Errorf("local saves = %d after extra frames", scores.count())
	}
	if len(m.submitter.drain()) != 0 {
		t.Error("submission queued twice")
	}

	// The network result arrives
	board.entries = []leaderboard.Entry{
		{PlayerName: "bob", Score: picked + 50},
		{PlayerName: "ann", Score: picked},
	}
	m, cmd := update(t, m, scoreSubmittedMsg{Round: m.round, Sub: m.status.last})
	if m.status.submit != submitDone {
		t.Fatalf("submit state = %v, want done", m.status.submit)
	}
	if cmd == nil {
		t.Fatal("a successful submission should fetch the rank")
	}
	m, _ = update(t, m, cmd())
	if !m.status.ranked || m.status.rank != 2 {
		t.Errorf("rank = %d (%v), want 2", m.status.rank, m.status.ranked)
	}

	m.render()
	last := m.screen.Row(m.screen.Height() - 1)
	if !strings.Contains(last, "Global Rank: #2") || !strings.Contains(last, "NEW HIGH SCORE") {
		t.Errorf("status line = %q", last)
	}
}

func TestGameModelZeroScore(t *testing.T) {
	scores := &fakeScores{}
	board := &fakeBoard{}
	m, _ := newTestModel(t, Env{Scores: scores, Board: board})

	m = finishRound(t, m)

	if scores.count() != 0 {
		t.Error("zero score must not be saved")
	}
	if m.status.submit != submitIdle {
		t.Errorf("submit state = %v, want idle", m.status.submit)
	}
	if text, _ := m.statusLine(); text != "" {
		t.Errorf("status line = %q, want empty", text)
	}
}

func TestGameModelSubmissionFailureAndRetry(t *testing.T) {
	board := &fakeBoard{}
	m, game := newTestModel(t, Env{Board: board})
	pickOnce(t, game)
	m = finishRound(t, m)

	m, cmd := update(t, m, scoreSubmittedMsg{Round: m.round, Sub: m.status.last, Err: leaderboard.ErrNetwork})
	if cmd != nil || m.status.submit != submitFailed {
		t.Fatalf("submit state = %v, cmd = %v", m.status.submit, cmd)
	}
	text, color := m.statusLine()
	if !strings.Contains(text, "Failed to submit score") || !strings.Contains(text, "U: retry") {
		t.Errorf("status line = %q", text)
	}
	if color != core.ColorFlash {
		t.Errorf("failure color = %v", color)
	}

	m, cmd = update(t, m, keyMsg("u"))
	if cmd == nil || m.status.submit != submitPending {
		t.Fatalf("retry did not resubmit: state %v", m.status.submit)
	}
	m, _ = update(t, m, cmd())
	if m.status.submit != submitDone {
		t.Errorf("submit state = %v after retry, want done", m.status.submit)
	}
	if len(board.submissions()) != 1 {
		t.Errorf("board got %d submissions", len(board.submissions()))
	}
}

func TestGameModelIgnoresStaleResults(t *testing.T) {
	m, game := newTestModel(t, Env{Board: &fakeBoard{}})
	pickOnce(t, game)
	m = finishRound(t, m)

	m, cmd := update(t, m, scoreSubmittedMsg{Round: m.round - 1, Err: errors.New("old")})
	if cmd != nil || m.status.submit != submitPending {
		t.Errorf("stale result changed state to %v", m.status.submit)
	}
	m, _ = update(t, m, rankFetchedMsg{Round: m.round - 1, Rank: 1, Found: true})
	if m.status.ranked {
		t.Error("stale rank applied")
	}
}

func TestGameModelOffline(t *testing.T) {
	scores := &fakeScores{}
	m, game := newTestModel(t, Env{Scores: scores})
	pickOnce(t, game)
	m = finishRound(t, m)

	if scores.count() != 1 {
		t.Errorf("local saves = %d, want 1", scores.count())
	}
	if text, _ := m.statusLine(); !strings.Contains(text, "Offline") {
		t.Errorf("status line = %q", text)
	}
}

func TestGameModelRestart(t *testing.T) {
	scores := &fakeScores{}
	m, game := newTestModel(t, Env{Scores: scores, Board: &fakeBoard{}})
	pickOnce(t, game)
	m = finishRound(t, m)
	oldRound := m.round

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg{})

	if m.gameState.GameOver || m.gameState.Score != 0 {
		t.Errorf("state after restart = %+v", m.gameState)
	}
	if m.round == oldRound {
		t.Error("restart should start a new round id")
	}
	if m.status != (roundStatus{}) || m.scoreSaved {
		t.Errorf("status not reset: %+v", m.status)
	}

	// Second round scores nothing; the local list is untouched
	m = finishRound(t, m)
	if scores.count() != 1 {
		t.Errorf("local saves = %d, want 1", scores.count())
	}
}

func TestGameModelRestartOnlyWhenOver(t *testing.T) {
	m, game := newTestModel(t, Env{})
	picked := pickOnce(t, game)

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg{})

	if game.Session().Score() != picked {
		t.Errorf("score = %d, want %d; r must not restart a running round", game.Session().Score(), picked)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, Env{})

	m, _ = update(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Fatal("back is ignored while the round runs")
	}

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("p should pause")
	}
	m, cmd := update(t, m, keyMsg("esc"))
	if !m.BackToMenu() || m.IsQuitting() || cmd == nil {
		t.Errorf("esc while paused: back=%v quit=%v", m.BackToMenu(), m.IsQuitting())
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}

	q, _ := newTestModel(t, Env{})
	q, cmd = update(t, q, keyMsg("q"))
	if !q.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m, _ := newTestModel(t, Env{})
	m.standalone = true
	m = finishRound(t, m)

	m, _ = update(t, m, keyMsg("b"))
	if !m.IsQuitting() || m.BackToMenu() {
		t.Errorf("standalone back: quit=%v back=%v", m.IsQuitting(), m.BackToMenu())
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	m, game := newTestModel(t, Env{})
	picked := pickOnce(t, game)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.Session().Score() != picked || game.Session().TimeRemaining() != 1 {
		t.Errorf("resize reset the round: score %d, time %d", game.Session().Score(), game.Session().TimeRemaining())
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.config.ScreenW != 100 {
		t.Errorf("config width = %d", m.config.ScreenW)
	}
}

func TestGameModelMouseDrag(t *testing.T) {
	m, game := newTestModel(t, Env{})
	layout := game.Layout()
	grid := game.Session().Grid()
	a, _ := grid.CellAt(0, 0)
	b, _ := grid.CellAt(0, 1)
	picked := a.Value+b.Value == apples.TargetSum

	x, y := layout.ScreenPos(apples.Coord{Row: 0, Col: 0})
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: x + 3, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if len(m.inputFrame.Pointer) != 2 {
		t.Fatalf("pointer events = %d, want 2", len(m.inputFrame.Pointer))
	}
	m, _ = update(t, m, tea.MouseMsg{X: x + 3, Y: y, Action: tea.MouseActionRelease})
	m, _ = update(t, m, TickMsg{})

	if len(m.inputFrame.Pointer) != 0 {
		t.Error("pointer events should be consumed by the frame")
	}
	if picked && game.Session().Score() != 2 {
		t.Errorf("score = %d after picking a pair", game.Session().Score())
	}
	if !picked && game.Session().Score() != 0 {
		t.Errorf("score = %d after a miss", game.Session().Score())
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, Env{})
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "APPLE PICKING") {
		t.Errorf("view missing title:\n%s", view)
	}
	if !strings.Contains(view, "0:01") {
		t.Errorf("view missing clock:\n%s", view)
	}
}
