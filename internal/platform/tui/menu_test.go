package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apple-picking/internal/games/apples"
	"github.com/vovakirdan/apple-picking/internal/registry"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestDefaultMenuItems(t *testing.T) {
	items := DefaultMenuItems()
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
		if it.Kind == MenuPlay && !registry.Exists(it.GameID) {
			t.Errorf("menu entry %q points at unregistered game %q", it.Title, it.GameID)
		}
	}
	want := "Play,Daily Seed,High Scores,Leaderboard,Options,Quit"
	if got := strings.Join(titles, ","); got != want {
		t.Errorf("menu = %s, want %s", got, want)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(Env{}, testConfig())

	m, _ = updateMenu(t, m, keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, should stop at the top", m.cursor)
	}
	for range 10 {
		m, _ = updateMenu(t, m, keyMsg("down"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, should stop at the bottom", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		downs  int
		kind   MenuKind
		gameID string
	}{
		{0, MenuPlay, apples.IDClassic},
		{1, MenuPlay, apples.IDDaily},
		{2, MenuScores, ""},
		{3, MenuLeaderboard, ""},
		{4, MenuOptions, ""},
	}

	for _, tt := range tests {
		m := NewMenuModel(Env{}, testConfig())
		for range tt.downs {
			m, _ = updateMenu(t, m, keyMsg("j"))
		}
		m, cmd := updateMenu(t, m, keyMsg("enter"))
		sel := m.Selected()
		if sel == nil || cmd == nil {
			t.Fatalf("down x%d: nothing selected", tt.downs)
		}
		if sel.Kind != tt.kind || sel.GameID != tt.gameID {
			t.Errorf("down x%d: selected %+v", tt.downs, *sel)
		}
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(Env{}, testConfig())
	m.cursor = len(m.items) - 1
	m, _ = updateMenu(t, m, keyMsg("enter"))
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("Quit entry should quit without a selection")
	}

	m = NewMenuModel(Env{}, testConfig())
	m, _ = updateMenu(t, m, keyMsg("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestMenuViewShowsPlayerAndBest(t *testing.T) {
	scores := &fakeScores{}
	//nolint:errcheck // In-memory store
	scores.RecordScore(apples.IDClassic, 12)

	m := NewMenuModel(Env{Scores: scores, Settings: NewMemorySettings("ann")}, testConfig())
	view := m.View()
	for _, want := range []string{"A P P L E", "Daily Seed", "Player: ann", "Best: 12"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(Env{}, testConfig())
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
