package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/apple-picking/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "APPLE", core.ColorLeaf)
	s.DrawTextColored(6, 0, "9", core.ColorApple)
	s.DrawTextColored(0, 2, "Score 3", core.ColorHUD)

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d newlines, want 2", n)
	}
	for _, want := range []string{"APPLE", "9", "Score 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("unknown colors should fall back to default: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"abcd", 2, "abcd"},
		{"·", 3, " ·"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
