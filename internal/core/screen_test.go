package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '7', ColorApple)
	c := s.GetCell(3, 4)
	if c.Rune != '7' || c.Color != ColorApple {
		t.Errorf("GetCell(3, 4) = %+v, expected '7' in ColorApple", c)
	}

	// Out of bounds writes are dropped, reads return blank
	s.SetColored(-1, 0, 'A', ColorFlash)
	s.SetColored(0, 100, 'A', ColorFlash)
	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawTextColored(0, 2, "apple", ColorApple)

	s.Clear()

	if row := s.Row(2); row != "     " {
		t.Errorf("after Clear row 2 = %q, expected blanks", row)
	}
	if s.GetCell(0, 2).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score")

	if !strings.HasPrefix(s.Row(1)[2:], "Score") {
		t.Errorf("row 1 = %q, expected Score at x=2", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Time")
	if s.Get(18, 0) != 'T' || s.Get(19, 0) != 'i' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "●●●", ColorApple)

	// 3 runes centered in 11 columns start at x=4
	for x := 4; x < 7; x++ {
		if c := s.GetCell(x, 0); c.Rune != '●' || c.Color != ColorApple {
			t.Errorf("cell %d = %+v, expected apple rune", x, c)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorMuted)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '█', ColorTimer)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 1); c.Rune != '█' || c.Color != ColorTimer {
			t.Errorf("DrawHLine cell %d = %+v", x, c)
		}
	}
	if s.Get(7, 1) != ' ' {
		t.Error("DrawHLine drew past its length")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(4, 1)
	if s.Width() != 4 || s.Height() != 1 {
		t.Fatalf("after Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "    " {
		t.Errorf("Resize should leave a blank screen, got %q", got)
	}
}
