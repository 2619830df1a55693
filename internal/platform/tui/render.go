package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/apple-picking/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorApple:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorLeaf:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorCleared:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorSelection: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("28")).Bold(true),
	core.ColorCursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorFlash:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTimer:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorTimerLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
