package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to an ANSI 256-color style.
type Color uint8

// Palette used by the apple field and its HUD.
const (
	ColorDefault   Color = iota
	ColorApple           // Occupied cell digit
	ColorLeaf            // Decorative leaf / title accents
	ColorCleared         // Picked (empty) cell marker
	ColorSelection       // Cells inside the active selection
	ColorCursor          // Keyboard cursor
	ColorFlash           // Rejected selection flash
	ColorHUD             // Score and labels
	ColorTimer           // Timer bar while plenty of time remains
	ColorTimerLow        // Timer bar in the last stretch
	ColorMuted           // Hints and secondary text
)
