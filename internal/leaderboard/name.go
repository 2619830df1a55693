package leaderboard

import (
	"strings"

	"github.com/vovakirdan/apple-picking/internal/core"
)

// MaxNameLen bounds player names shown on the leaderboard.
const MaxNameLen = 20

// NormalizeName trims whitespace, bounds the length and falls back to the
// default player name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.DefaultPlayerName
	}
	if r := []rune(name); len(r) > MaxNameLen {
		name = strings.TrimSpace(string(r[:MaxNameLen]))
	}
	return name
}
