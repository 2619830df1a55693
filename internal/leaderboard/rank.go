package leaderboard

import "github.com/samber/lo"

// Rank returns the 1-based position of the first entry matching both the
// player name and the score. Entries must already be sorted.
func Rank(entries []Entry, playerName string, score int) (int, bool) {
	_, idx, ok := lo.FindIndexOf(entries, func(e Entry) bool {
		return e.PlayerName == playerName && e.Score == score
	})
	if !ok {
		return 0, false
	}
	return idx + 1, true
}
