// Package leaderboard is the client side of the global score service:
// the entry wire type, an HTTP client and rank lookup.
package leaderboard

import (
	"math"
	"sort"
	"time"
)

// Entry is one score on the global leaderboard.
type Entry struct {
	PlayerName string  `json:"playerName"`
	Score      int     `json:"score"`
	Timestamp  float64 `json:"timestamp"` // Unix seconds, fractional
}

// NewEntry creates an entry stamped with t.
func NewEntry(playerName string, score int, t time.Time) Entry {
	return Entry{
		PlayerName: playerName,
		Score:      score,
		Timestamp:  UnixSeconds(t),
	}
}

// UnixSeconds converts t to the wire timestamp format.
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

// Time returns the entry timestamp.
func (e Entry) Time() time.Time {
	sec, frac := math.Modf(e.Timestamp)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// SortEntries orders entries by score, highest first. Ties keep the earlier
// submission ahead.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
