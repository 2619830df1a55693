package apples

import "time"

// DailySeed returns the seed shared by every player on t's UTC calendar day,
// encoded as YYYYMMDD so it is readable in logs and never zero.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}
