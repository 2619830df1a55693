package apples

// Snapshot captures the complete round state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Seed          int64
	State         string
	Score         int
	TimeRemaining int
	Remaining     int // Apples left on the board
	Board         [][]int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Seed:          g.session.Seed(),
		State:         g.session.State().String(),
		Score:         g.session.Score(),
		TimeRemaining: g.session.TimeRemaining(),
		Remaining:     g.session.Grid().Remaining(),
		Board:         g.session.Grid().Values(),
	}
}
