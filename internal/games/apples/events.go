package apples

// Event is something a Session reports to its listeners.
// Presentation layers subscribe to drive animation, sound and haptics.
type Event interface {
	sessionEvent()
}

// RoundStartedEvent is sent when a fresh round begins.
type RoundStartedEvent struct {
	Seed        int64 // Seed the grid was filled from
	InitialTime int
}

func (RoundStartedEvent) sessionEvent() {}

// SelectionSucceededEvent is sent after a selection summing to ten was picked.
type SelectionSucceededEvent struct {
	Rect   Rect
	Cells  []Coord // Picked cells, row-major
	Gained int
	Score  int // Score after the pick
}

func (SelectionSucceededEvent) sessionEvent() {}

// SelectionFailedEvent is sent when a selection did not sum to ten.
type SelectionFailedEvent struct {
	Rect Rect
	Sum  int
}

func (SelectionFailedEvent) sessionEvent() {}

// TimeChangedEvent is sent after each countdown tick.
type TimeChangedEvent struct {
	Remaining int
	Progress  float64 // Remaining / initial, in [0, 1]
}

func (TimeChangedEvent) sessionEvent() {}

// RoundEndedEvent is sent once when the countdown reaches zero.
type RoundEndedEvent struct {
	FinalScore int
	Submitted  bool // Whether the score went to the leaderboard
}

func (RoundEndedEvent) sessionEvent() {}

// Listener receives session events synchronously, on the caller's thread.
// Listeners must not call back into the session.
type Listener func(Event)
