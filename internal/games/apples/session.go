package apples

import (
	"fmt"
	"time"

	"github.com/vovakirdan/apple-picking/internal/core"
)

// DefaultRoundSeconds is the countdown length when none is configured.
const DefaultRoundSeconds = 120

// State is the lifecycle stage of a round.
type State int

const (
	StateReady State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options configures a Session. Collaborators are injected here rather than
// looked up globally.
type Options struct {
	Width        int
	Height       int
	RoundSeconds int

	// Seed fills the grid deterministically; 0 is reserved for "unseeded"
	// and draws a new board from the clock on every round.
	// Ignored when Daily is set.
	Seed int64

	// Daily derives the seed from the current UTC date on every reset.
	Daily bool

	PlayerName string
	Submitter  core.ScoreSubmitter

	// Now overrides the clock used for daily seeds.
	Now func() time.Time
}

// Session runs rounds: countdown, scoring and grid mutation.
//
// A Session is not safe for concurrent use. The caller serializes ticks and
// selections; leaderboard results must be handed back on that same thread.
type Session struct {
	opts      Options
	grid      *Grid
	state     State
	score     int
	remaining int
	seed      int64
	listeners []Listener
}

// NewSession creates a session in the Ready state.
func NewSession(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.RoundSeconds <= 0 {
		opts.RoundSeconds = DefaultRoundSeconds
	}
	if opts.PlayerName == "" {
		opts.PlayerName = core.DefaultPlayerName
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Session{
		opts:      opts,
		grid:      &Grid{},
		state:     StateReady,
		remaining: opts.RoundSeconds,
	}
}

// Subscribe registers a listener for all future events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

// Start begins a fresh round from any state: the grid is refilled, the score
// zeroed and the countdown rewound.
func (s *Session) Start() {
	seed := s.opts.Seed
	if s.opts.Daily {
		seed = DailySeed(s.opts.Now())
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.seed = seed
	s.grid.Reset(s.opts.Width, s.opts.Height, seed)
	s.score = 0
	s.remaining = s.opts.RoundSeconds
	s.state = StateRunning

	s.emit(RoundStartedEvent{Seed: seed, InitialTime: s.opts.RoundSeconds})
}

// Reset abandons the current round and starts a new one.
func (s *Session) Reset() {
	s.Start()
}

// Tick advances the countdown by one second. The tick that reaches zero ends
// the round.
func (s *Session) Tick() error {
	if s.state != StateRunning {
		return fmt.Errorf("%w: tick while %s", ErrInvalidState, s.state)
	}

	s.remaining--
	s.emit(TimeChangedEvent{Remaining: s.remaining, Progress: s.Progress()})

	if s.remaining <= 0 {
		s.end()
	}
	return nil
}

// end finalizes the round and hands a positive score to the submitter once.
func (s *Session) end() {
	s.remaining = 0
	s.state = StateEnded

	submitted := false
	if s.score > 0 && s.opts.Submitter != nil {
		s.opts.Submitter.SubmitScore(s.score, s.opts.PlayerName)
		submitted = true
	}

	s.emit(RoundEndedEvent{FinalScore: s.score, Submitted: submitted})
}

// Select resolves a selection rectangle against the grid. A selection summing
// to ten picks its apples and scores one point per apple; anything else leaves
// the round untouched. An empty rectangle counts as a miss. A rectangle
// hanging off the grid is rejected with ErrOutOfBounds.
func (s *Session) Select(r Rect) (Result, error) {
	if s.state != StateRunning {
		return Result{}, fmt.Errorf("%w: select while %s", ErrInvalidState, s.state)
	}
	if !r.Empty() && !s.grid.ContainsRect(r) {
		return Result{}, fmt.Errorf("%w: rows %d..%d cols %d..%d", ErrOutOfBounds, r.MinRow, r.MaxRow, r.MinCol, r.MaxCol)
	}

	res := Evaluate(r, s.grid)
	if !res.Valid {
		s.emit(SelectionFailedEvent{Rect: r, Sum: res.Sum})
		return res, nil
	}

	for _, c := range res.Cells {
		// Coordinates come from Evaluate, so they are in bounds.
		_ = s.grid.Clear(c.Row, c.Col)
	}
	s.score += len(res.Cells)

	s.emit(SelectionSucceededEvent{
		Rect:   r,
		Cells:  res.Cells,
		Gained: len(res.Cells),
		Score:  s.score,
	})
	return res, nil
}

// Grid returns the live board. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// State returns the current lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// IsActive reports whether a round is running.
func (s *Session) IsActive() bool {
	return s.state == StateRunning
}

// Score returns the points earned this round.
func (s *Session) Score() int {
	return s.score
}

// TimeRemaining returns the seconds left on the countdown.
func (s *Session) TimeRemaining() int {
	return s.remaining
}

// InitialTime returns the countdown length of a round.
func (s *Session) InitialTime() int {
	return s.opts.RoundSeconds
}

// Progress returns the remaining fraction of the round for timer bars.
func (s *Session) Progress() float64 {
	return core.ClampF(float64(s.remaining)/float64(s.opts.RoundSeconds), 0, 1)
}

// Seed returns the seed the current grid was filled from.
func (s *Session) Seed() int64 {
	return s.seed
}

// PlayerName returns the name scores are submitted under.
func (s *Session) PlayerName() string {
	return s.opts.PlayerName
}
