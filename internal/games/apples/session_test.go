package apples

import (
	"errors"
	"testing"
	"time"
)

type submission struct {
	score int
	name  string
}

type fakeSubmitter struct {
	calls []submission
}

func (f *fakeSubmitter) SubmitScore(score int, playerName string) {
	f.calls = append(f.calls, submission{score: score, name: playerName})
}

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func newRunningSession(t *testing.T, opts Options) (*Session, *recorder) {
	t.Helper()
	if opts.Seed == 0 && !opts.Daily {
		opts.Seed = 12345
	}
	s := NewSession(opts)
	rec := &recorder{}
	s.Subscribe(rec.listen)
	s.Start()
	return s, rec
}

func runOut(t *testing.T, s *Session) {
	t.Helper()
	for s.IsActive() {
		if err := s.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}
}

func TestSessionStartsReady(t *testing.T) {
	s := NewSession(Options{Seed: 1})

	if s.State() != StateReady {
		t.Fatalf("State() = %v, expected ready", s.State())
	}
	if s.IsActive() {
		t.Error("a ready session should not be active")
	}
	if s.TimeRemaining() != DefaultRoundSeconds {
		t.Errorf("TimeRemaining() = %d, expected %d", s.TimeRemaining(), DefaultRoundSeconds)
	}
	if err := s.Tick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Tick() before Start error = %v, expected ErrInvalidState", err)
	}
	if _, err := s.Select(RectFrom(Coord{0, 0}, Coord{0, 1})); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Select() before Start error = %v, expected ErrInvalidState", err)
	}
}

func TestSessionStart(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 77})

	if s.State() != StateRunning || s.Score() != 0 || s.TimeRemaining() != 120 {
		t.Fatalf("after Start: state %v score %d time %d", s.State(), s.Score(), s.TimeRemaining())
	}
	if s.Grid().Remaining() != 170 {
		t.Errorf("Remaining() = %d, expected a full 10x17 board", s.Grid().Remaining())
	}
	if s.PlayerName() != "Anonymous" {
		t.Errorf("PlayerName() = %q, expected Anonymous", s.PlayerName())
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected one event, got %d", len(rec.events))
	}
	started, ok := rec.events[0].(RoundStartedEvent)
	if !ok {
		t.Fatalf("first event = %T, expected RoundStartedEvent", rec.events[0])
	}
	if started.Seed != 77 || started.InitialTime != 120 {
		t.Errorf("RoundStartedEvent = %+v", started)
	}
}

func TestSessionSuccessfulSelection(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 2024})
	setCell(s.grid, 5, 3, 4)
	setCell(s.grid, 5, 4, 6)
	before := s.Grid().Sum()

	res, err := s.Select(RectFrom(Coord{5, 4}, Coord{5, 3}))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !res.Valid || res.Sum != 10 || len(res.Cells) != 2 {
		t.Fatalf("Result = %+v, expected a valid pair", res)
	}

	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", s.Score())
	}
	for _, c := range []Coord{{5, 3}, {5, 4}} {
		v, _ := s.Grid().ValueAt(c.Row, c.Col)
		if v != 0 {
			t.Errorf("cell %v = %d after pick, expected 0", c, v)
		}
	}
	if s.Grid().Sum() != before-10 {
		t.Errorf("board sum = %d, expected %d", s.Grid().Sum(), before-10)
	}

	last, ok := rec.events[len(rec.events)-1].(SelectionSucceededEvent)
	if !ok {
		t.Fatalf("last event = %T, expected SelectionSucceededEvent", rec.events[len(rec.events)-1])
	}
	if last.Gained != 2 || last.Score != 2 || len(last.Cells) != 2 {
		t.Errorf("SelectionSucceededEvent = %+v", last)
	}
}

func TestSessionFailedSelection(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 2024})
	setCell(s.grid, 0, 0, 3)
	setCell(s.grid, 0, 1, 4)
	board := s.Grid().Values()

	res, err := s.Select(RectFrom(Coord{0, 0}, Coord{0, 1}))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if res.Valid || res.Sum != 7 {
		t.Errorf("Result = %+v, expected invalid sum 7", res)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}

	after := s.Grid().Values()
	for r := range board {
		for c := range board[r] {
			if board[r][c] != after[r][c] {
				t.Fatalf("cell (%d, %d) changed on a failed selection", r, c)
			}
		}
	}

	failed, ok := rec.events[len(rec.events)-1].(SelectionFailedEvent)
	if !ok || failed.Sum != 7 {
		t.Errorf("last event = %+v, expected SelectionFailedEvent with sum 7", rec.events[len(rec.events)-1])
	}
}

func TestSessionDegenerateSelections(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 9})

	res, err := s.Select(NoSelection)
	if err != nil {
		t.Fatalf("Select(NoSelection) failed: %v", err)
	}
	if res.Valid {
		t.Error("empty selection should never be valid")
	}
	if _, ok := rec.events[len(rec.events)-1].(SelectionFailedEvent); !ok {
		t.Errorf("empty selection should emit SelectionFailedEvent, got %T", rec.events[len(rec.events)-1])
	}

	outside := Rect{MinRow: 15, MaxRow: 17, MinCol: 0, MaxCol: 0}
	if _, err := s.Select(outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Select(outside) error = %v, expected ErrOutOfBounds", err)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d after degenerate selections", s.Score())
	}
}

func TestSessionCountdown(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 5})

	for i := 0; i < 119; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick %d failed: %v", i+1, err)
		}
	}
	if s.State() != StateRunning || s.TimeRemaining() != 1 {
		t.Fatalf("after 119 ticks: state %v time %d", s.State(), s.TimeRemaining())
	}

	if err := s.Tick(); err != nil {
		t.Fatalf("final tick failed: %v", err)
	}
	if s.State() != StateEnded || s.TimeRemaining() != 0 {
		t.Fatalf("after 120 ticks: state %v time %d", s.State(), s.TimeRemaining())
	}

	ticks := rec.count(func(ev Event) bool { _, ok := ev.(TimeChangedEvent); return ok })
	if ticks != 120 {
		t.Errorf("TimeChangedEvent count = %d, expected 120", ticks)
	}
	ended := rec.count(func(ev Event) bool { _, ok := ev.(RoundEndedEvent); return ok })
	if ended != 1 {
		t.Errorf("RoundEndedEvent count = %d, expected 1", ended)
	}

	if err := s.Tick(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Tick() after end error = %v, expected ErrInvalidState", err)
	}
	if _, err := s.Select(RectFrom(Coord{0, 0}, Coord{0, 1})); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Select() after end error = %v, expected ErrInvalidState", err)
	}
}

func TestSessionNoSubmissionForZeroScore(t *testing.T) {
	sub := &fakeSubmitter{}
	s, rec := newRunningSession(t, Options{Seed: 5, Submitter: sub})

	runOut(t, s)

	if len(sub.calls) != 0 {
		t.Errorf("submitter called %d times for a zero score", len(sub.calls))
	}
	ev := rec.events[len(rec.events)-1].(RoundEndedEvent)
	if ev.FinalScore != 0 || ev.Submitted {
		t.Errorf("RoundEndedEvent = %+v", ev)
	}
}

func TestSessionSubmitsPositiveScoreOnce(t *testing.T) {
	sub := &fakeSubmitter{}
	s, rec := newRunningSession(t, Options{Seed: 31, Submitter: sub})

	// One five-apple pick and five pairs: 15 points.
	for col := 0; col < 10; col++ {
		v := 0
		if col < 5 {
			v = 2
		}
		setCell(s.grid, 0, col, v)
	}
	for row := 1; row <= 5; row++ {
		setCell(s.grid, row, 0, 5)
		setCell(s.grid, row, 1, 5)
	}

	if _, err := s.Select(RectFrom(Coord{0, 0}, Coord{0, 9})); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	for row := 1; row <= 5; row++ {
		if _, err := s.Select(RectFrom(Coord{row, 0}, Coord{row, 1})); err != nil {
			t.Fatalf("Select row %d failed: %v", row, err)
		}
	}
	if s.Score() != 15 {
		t.Fatalf("Score() = %d, expected 15", s.Score())
	}

	runOut(t, s)

	if len(sub.calls) != 1 {
		t.Fatalf("submitter called %d times, expected once", len(sub.calls))
	}
	if sub.calls[0] != (submission{score: 15, name: "Anonymous"}) {
		t.Errorf("submitted %+v, expected 15 for Anonymous", sub.calls[0])
	}
	ev := rec.events[len(rec.events)-1].(RoundEndedEvent)
	if ev.FinalScore != 15 || !ev.Submitted {
		t.Errorf("RoundEndedEvent = %+v", ev)
	}

	// Further ticks are rejected and never resubmit
	_ = s.Tick()
	if len(sub.calls) != 1 {
		t.Errorf("submitter called again after the round ended")
	}
}

func TestSessionScoreMatchesPickedApples(t *testing.T) {
	s, rec := newRunningSession(t, Options{Seed: 8})
	startSum := s.Grid().Sum()
	startCount := s.Grid().Remaining()

	// Try every rectangle up to 3x3 once, in order
	for row := 0; row < s.Grid().Height(); row++ {
		for col := 0; col < s.Grid().Width(); col++ {
			for h := 0; h < 3; h++ {
				for w := 0; w < 3; w++ {
					if row+h >= s.Grid().Height() || col+w >= s.Grid().Width() {
						continue
					}
					r := RectFrom(Coord{row, col}, Coord{row + h, col + w})
					if _, err := s.Select(r); err != nil {
						t.Fatalf("Select(%+v) failed: %v", r, err)
					}
				}
			}
		}
	}

	picks := rec.count(func(ev Event) bool { _, ok := ev.(SelectionSucceededEvent); return ok })
	if picks == 0 {
		t.Fatal("expected at least one successful pick on a full board")
	}

	picked := startCount - s.Grid().Remaining()
	if s.Score() != picked {
		t.Errorf("Score() = %d, expected one point per picked apple (%d)", s.Score(), picked)
	}
	if lost := startSum - s.Grid().Sum(); lost != 10*picks {
		t.Errorf("board lost %d over %d picks, expected %d", lost, picks, 10*picks)
	}
}

func TestSessionRestart(t *testing.T) {
	s, _ := newRunningSession(t, Options{Seed: 4})
	setCell(s.grid, 0, 0, 1)
	setCell(s.grid, 0, 1, 9)
	if _, err := s.Select(RectFrom(Coord{0, 0}, Coord{0, 1})); err != nil {
		t.Fatal(err)
	}
	runOut(t, s)

	s.Reset()

	if s.State() != StateRunning || s.Score() != 0 || s.TimeRemaining() != 120 {
		t.Errorf("after Reset: state %v score %d time %d", s.State(), s.Score(), s.TimeRemaining())
	}
	if s.Grid().Remaining() != 170 {
		t.Errorf("Reset did not refill the board, %d apples left", s.Grid().Remaining())
	}
}

func TestSessionProgress(t *testing.T) {
	s, _ := newRunningSession(t, Options{Seed: 3, RoundSeconds: 4})

	want := []float64{1, 0.75, 0.5, 0.25, 0}
	for i, w := range want {
		if got := s.Progress(); got != w {
			t.Errorf("step %d: Progress() = %v, expected %v", i, got, w)
		}
		if s.IsActive() {
			_ = s.Tick()
		}
	}
}

func TestSessionDailySeed(t *testing.T) {
	day := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)
	now := func() time.Time { return day }

	a, _ := newRunningSession(t, Options{Daily: true, Now: now})
	b, _ := newRunningSession(t, Options{Daily: true, Now: now, Seed: 999})

	if a.Seed() != 20261019 {
		t.Errorf("Seed() = %d, expected 20261019", a.Seed())
	}
	if a.Seed() != b.Seed() {
		t.Errorf("daily seeds differ: %d vs %d", a.Seed(), b.Seed())
	}
	av, bv := a.Grid().Values(), b.Grid().Values()
	for r := range av {
		for c := range av[r] {
			if av[r][c] != bv[r][c] {
				t.Fatalf("daily boards differ at (%d, %d)", r, c)
			}
		}
	}
}

func TestDailySeedUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	local := time.Date(2026, 1, 2, 5, 0, 0, 0, loc) // still Jan 1 in UTC

	if got := DailySeed(local); got != 20260101 {
		t.Errorf("DailySeed() = %d, expected 20260101", got)
	}
}
