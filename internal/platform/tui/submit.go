package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// submission is a finished round's score waiting to go to the leaderboard.
type submission struct {
	PlayerName string
	Score      int
}

// queueSubmitter collects scores handed over by a session during Step.
// The model drains it afterwards and turns each entry into a command, so the
// network call never runs inside the frame.
type queueSubmitter struct {
	mu      sync.Mutex
	pending []submission
}

func newQueueSubmitter() *queueSubmitter {
	return &queueSubmitter{}
}

// SubmitScore implements core.ScoreSubmitter.
func (q *queueSubmitter) SubmitScore(score int, playerName string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, submission{PlayerName: playerName, Score: score})
}

func (q *queueSubmitter) drain() []submission {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// scoreSubmittedMsg reports the outcome of a leaderboard submission.
// Round identifies which round the result belongs to; stale results are dropped.
type scoreSubmittedMsg struct {
	Round int64
	Sub   submission
	Err   error
}

// rankFetchedMsg carries the player's position on the global list.
type rankFetchedMsg struct {
	Round int64
	Rank  int
	Found bool
	Err   error
}

// entriesFetchedMsg carries the global list for the scoreboard.
type entriesFetchedMsg struct {
	Entries []leaderboard.Entry
	Err     error
}

func submitCmd(env Env, round int64, sub submission) tea.Cmd {
	board, timeout := env.Board, env.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := board.SubmitScore(ctx, sub.PlayerName, sub.Score)
		return scoreSubmittedMsg{Round: round, Sub: sub, Err: err}
	}
}

func fetchRankCmd(env Env, round int64, sub submission) tea.Cmd {
	board, timeout := env.Board, env.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		entries, err := board.FetchTopEntries(ctx)
		if err != nil {
			return rankFetchedMsg{Round: round, Err: err}
		}
		rank, found := leaderboard.Rank(entries, sub.PlayerName, sub.Score)
		return rankFetchedMsg{Round: round, Rank: rank, Found: found}
	}
}

func fetchEntriesCmd(env Env) tea.Cmd {
	board, timeout := env.Board, env.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		entries, err := board.FetchTopEntries(ctx)
		return entriesFetchedMsg{Entries: entries, Err: err}
	}
}
