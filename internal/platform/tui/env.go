package tui

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
	"github.com/vovakirdan/apple-picking/internal/storage"
)

// ScoreStore keeps the local top-10 list.
type ScoreStore interface {
	RecordScore(gameID string, score int) (bool, error)
	HighScores() ([]storage.ScoreEntry, error)
	HighScore() (int, error)
}

// SettingsStore loads and saves player preferences.
type SettingsStore interface {
	LoadSettings() (storage.Settings, error)
	SaveSettings(st storage.Settings) error
}

// Leaderboard is the remote score service.
type Leaderboard interface {
	SubmitScore(ctx context.Context, playerName string, score int) error
	FetchTopEntries(ctx context.Context) ([]leaderboard.Entry, error)
}

// Env bundles what the screens need from outside the game.
// Any field may be nil: a nil Scores disables the local list, a nil Board
// means offline play.
type Env struct {
	Scores   ScoreStore
	Settings SettingsStore
	Board    Leaderboard
	Timeout  time.Duration // Upper bound for one leaderboard call
}

// NewEnv wires a SQLite store and a leaderboard client into an Env.
// Either argument may be nil.
func NewEnv(store *storage.Store, client *leaderboard.Client) Env {
	var env Env
	if store != nil {
		env.Scores = store
		env.Settings = store
	}
	if client != nil {
		env.Board = client
	}
	return env
}

func (e Env) timeout() time.Duration {
	if e.Timeout <= 0 {
		return leaderboard.DefaultTimeout
	}
	return e.Timeout
}

// settings returns the stored preferences, or defaults when there are none.
func (e Env) settings() storage.Settings {
	if e.Settings == nil {
		return storage.DefaultSettings()
	}
	st, err := e.Settings.LoadSettings()
	if err != nil {
		return storage.DefaultSettings()
	}
	return st
}

// MemorySettings is a SettingsStore that lives as long as one connection.
type MemorySettings struct {
	mu sync.Mutex
	st storage.Settings
}

// NewMemorySettings returns default settings under the given player name.
func NewMemorySettings(playerName string) *MemorySettings {
	st := storage.DefaultSettings()
	st.PlayerName = leaderboard.NormalizeName(playerName)
	return &MemorySettings{st: st}
}

// LoadSettings returns the current settings.
func (s *MemorySettings) LoadSettings() (storage.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st, nil
}

// SaveSettings replaces the current settings.
func (s *MemorySettings) SaveSettings(st storage.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.PlayerName = leaderboard.NormalizeName(st.PlayerName)
	s.st = st
	return nil
}
