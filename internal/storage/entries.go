package storage

import (
	"fmt"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// SaveEntry stores a global leaderboard entry.
func (s *Store) SaveEntry(e leaderboard.Entry) error {
	_, err := s.db.Exec(
		"INSERT INTO leaderboard_entries (player_name, score, timestamp) VALUES (?, ?, ?)",
		e.PlayerName, e.Score, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save entry: %w", err)
	}
	return nil
}

// TopEntries returns up to limit global entries, highest score first.
// Equal scores keep the earlier submission ahead.
func (s *Store) TopEntries(limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(
		`SELECT player_name, score, timestamp
		 FROM leaderboard_entries
		 ORDER BY score DESC, timestamp ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]leaderboard.Entry, 0, limit)
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.PlayerName, &e.Score, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
