package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// Setting keys.
const (
	KeyHighScore       = "highScore"
	KeyPlayerName      = "playerName"
	KeyBackgroundMusic = "backgroundMusicEnabled"
	KeyVibration       = "vibrationEnabled"
)

// Settings are the player's persisted preferences.
type Settings struct {
	PlayerName      string
	BackgroundMusic bool
	Vibration       bool // Selection flashes in the terminal
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		PlayerName:      core.DefaultPlayerName,
		BackgroundMusic: true,
		Vibration:       true,
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func getValue(q querier, key string) (string, bool, error) {
	var v string
	err := q.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return v, true, nil
}

func setValue(q querier, key, value string) error {
	_, err := q.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

func getInt(q querier, key string, fallback int) (int, error) {
	v, ok, err := getValue(q, key)
	if err != nil || !ok {
		return fallback, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

func getBool(q querier, key string, fallback bool) (bool, error) {
	v, ok, err := getValue(q, key)
	if err != nil || !ok {
		return fallback, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, nil
	}
	return b, nil
}

// LoadSettings returns the stored settings, with defaults for anything unset.
func (s *Store) LoadSettings() (Settings, error) {
	def := DefaultSettings()

	name, err := s.PlayerName()
	if err != nil {
		return def, err
	}
	music, err := getBool(s.db, KeyBackgroundMusic, def.BackgroundMusic)
	if err != nil {
		return def, err
	}
	vibration, err := getBool(s.db, KeyVibration, def.Vibration)
	if err != nil {
		return def, err
	}

	return Settings{
		PlayerName:      name,
		BackgroundMusic: music,
		Vibration:       vibration,
	}, nil
}

// SaveSettings persists all settings.
func (s *Store) SaveSettings(st Settings) error {
	if err := s.SetPlayerName(st.PlayerName); err != nil {
		return err
	}
	if err := setValue(s.db, KeyBackgroundMusic, strconv.FormatBool(st.BackgroundMusic)); err != nil {
		return err
	}
	return setValue(s.db, KeyVibration, strconv.FormatBool(st.Vibration))
}

// PlayerName returns the stored name, or the default when unset.
func (s *Store) PlayerName() (string, error) {
	v, ok, err := getValue(s.db, KeyPlayerName)
	if err != nil {
		return core.DefaultPlayerName, err
	}
	if !ok || v == "" {
		return core.DefaultPlayerName, nil
	}
	return v, nil
}

// SetPlayerName stores a new name. Blank names reset to the default.
func (s *Store) SetPlayerName(name string) error {
	return setValue(s.db, KeyPlayerName, leaderboard.NormalizeName(name))
}
