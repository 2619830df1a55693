// Package config provides YAML-based application configuration with
// environment overrides.
package config

import "time"

// AppConfig contains all configuration for apple picking.
type AppConfig struct {
	Game        GameConfig        `yaml:"game"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Server      ServerConfig      `yaml:"server"`
	SSH         SSHConfig         `yaml:"ssh"`
	Storage     StorageConfig     `yaml:"storage"`
}

// GameConfig defines the board and the round.
type GameConfig struct {
	Width        int `yaml:"width"`         // Grid columns
	Height       int `yaml:"height"`        // Grid rows
	RoundSeconds int `yaml:"round_seconds"` // Countdown length
	FPS          int `yaml:"fps"`           // Frames per second of the terminal loop
}

// LeaderboardConfig points the client at the remote leaderboard.
type LeaderboardConfig struct {
	URL     string        `yaml:"url"`     // Base URL; empty disables the global board
	Timeout time.Duration `yaml:"timeout"` // Per-request timeout
}

// Enabled reports whether a remote leaderboard is configured.
func (c LeaderboardConfig) Enabled() bool {
	return c.URL != ""
}

// ServerConfig defines the HTTP leaderboard service.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RateLimitRPS   int           `yaml:"rate_limit_rps"`   // Score submissions per second per client
	RateLimitBurst int           `yaml:"rate_limit_burst"` // Burst allowance per client
	DefaultLimit   int           `yaml:"default_limit"`    // Entries returned by GET /scores
	MaxLimit       int           `yaml:"max_limit"`        // Upper bound for ?limit=
	ShutdownGrace  time.Duration `yaml:"shutdown_grace"`
}

// SSHConfig defines the SSH game server.
type SSHConfig struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key"` // Auto-generated when empty
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"`
}
