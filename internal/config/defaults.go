package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/apples.yaml
var defaultAppYAML []byte

// DefaultAppConfig returns the default configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Game: GameConfig{
			Width:        10,
			Height:       17,
			RoundSeconds: 120,
			FPS:          30,
		},
		Leaderboard: LeaderboardConfig{
			URL:     "",
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			RateLimitRPS:   5,
			RateLimitBurst: 10,
			DefaultLimit:   100,
			MaxLimit:       500,
			ShutdownGrace:  5 * time.Second,
		},
		SSH: SSHConfig{
			Addr:        ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Storage: StorageConfig{
			Path: "~/.applepick/apples.db",
		},
	}
}
