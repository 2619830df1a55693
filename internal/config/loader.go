package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLeaderboardURL = "APPLEPICK_LEADERBOARD_URL"
	EnvDBPath         = "APPLEPICK_DB"
	EnvServerAddr     = "APPLEPICK_SERVER_ADDR"
	EnvPort           = "PORT"
	EnvRateLimitRPS   = "APPLEPICK_RATE_LIMIT_RPS"
	EnvRateLimitBurst = "APPLEPICK_RATE_LIMIT_BURST"
	EnvRequestTimeout = "APPLEPICK_LEADERBOARD_TIMEOUT"
)

// Load loads the application configuration and applies environment overrides.
// Search order: customPath -> ~/.applepick/configs/apples.yaml -> ./configs/apples.yaml -> embedded default
func Load(customPath string) (AppConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// A missing .env file is normal
	_ = godotenv.Load()
	ApplyEnv(&cfg)
	return cfg, nil
}

func loadFile(customPath string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("apples.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultAppConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "apples.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultAppConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAppYAML, &cfg); err != nil {
		return DefaultAppConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides configuration values from the environment.
// Malformed numbers keep the file value.
func ApplyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvLeaderboardURL); v != "" {
		cfg.Leaderboard.URL = v
	}
	cfg.Leaderboard.Timeout = getEnvDuration(EnvRequestTimeout, cfg.Leaderboard.Timeout)

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.Path = v
	}

	// PORT is what container platforms set; an explicit address wins
	if port := os.Getenv(EnvPort); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}

	cfg.Server.RateLimitRPS = getEnvInt(EnvRateLimitRPS, cfg.Server.RateLimitRPS)
	cfg.Server.RateLimitBurst = getEnvInt(EnvRateLimitBurst, cfg.Server.RateLimitBurst)
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return i
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".applepick", "configs", filename)
}
