package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/apple-picking/internal/config"
	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/leaderboard"
	"github.com/vovakirdan/apple-picking/internal/platform/tui"
	"github.com/vovakirdan/apple-picking/internal/storage"
)

// loadConfig reads the app config and applies the global flags on top.
func loadConfig() config.AppConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return applyFlags(cfg)
}

func applyFlags(cfg config.AppConfig) config.AppConfig {
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}
	if flagLeaderboardURL != "" {
		cfg.Leaderboard.URL = flagLeaderboardURL
	}
	if flagOffline {
		cfg.Leaderboard.URL = ""
	}
	return cfg
}

// runtimeConfig builds the per-round config for a screen of the given size.
func runtimeConfig(cfg config.AppConfig, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = flagSeed
	if cfg.Game.FPS > 0 {
		rc.TickRate = cfg.Game.FPS
	}
	if cfg.Game.Width > 0 {
		rc.GridW = cfg.Game.Width
	}
	if cfg.Game.Height > 0 {
		rc.GridH = cfg.Game.Height
	}
	if cfg.Game.RoundSeconds > 0 {
		rc.RoundSeconds = cfg.Game.RoundSeconds
	}
	return rc
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the local database, warning and continuing without it on
// failure.
func openStore(cfg config.AppConfig) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// newClient returns a leaderboard client, or nil when playing offline.
func newClient(cfg config.AppConfig) *leaderboard.Client {
	if !cfg.Leaderboard.Enabled() {
		return nil
	}
	return leaderboard.NewClient(cfg.Leaderboard.URL, leaderboard.WithTimeout(cfg.Leaderboard.Timeout))
}

// newEnv opens everything the interactive screens need. The returned func
// releases it.
func newEnv(cfg config.AppConfig) (tui.Env, func()) {
	store := openStore(cfg)
	env := tui.NewEnv(store, newClient(cfg))
	env.Timeout = cfg.Leaderboard.Timeout
	return env, func() {
		if store != nil {
			store.Close()
		}
	}
}

// mustOpenStore opens the local database or exits.
func mustOpenStore(cfg config.AppConfig) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
