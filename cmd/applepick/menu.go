package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apple-picking/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start in interactive menu mode: play, daily seed, high scores,
leaderboard and options. After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  applepick menu
  applepick menu --fps 60
  applepick menu --db ./apples.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	width, height := terminalSize()
	env, closeEnv := newEnv(cfg)

	err := tui.RunSession(env, runtimeConfig(cfg, width, height))
	closeEnv()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
