package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apple-picking/internal/games/apples"
	"github.com/vovakirdan/apple-picking/internal/platform/tui"
	"github.com/vovakirdan/apple-picking/internal/registry"
)

const playControls = `Controls:
  Mouse drag      - Box in apples; release to pick
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter     - Mark a corner, then the opposite corner to pick
  X               - Drop the marked corner
  P               - Pause
  R               - Play again (after time's up)
  U               - Retry a failed leaderboard submission
  B/Esc           - Leave (when paused or after time's up)
  Q/Ctrl+C        - Quit`

var playCmd = &cobra.Command{
	Use:   "play [classic|daily]",
	Short: "Play a round",
	Long: `Start a two minute round. Picked apples score one point each.

` + playControls + `

Examples:
  applepick play
  applepick play daily
  applepick play --seed 42
  applepick play --offline`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(apples.ModeClassic), string(apples.ModeDaily)},
	Run:       runPlay,
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play today's daily seed",
	Long: `Play the board every player gets today (UTC).

` + playControls,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		playGame(apples.IDDaily)
	},
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := apples.IDClassic
	if len(args) == 1 {
		switch apples.Mode(args[0]) {
		case apples.ModeClassic:
		case apples.ModeDaily:
			gameID = apples.IDDaily
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'applepick list' to see available modes.")
			os.Exit(1)
		}
	}
	playGame(gameID)
}

func playGame(gameID string) {
	cfg := loadConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	env, closeEnv := newEnv(cfg)

	runErr := tui.Run(game, env, runtimeConfig(cfg, width, height))

	// Close store before potential exit
	closeEnv()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
