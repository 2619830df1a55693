// applepick is a terminal apple picking game: box in apples that add up to
// ten before the two minute timer runs out.
//
// Usage:
//
//	applepick list                 - List game modes
//	applepick play [classic|daily] - Play a round
//	applepick daily                - Play today's daily seed
//	applepick menu                 - Start the menu (play, scores, options)
//	applepick scores               - Show the local top 10
//	applepick leaderboard          - Show the global leaderboard
//	applepick name [new-name]      - Show or change the player name
//	applepick options              - Show or change preferences
//	applepick serve                - Start SSH server for remote play
//	applepick server               - Start the HTTP leaderboard service
//
// Global flags:
//
//	--config <path>          - Config file (default: search order)
//	--db <path>              - Database path (default: ~/.applepick/apples.db)
//	--fps <rate>             - Tick rate
//	--seed <value>           - RNG seed for reproducible boards (nonzero)
//	--leaderboard-url <url>  - Leaderboard service base URL
//	--offline                - Never contact the leaderboard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/apple-picking/internal/games/apples"
)

var (
	// Global flags
	flagConfig         string
	flagDBPath         string
	flagFPS            int
	flagSeed           int64
	flagLeaderboardURL string
	flagOffline        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "applepick",
	Short: "Apple Picking - a two minute number puzzle in your terminal",
	Long: `Apple Picking fills a 10x17 board with apples numbered 1 to 9.
Drag a box (or mark two corners with the keyboard) around apples that add up
to exactly 10 to pick them. Every picked apple scores a point.

Available commands:
  list         - Show game modes
  play         - Play a round directly
  daily        - Play today's board
  menu         - Interactive menu
  scores       - Local high scores
  leaderboard  - Global leaderboard
  name         - Player name
  options      - Preferences
  serve        - SSH server for remote play
  server       - HTTP leaderboard service

Examples:
  applepick play
  applepick daily
  applepick menu --leaderboard-url http://localhost:8080
  applepick server
  applepick serve --ssh :2222`,
}

func init() {
	// Global persistent flags; zero values defer to the config file
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for a reproducible board (0 is reserved: a new board every round)")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboardURL, "leaderboard-url", "", "Leaderboard service base URL")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Do not contact the leaderboard")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serverCmd)
}
