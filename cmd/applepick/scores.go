package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apple-picking/internal/config"
	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local high scores",
	Long: `Display the local top 10. Classic and daily rounds share one list.

Examples:
  applepick scores
  applepick scores --db ./apples.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var flagLeaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the global leaderboard",
	Long: `Fetch the global leaderboard from the configured service.

Examples:
  applepick leaderboard --leaderboard-url http://localhost:8080
  applepick leaderboard --limit 20`,
	Args: cobra.NoArgs,
	Run:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&flagLeaderboardLimit, "limit", 20, "Number of entries to show (0 = all)")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	scores, err := store.HighScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'applepick play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		mode := "classic"
		if strings.HasSuffix(entry.GameID, "_daily") {
			mode = "daily"
		}
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, entry.Score, mode, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
}

func runLeaderboard(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	client := newClient(cfg)
	if client == nil {
		fmt.Fprintln(os.Stderr, "Error: no leaderboard configured")
		fmt.Fprintf(os.Stderr, "Set --leaderboard-url or %s.\n", config.EnvLeaderboardURL)
		os.Exit(1)
	}

	player := ""
	if store := openStore(cfg); store != nil {
		player, _ = store.PlayerName()
		store.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), leaderboard.DefaultTimeout)
	defer cancel()

	entries, err := client.FetchTopEntries(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching leaderboard: %v\n", err)
		return
	}

	fmt.Printf("Leaderboard - %s\n", client.BaseURL())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores submitted yet.")
		return
	}
	if flagLeaderboardLimit > 0 && len(entries) > flagLeaderboardLimit {
		entries = entries[:flagLeaderboardLimit]
	}

	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "Rank", leaderboard.MaxNameLen, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "----", leaderboard.MaxNameLen, "------", "-----", "----")

	for i, e := range entries {
		marker := ""
		if e.PlayerName == player {
			marker = "  <- you"
		}
		dateStr := e.Time().Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-6d  %s%s\n", i+1, leaderboard.MaxNameLen, e.PlayerName, e.Score, dateStr, marker)
	}
}
