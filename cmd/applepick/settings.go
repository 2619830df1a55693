package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

var nameCmd = &cobra.Command{
	Use:   "name [new-name]",
	Short: "Show or change the player name",
	Long: fmt.Sprintf(`Show the name scores are submitted under, or set a new one.
Names are trimmed and cut to %d characters; an empty name resets to Anonymous.

Examples:
  applepick name
  applepick name "Ada"`, leaderboard.MaxNameLen),
	Args: cobra.MaximumNArgs(1),
	Run:  runName,
}

var (
	flagMusic     string
	flagVibration string
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show or change preferences",
	Long: `Show the stored preferences, or change them with flags.

Examples:
  applepick options
  applepick options --music off
  applepick options --vibration on`,
	Args: cobra.NoArgs,
	Run:  runOptions,
}

func init() {
	optionsCmd.Flags().StringVar(&flagMusic, "music", "", "Background music: on or off")
	optionsCmd.Flags().StringVar(&flagVibration, "vibration", "", "Selection feedback: on or off")
}

func runName(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if len(args) == 1 {
		if err := store.SetPlayerName(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving name: %v\n", err)
			return
		}
	}

	name, err := store.PlayerName()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading name: %v\n", err)
		return
	}
	fmt.Printf("Player name: %s\n", name)
}

func runOptions(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	st, err := store.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		return
	}

	changed := false
	if flagMusic != "" {
		v, ok := parseOnOff(flagMusic)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: --music must be on or off, got %q\n", flagMusic)
			return
		}
		st.BackgroundMusic = v
		changed = true
	}
	if flagVibration != "" {
		v, ok := parseOnOff(flagVibration)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: --vibration must be on or off, got %q\n", flagVibration)
			return
		}
		st.Vibration = v
		changed = true
	}

	if changed {
		if err := store.SaveSettings(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return
		}
	}

	best, _ := store.HighScore()

	fmt.Printf("  %-18s %s\n", "Player name:", st.PlayerName)
	fmt.Printf("  %-18s %s\n", "Background music:", onOff(st.BackgroundMusic))
	fmt.Printf("  %-18s %s\n", "Vibration:", onOff(st.Vibration))
	fmt.Printf("  %-18s %d\n", "High score:", best)
}

func parseOnOff(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, true
	case "off", "false", "no", "0":
		return false, true
	}
	return false, false
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
