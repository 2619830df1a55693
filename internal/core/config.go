package core

// ScoreSubmitter hands a finished round's score to a leaderboard.
// Implementations must return immediately; delivery and error reporting
// happen outside the game loop.
type ScoreSubmitter interface {
	SubmitScore(score int, playerName string)
}

// RuntimeConfig contains configuration passed to games at initialization.
// Everything a round needs from its surroundings arrives here, so games never
// read settings or collaborators from package state.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 30)
	Seed     int64 // RNG seed for the grid; 0 is reserved for time-based

	GridW        int    // Grid columns (default 10)
	GridH        int    // Grid rows (default 17)
	RoundSeconds int    // Countdown length (default 120)
	PlayerName   string // Name submitted to the leaderboard
	Feedback     bool   // Flash selections (the terminal stand-in for haptics)

	Submitter ScoreSubmitter // Optional; nil disables remote submission
}

// DefaultPlayerName is used when the player never picked a name.
const DefaultPlayerName = "Anonymous"

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     30,
		Seed:         0, // 0 means use current time
		GridW:        10,
		GridH:        17,
		RoundSeconds: 120,
		PlayerName:   DefaultPlayerName,
		Feedback:     true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the platform should treat the game as paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
