package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and timing.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Cumulative score for the run
	Lives    int  // Remaining lives
	Level    int  // Current level, 1-indexed for display
	GameOver bool // Whether the run has ended (game over or victory)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
