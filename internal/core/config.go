package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform loop (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int    // Current score
	Status   string // Game-specific status name (e.g. "playing")
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Ended is true only on the frame where the game transitioned into
	// its terminal state. Platforms use it to record a score exactly once.
	Ended bool
}
