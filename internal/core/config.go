package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 12)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the fixed simulation rate of the game loop.
const DefaultTickRate = 12

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score within this process
	GameOver  bool // Whether the round has ended
	Quit      bool // Whether the player asked to leave
}
