package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing status of a running game.
// Returned by Game.State() after every tick.
type GameState struct {
	Grid         string // Board size key ("4x4"), used for result storage
	Moves        int    // Completed two-card selections so far
	MatchedPairs int    // Pairs solved so far
	TotalPairs   int    // Pairs on the current board
	ElapsedTicks uint64 // Ticks the board has been running (excludes pauses)
	Won          bool   // All pairs matched
	GameOver     bool   // Session finished
	Paused       bool   // Paused or waiting (e.g. terminal too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
