package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use it to adapt to screen size and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 45,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool // No lives left, or the round was won
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
