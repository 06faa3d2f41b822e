package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their randomizer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the input/render loop (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the summary a game reports to the platform after every update.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 1
	Lines    int  // Total rows cleared
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each command batch or gravity tick.
//
// Interval is the fall interval in effect after the update. When
// IntervalChanged is set the platform must re-arm its gravity timer with it;
// a timer left running at the old interval would fire at a stale rate.
type StepResult struct {
	State           GameState
	Interval        time.Duration
	IntervalChanged bool
	Cleared         int // Rows cleared by a lock during this update
	Locked          bool
}
