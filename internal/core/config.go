package core

// RuntimeConfig contains frontend parameters passed to a session at construction.
// The simulation uses it to size the viewport and seed the terrain RNG.
type RuntimeConfig struct {
	ScreenW     int     // Screen width in cells or pixels
	ScreenH     int     // Screen height in cells or pixels
	TickRate    int     // Frames per second (default 60)
	Seed        int64   // RNG seed for deterministic terrain
	PixelAspect float64 // Height/width ratio of one screen unit (terminal cells are ~2.0)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for a terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		Seed:        0, // 0 means use current time in platform layer
		PixelAspect: 2.0,
	}
}

// Aspect returns PixelAspect, defaulting to square units.
func (c RuntimeConfig) Aspect() float64 {
	if c.PixelAspect <= 0 {
		return 1.0
	}
	return c.PixelAspect
}

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Current score
	Stage    int  // Current difficulty stage (>= 1)
	GameOver bool // Whether the run has just ended
	Paused   bool // Whether the run is paused
	Cleared  bool // Whether the clear score was reached
}

// StepResult is returned by a simulation step.
type StepResult struct {
	State GameState
}
