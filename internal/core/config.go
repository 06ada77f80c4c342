package core

import "time"

// TickSleep caps the simulation rate at roughly 100 ticks per second.
const TickSleep = 10 * time.Millisecond

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickSleep time.Duration // Pause after each tick
	Seed      int64         // RNG seed for explosion cue selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickSleep: TickSleep,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score      int           // 10 points per invader destroyed
	ShotsFired int           // Successful Shoot calls
	Hits       int           // Invaders destroyed
	Remaining  int           // Invaders still alive
	Elapsed    time.Duration // Simulated time since start
	GameOver   bool          // Whether the game has ended
}

// Accuracy returns hits per shot fired in [0, 1].
func (s GameState) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// StepResult is returned by Game.Step after each simulation tick.
// Contains the updated game state and the cues triggered during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
