package invaders

import "time"

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Score     int
	PlayerX   int
	Shots     int
	Invaders  int
	Direction int
	Interval  time.Duration
	Outcome   Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.state.Score,
		PlayerX:   g.player.x,
		Shots:     len(g.player.shots),
		Invaders:  g.swarm.Len(),
		Direction: g.swarm.direction,
		Interval:  g.swarm.Interval(),
		Outcome:   g.outcome,
	}
}
