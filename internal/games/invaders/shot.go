package invaders

import "time"

// Timing constants for projectiles and hit effects.
const (
	ShotStep      = 50 * time.Millisecond  // Time for a shot to climb one row
	BlastDuration = 250 * time.Millisecond // How long a hit stays visible
)

// Shot is a projectile fired by the player. It climbs one row per ShotStep.
type Shot struct {
	X, Y    int
	elapsed time.Duration
}

// NewShot creates a shot at the given position.
func NewShot(x, y int) Shot {
	return Shot{X: x, Y: y}
}

// advance moves the shot upward by as many rows as delta covers.
// Returns false once the shot has left the top of the playfield.
func (s *Shot) advance(delta time.Duration) bool {
	s.elapsed += delta
	for s.elapsed >= ShotStep {
		s.elapsed -= ShotStep
		s.Y--
		if s.Y < 0 {
			return false
		}
	}
	return true
}

// Blast marks the cell of a confirmed hit for a short time.
// It is purely visual and never collides.
type Blast struct {
	X, Y      int
	remaining time.Duration
}

func newBlast(x, y int) Blast {
	return Blast{X: x, Y: y, remaining: BlastDuration}
}

// age shortens the blast lifetime; returns false once it has expired.
func (b *Blast) age(delta time.Duration) bool {
	b.remaining -= delta
	return b.remaining > 0
}
