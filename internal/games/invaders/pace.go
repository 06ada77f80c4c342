package invaders

import "time"

// Swarm pacing. The interval between swarm steps shrinks linearly with the
// fraction of invaders destroyed, from BaseMoveInterval with a full swarm down
// to MinMoveInterval with none left.
const (
	BaseMoveInterval = 2 * time.Second
	MinMoveInterval  = 250 * time.Millisecond
)

// MoveInterval returns the swarm step interval for the given alive count.
// It is non-increasing as alive shrinks and never drops below MinMoveInterval.
func MoveInterval(alive, total int) time.Duration {
	if total <= 0 || alive <= 0 {
		return MinMoveInterval
	}
	if alive > total {
		alive = total
	}

	span := BaseMoveInterval - MinMoveInterval
	return MinMoveInterval + span*time.Duration(alive)/time.Duration(total)
}
