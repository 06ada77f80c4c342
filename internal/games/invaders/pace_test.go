package invaders

import "testing"

func TestMoveIntervalBounds(t *testing.T) {
	if got := MoveInterval(72, 72); got != BaseMoveInterval {
		t.Errorf("full swarm interval = %v, expected %v", got, BaseMoveInterval)
	}
	if got := MoveInterval(0, 72); got != MinMoveInterval {
		t.Errorf("empty swarm interval = %v, expected %v", got, MinMoveInterval)
	}
	if got := MoveInterval(5, 0); got != MinMoveInterval {
		t.Errorf("zero total interval = %v, expected %v", got, MinMoveInterval)
	}
	if got := MoveInterval(100, 72); got != BaseMoveInterval {
		t.Errorf("alive above total should clamp, got %v", got)
	}
}

func TestMoveIntervalNonIncreasing(t *testing.T) {
	const total = 72
	prev := MoveInterval(total, total)

	for alive := total - 1; alive >= 0; alive-- {
		got := MoveInterval(alive, total)
		if got > prev {
			t.Errorf("interval grew from %v to %v at alive=%d", prev, got, alive)
		}
		if got < MinMoveInterval || got <= 0 {
			t.Errorf("interval %v at alive=%d is below the floor", got, alive)
		}
		prev = got
	}
}
