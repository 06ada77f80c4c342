package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestNewSwarmFormation(t *testing.T) {
	s := NewSwarm(DefaultSkin())

	if s.Len() != 72 {
		t.Errorf("formation size = %d, expected 72", s.Len())
	}
	if s.Direction() != 1 {
		t.Errorf("start direction = %d, expected 1", s.Direction())
	}
	if s.Interval() != BaseMoveInterval {
		t.Errorf("start interval = %v, expected %v", s.Interval(), BaseMoveInterval)
	}

	minX, maxX := core.Cols, -1
	for _, m := range s.Members() {
		if m.X%2 != 0 || m.Y%2 != 0 {
			t.Errorf("member %+v is not on an even cell", m)
		}
		if m.Y <= 0 || m.Y >= 9 {
			t.Errorf("member %+v outside the top band", m)
		}
		minX = min(minX, m.X)
		maxX = max(maxX, m.X)
	}
	// Two free columns on each side keep the formation centered
	if minX != 2 || maxX != core.Cols-4 {
		t.Errorf("formation spans x=[%d, %d], expected [2, %d]", minX, maxX, core.Cols-4)
	}
	if s.Destroyed() || s.ReachedBottom() {
		t.Error("fresh swarm should be neither destroyed nor at the bottom")
	}
}

func TestSwarmWaitsForInterval(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: 10, Y: 5}}, DefaultSkin())

	if s.Update(s.Interval() - time.Millisecond) {
		t.Fatal("swarm moved before the interval elapsed")
	}
	if s.Members()[0].X != 10 {
		t.Fatal("member moved without a step")
	}
	if !s.Update(time.Millisecond) {
		t.Fatal("swarm should move once the accumulated time reaches the interval")
	}
	if s.Update(time.Millisecond) {
		t.Error("accumulator should reset after a move")
	}
}

func TestSwarmStepsSideways(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: 10, Y: 5}, {X: 12, Y: 7}}, DefaultSkin())

	if !s.Update(s.Interval()) {
		t.Fatal("expected a move")
	}

	members := s.Members()
	if members[0] != (core.Point{X: 11, Y: 5}) || members[1] != (core.Point{X: 13, Y: 7}) {
		t.Errorf("sideways step produced %+v", members)
	}
	if s.Direction() != 1 {
		t.Errorf("direction changed to %d without touching a wall", s.Direction())
	}
}

func TestSwarmBouncesOffRightWall(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: core.Cols - 1, Y: 3}, {X: core.Cols - 5, Y: 5}}, DefaultSkin())

	if !s.Update(s.Interval()) {
		t.Fatal("expected a move")
	}
	if s.Direction() != -1 {
		t.Errorf("direction = %d after hitting the right wall, expected -1", s.Direction())
	}

	members := s.Members()
	if members[0] != (core.Point{X: core.Cols - 1, Y: 4}) {
		t.Errorf("wall member = %+v, expected one row down in place", members[0])
	}
	if members[1] != (core.Point{X: core.Cols - 5, Y: 6}) {
		t.Errorf("other member = %+v, expected one row down in place", members[1])
	}

	// Next step goes left again
	s.Update(s.Interval())
	if got := s.Members()[0]; got != (core.Point{X: core.Cols - 2, Y: 4}) {
		t.Errorf("after bounce member = %+v, expected a step left", got)
	}
}

func TestSwarmBouncesOffLeftWall(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: core.Cols - 1, Y: 3}, {X: 0, Y: 3}}, DefaultSkin())

	s.Update(s.Interval())
	if s.Direction() != -1 {
		t.Fatalf("direction = %d, expected -1 after the right wall", s.Direction())
	}

	s.Update(s.Interval())
	if s.Direction() != 1 {
		t.Errorf("direction = %d, expected 1 after the left wall", s.Direction())
	}
	for _, m := range s.Members() {
		if m.Y != 5 {
			t.Errorf("member %+v should have descended twice", m)
		}
	}
}

func TestSwarmDescentIsExactlyOneRowPerBounce(t *testing.T) {
	s := NewSwarm(DefaultSkin())
	startY := map[int]int{}
	for i, m := range s.Members() {
		startY[i] = m.Y
	}

	descents := 0
	for step := 0; step < 1000 && !s.ReachedBottom(); step++ {
		before := s.Members()
		dir := s.Direction()
		s.Update(s.Interval())
		after := s.Members()

		if s.Direction() != dir {
			descents++
			for i := range after {
				if after[i].Y != before[i].Y+1 || after[i].X != before[i].X {
					t.Fatalf("step %d: bounce moved %+v to %+v", step, before[i], after[i])
				}
			}
			continue
		}
		for i := range after {
			if after[i].Y != before[i].Y || after[i].X != before[i].X+dir {
				t.Fatalf("step %d: sideways step moved %+v to %+v", step, before[i], after[i])
			}
		}
	}

	if descents == 0 {
		t.Error("swarm never bounced")
	}
	if !s.ReachedBottom() {
		t.Error("an unopposed swarm should eventually reach the bottom")
	}
}

func TestSwarmIntervalShrinksAsMembersDie(t *testing.T) {
	s := NewSwarm(DefaultSkin())
	prev := s.Interval()

	for _, m := range s.Members() {
		if !s.KillAt(m.X, m.Y) {
			t.Fatalf("KillAt(%d, %d) found nothing", m.X, m.Y)
		}
		got := s.Interval()
		if got > prev {
			t.Fatalf("interval grew from %v to %v with %d alive", prev, got, s.Len())
		}
		prev = got
	}
	if prev != MinMoveInterval {
		t.Errorf("empty swarm interval = %v, expected %v", prev, MinMoveInterval)
	}
}

func TestSwarmDestroyedAfterAllHits(t *testing.T) {
	s := NewSwarm(DefaultSkin())
	n := s.Len()

	var elapsed time.Duration
	for i := 0; i < n; i++ {
		elapsed += 100 * time.Millisecond
		s.Update(elapsed)

		m := s.Members()[0]
		if !s.KillAt(m.X, m.Y) {
			t.Fatalf("hit %d missed", i)
		}
		if i < n-1 && s.Destroyed() {
			t.Fatalf("destroyed with %d invaders left", s.Len())
		}
	}

	if !s.Destroyed() {
		t.Error("swarm should be destroyed after every member is hit")
	}
	if s.Update(time.Hour) {
		t.Error("an empty swarm should not move")
	}
}

func TestSwarmKillAtMiss(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: 4, Y: 4}}, DefaultSkin())

	if s.KillAt(5, 4) {
		t.Error("KillAt on an empty cell should fail")
	}
	if s.Len() != 1 {
		t.Errorf("miss removed a member, %d left", s.Len())
	}
}

func TestSwarmReachedBottom(t *testing.T) {
	s := NewSwarmAt([]core.Point{{X: 4, Y: core.Rows - 2}}, DefaultSkin())
	if s.ReachedBottom() {
		t.Fatal("one row above the player is not the bottom")
	}

	s = NewSwarmAt([]core.Point{{X: 4, Y: 2}, {X: 6, Y: core.Rows - 1}}, DefaultSkin())
	if !s.ReachedBottom() {
		t.Error("a member on the player row should count as reaching the bottom")
	}
}

func TestSwarmDrawAnimates(t *testing.T) {
	skin := DefaultSkin()
	s := NewSwarmAt([]core.Point{{X: 4, Y: 4}}, skin)

	f := core.NewFrame()
	s.Draw(f)
	if f.Get(4, 4) != skin.Invader[0] {
		t.Errorf("early in the interval expected %+v, got %+v", skin.Invader[0], f.Get(4, 4))
	}

	s.Update(s.Interval() * 3 / 4)
	f = core.NewFrame()
	s.Draw(f)
	if f.Get(4, 4) != skin.Invader[1] {
		t.Errorf("late in the interval expected %+v, got %+v", skin.Invader[1], f.Get(4, 4))
	}
}
