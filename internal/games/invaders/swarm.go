package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Swarm is the invader formation. All members move together on a shared
// clock, stepping sideways until one of them touches a side wall; that step
// is replaced by a one-row descent and a direction flip.
type Swarm struct {
	members   []core.Point
	total     int
	direction int
	elapsed   time.Duration
	skin      Skin
}

// NewSwarm creates the starting formation: every other column and row in the
// top part of the playfield, keeping two columns clear on each side.
func NewSwarm(skin Skin) *Swarm {
	var members []core.Point
	for y := 1; y < 9; y++ {
		for x := 2; x < core.Cols-2; x++ {
			if x%2 == 0 && y%2 == 0 {
				members = append(members, core.Point{X: x, Y: y})
			}
		}
	}
	return newSwarmAt(members, skin)
}

// NewSwarmAt creates a swarm from explicit member positions moving right.
func NewSwarmAt(members []core.Point, skin Skin) *Swarm {
	cp := make([]core.Point, len(members))
	copy(cp, members)
	return newSwarmAt(cp, skin)
}

func newSwarmAt(members []core.Point, skin Skin) *Swarm {
	return &Swarm{
		members:   members,
		total:     len(members),
		direction: 1,
		skin:      skin,
	}
}

// Len returns the number of living invaders.
func (s *Swarm) Len() int {
	return len(s.members)
}

// Total returns the formation size at creation.
func (s *Swarm) Total() int {
	return s.total
}

// Direction returns the horizontal step of the next sideways move (+1 or -1).
func (s *Swarm) Direction() int {
	return s.direction
}

// Members returns a copy of the living invader positions.
func (s *Swarm) Members() []core.Point {
	out := make([]core.Point, len(s.members))
	copy(out, s.members)
	return out
}

// Interval returns the current time between steps.
func (s *Swarm) Interval() time.Duration {
	return MoveInterval(len(s.members), s.total)
}

// Update accumulates delta and moves the swarm once the interval has passed.
// Returns true if the swarm moved this call.
func (s *Swarm) Update(delta time.Duration) bool {
	if len(s.members) == 0 {
		return false
	}

	s.elapsed += delta
	if s.elapsed < s.Interval() {
		return false
	}
	s.elapsed = 0

	if s.atWall() {
		s.direction = -s.direction
		for i := range s.members {
			s.members[i].Y++
		}
		return true
	}

	for i := range s.members {
		s.members[i].X += s.direction
	}
	return true
}

// atWall reports whether a member touches the wall the swarm is heading to.
func (s *Swarm) atWall() bool {
	for _, m := range s.members {
		if s.direction > 0 && m.X >= core.Cols-1 {
			return true
		}
		if s.direction < 0 && m.X <= 0 {
			return true
		}
	}
	return false
}

// KillAt removes the invader at (x, y). Returns false if there is none.
func (s *Swarm) KillAt(x, y int) bool {
	for i, m := range s.members {
		if m.X == x && m.Y == y {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// Destroyed reports whether every invader has been killed.
func (s *Swarm) Destroyed() bool {
	return len(s.members) == 0
}

// ReachedBottom reports whether any invader has reached the player row.
func (s *Swarm) ReachedBottom() bool {
	for _, m := range s.members {
		if m.Y >= core.Rows-1 {
			return true
		}
	}
	return false
}

// Draw stamps every invader. The glyph flips halfway through each interval.
func (s *Swarm) Draw(f *core.Frame) {
	glyph := s.skin.Invader[1]
	if s.Interval()-s.elapsed > s.Interval()/2 {
		glyph = s.skin.Invader[0]
	}
	for _, m := range s.members {
		f.Set(m.X, m.Y, glyph)
	}
}
