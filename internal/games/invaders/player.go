package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MaxShots is the number of shots that may be in flight at once.
const MaxShots = 1

// Player is the ship at the bottom row.
type Player struct {
	x, y   int
	shots  []Shot
	blasts []Blast
	skin   Skin
}

// NewPlayer creates a player centered on the bottom row.
func NewPlayer(skin Skin) *Player {
	return &Player{
		x:     core.Cols / 2,
		y:     core.Rows - 1,
		shots: make([]Shot, 0, MaxShots),
		skin:  skin,
	}
}

// Position returns the ship cell.
func (p *Player) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// Shots returns a copy of the shots in flight.
func (p *Player) Shots() []Shot {
	out := make([]Shot, len(p.shots))
	copy(out, p.shots)
	return out
}

// MoveLeft moves the ship one column left, stopping at the edge.
func (p *Player) MoveLeft() {
	p.x = core.Clamp(p.x-1, 0, core.Cols-1)
}

// MoveRight moves the ship one column right, stopping at the edge.
func (p *Player) MoveRight() {
	p.x = core.Clamp(p.x+1, 0, core.Cols-1)
}

// Shoot fires a shot from the ship position.
// Returns false without firing while the previous shot is still alive.
func (p *Player) Shoot() bool {
	if len(p.shots) >= MaxShots {
		return false
	}
	p.shots = append(p.shots, NewShot(p.x, p.y))
	return true
}

// Update advances shots and blasts by delta, dropping the ones that are done.
func (p *Player) Update(delta time.Duration) {
	shots := p.shots[:0]
	for _, s := range p.shots {
		if s.advance(delta) {
			shots = append(shots, s)
		}
	}
	p.shots = shots

	blasts := p.blasts[:0]
	for _, b := range p.blasts {
		if b.age(delta) {
			blasts = append(blasts, b)
		}
	}
	p.blasts = blasts
}

// DetectHits removes every shot that shares a cell with a living invader,
// together with that invader. Returns true if anything was hit.
func (p *Player) DetectHits(s *Swarm) bool {
	hit := false
	shots := p.shots[:0]
	for _, shot := range p.shots {
		if s.KillAt(shot.X, shot.Y) {
			hit = true
			p.blasts = append(p.blasts, newBlast(shot.X, shot.Y))
			continue
		}
		shots = append(shots, shot)
	}
	p.shots = shots
	return hit
}

// Draw stamps the ship, its shots and recent blasts onto the frame.
func (p *Player) Draw(f *core.Frame) {
	f.Set(p.x, p.y, p.skin.Player)
	for _, b := range p.blasts {
		f.Set(b.X, b.Y, p.skin.Blast)
	}
	for _, s := range p.shots {
		f.Set(s.X, s.Y, p.skin.Shot)
	}
}
