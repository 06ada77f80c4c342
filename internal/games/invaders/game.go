// Package invaders implements the invader-shooting game: a ship on the bottom
// row defends against a descending swarm.
package invaders

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PointsPerInvader is the score awarded for each invader destroyed.
const PointsPerInvader = 10

// Outcome describes how a game ended.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Still playing
	OutcomeVictory                // Every invader destroyed
	OutcomeDefeat                 // An invader reached the player row
	OutcomeQuit                   // The player left
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Cue returns the cue played once the game has ended this way.
func (o Outcome) Cue() core.Cue {
	if o == OutcomeVictory {
		return core.CueVictory
	}
	return core.CueGameOver
}

// Game ties the player and the swarm together for one round.
type Game struct {
	player  *Player
	swarm   *Swarm
	skin    Skin
	rng     *rand.Rand
	config  core.RuntimeConfig
	state   core.GameState
	outcome Outcome
	tick    uint64
}

// New creates a new game instance using the given glyphs.
func New(skin Skin) *Game {
	return &Game{skin: skin}
}

// Reset initializes or restarts the game with a fresh formation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.player = NewPlayer(g.skin)
	g.swarm = NewSwarm(g.skin)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = core.GameState{Remaining: g.swarm.Len()}
	g.outcome = OutcomeNone
	g.tick = 0
}

// Config returns the runtime configuration of the current round.
func (g *Game) Config() core.RuntimeConfig {
	return g.config
}

// Player returns the player ship.
func (g *Game) Player() *Player {
	return g.player
}

// Swarm returns the invader swarm.
func (g *Game) Swarm() *Swarm {
	return g.swarm
}

// Step advances the game by delta. Movement and shooting actions are applied
// in arrival order before anything else moves; quit is handled by the caller.
func (g *Game) Step(delta time.Duration, in core.InputFrame) core.StepResult {
	if g.outcome != OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.state.Elapsed += delta
	var cues []core.Cue

	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.player.MoveLeft()
		case core.ActionRight:
			g.player.MoveRight()
		case core.ActionShoot:
			if g.player.Shoot() {
				g.state.ShotsFired++
				cues = append(cues, core.CueShoot)
			}
		}
	}

	g.player.Update(delta)
	if g.swarm.Update(delta) {
		cues = append(cues, core.CueMove)
	}

	before := g.swarm.Len()
	if g.player.DetectHits(g.swarm) {
		cues = append(cues, g.explosionCue())
	}
	killed := before - g.swarm.Len()
	g.state.Hits += killed
	g.state.Score += killed * PointsPerInvader
	g.state.Remaining = g.swarm.Len()

	switch {
	case g.swarm.Destroyed():
		g.outcome = OutcomeVictory
	case g.swarm.ReachedBottom():
		g.outcome = OutcomeDefeat
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// explosionCue picks one of the two explosion sounds at random.
func (g *Game) explosionCue() core.Cue {
	if g.rng.Intn(2) == 0 {
		return core.CueExplosion1
	}
	return core.CueExplosion2
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	if g.outcome == OutcomeNone {
		g.outcome = OutcomeQuit
	}
}

// Outcome returns how the game ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Drawables returns the game objects in draw order. The swarm comes last, so
// an invader covers the ship when both occupy the same cell.
func (g *Game) Drawables() []core.Drawable {
	return []core.Drawable{g.player, g.swarm}
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Frame) {
	for _, d := range g.Drawables() {
		d.Draw(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.state
	s.GameOver = g.outcome != OutcomeNone
	return s
}
