package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const tick = 10 * time.Millisecond

func newTestGame(seed int64) *Game {
	g := New(DefaultSkin())
	g.Reset(core.RuntimeConfig{TickSleep: tick, Seed: seed})
	return g
}

func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, got := range cues {
		if got == c {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		switch {
		case i%7 == 0:
			inputs[i] = core.NewInputFrame(core.ActionShoot)
		case i%50 < 10:
			inputs[i] = core.NewInputFrame(core.ActionLeft)
		case i%50 < 20:
			inputs[i] = core.NewInputFrame(core.ActionRight)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() (Snapshot, []core.Cue) {
		g := newTestGame(12345)
		var all []core.Cue
		for _, in := range inputs {
			res := g.Step(tick, in)
			all = append(all, res.Cues...)
			if res.State.GameOver {
				break
			}
		}
		return g.Snapshot(), all
	}

	snap1, cues1 := run()
	snap2, cues2 := run()

	if snap1 != snap2 {
		t.Errorf("Determinism failed: snapshots differ\n%+v\n%+v", snap1, snap2)
	}
	if len(cues1) != len(cues2) {
		t.Fatalf("Determinism failed: %d vs %d cues", len(cues1), len(cues2))
	}
	for i := range cues1 {
		if cues1[i] != cues2[i] {
			t.Fatalf("Determinism failed: cue %d is %s vs %s", i, cues1[i], cues2[i])
		}
	}
}

func TestGameShootCue(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(tick, core.NewInputFrame(core.ActionShoot, core.ActionShoot))
	shots := 0
	for _, c := range res.Cues {
		if c == core.CueShoot {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("expected exactly one shoot cue, got %d", shots)
	}
	if res.State.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, expected 1", res.State.ShotsFired)
	}
}

func TestGameAppliesMovesInOrder(t *testing.T) {
	g := newTestGame(1)
	start := g.Player().Position().X

	g.Step(tick, core.NewInputFrame(core.ActionLeft, core.ActionLeft, core.ActionRight))
	if got := g.Player().Position().X; got != start-1 {
		t.Errorf("x = %d, expected %d", got, start-1)
	}
}

func TestGameMoveCue(t *testing.T) {
	g := newTestGame(1)

	res := g.Step(BaseMoveInterval, core.NewInputFrame())
	if !hasCue(res.Cues, core.CueMove) {
		t.Errorf("swarm step should emit a move cue, got %v", res.Cues)
	}
}

func TestGameHitScoresAndPicksExplosion(t *testing.T) {
	g := newTestGame(3)
	x := g.Player().Position().X
	g.swarm = NewSwarmAt([]core.Point{{X: x, Y: core.Rows - 2}, {X: 0, Y: 0}}, g.skin)

	g.Step(0, core.NewInputFrame(core.ActionShoot))
	res := g.Step(ShotStep, core.NewInputFrame())

	if !hasCue(res.Cues, core.CueExplosion1) && !hasCue(res.Cues, core.CueExplosion2) {
		t.Errorf("hit should emit an explosion cue, got %v", res.Cues)
	}
	if res.State.Score != PointsPerInvader || res.State.Hits != 1 || res.State.Remaining != 1 {
		t.Errorf("unexpected state after hit: %+v", res.State)
	}
	if res.State.GameOver {
		t.Error("game should continue with an invader left")
	}
}

func TestGameExplosionCuesAreBothUsed(t *testing.T) {
	g := newTestGame(99)
	seen := map[core.Cue]bool{}
	for i := 0; i < 100; i++ {
		seen[g.explosionCue()] = true
	}
	if !seen[core.CueExplosion1] || !seen[core.CueExplosion2] {
		t.Errorf("expected both explosion cues, got %v", seen)
	}
}

func TestGameVictory(t *testing.T) {
	g := newTestGame(1)
	x := g.Player().Position().X
	g.swarm = NewSwarmAt([]core.Point{{X: x, Y: core.Rows - 2}}, g.skin)

	g.Step(0, core.NewInputFrame(core.ActionShoot))
	res := g.Step(ShotStep, core.NewInputFrame())

	if g.Outcome() != OutcomeVictory {
		t.Fatalf("Outcome() = %v, expected victory", g.Outcome())
	}
	if !res.State.GameOver {
		t.Error("state should report game over")
	}
	if g.Outcome().Cue() != core.CueVictory {
		t.Errorf("victory cue = %s", g.Outcome().Cue())
	}

	// Finished games ignore further steps
	before := g.Snapshot()
	g.Step(time.Second, core.NewInputFrame(core.ActionLeft))
	if g.Snapshot() != before {
		t.Error("Step after game over changed the game")
	}
}

func TestGameDefeat(t *testing.T) {
	g := newTestGame(1)
	g.swarm = NewSwarmAt([]core.Point{{X: core.Cols - 1, Y: core.Rows - 2}}, g.skin)

	g.Step(BaseMoveInterval, core.NewInputFrame())

	if g.Outcome() != OutcomeDefeat {
		t.Fatalf("Outcome() = %v, expected defeat", g.Outcome())
	}
	if g.Outcome().Cue() != core.CueGameOver {
		t.Errorf("defeat cue = %s", g.Outcome().Cue())
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(1)
	g.Quit()

	if g.Outcome() != OutcomeQuit {
		t.Errorf("Outcome() = %v, expected quit", g.Outcome())
	}
	if g.Outcome().Cue() != core.CueGameOver {
		t.Errorf("quit cue = %s", g.Outcome().Cue())
	}
	if !g.State().GameOver {
		t.Error("quit should end the game")
	}
}

func TestGameRenderSwarmCoversPlayer(t *testing.T) {
	g := newTestGame(1)
	pos := g.Player().Position()
	g.swarm = NewSwarmAt([]core.Point{{X: pos.X, Y: pos.Y}}, g.skin)

	f := core.NewFrame()
	g.Render(f)

	if f.Get(pos.X, pos.Y) != g.skin.Invader[0] {
		t.Errorf("invader should be drawn over the ship, got %+v", f.Get(pos.X, pos.Y))
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 50; i++ {
		g.Step(100*time.Millisecond, core.NewInputFrame(core.ActionShoot, core.ActionLeft))
	}

	g.Reset(core.RuntimeConfig{Seed: 1})

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Shots != 0 {
		t.Errorf("Reset should clear progress, got %+v", snap)
	}
	if snap.Invaders != 72 || snap.PlayerX != core.Cols/2 {
		t.Errorf("Reset should restore the formation and ship, got %+v", snap)
	}
}
