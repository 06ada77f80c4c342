package term

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Loop is the simulation side of the game. Each tick it drains pending
// input, advances the game by the elapsed time, draws a fresh frame and hands
// it to the renderer.
type Loop struct {
	game      *invaders.Game
	events    <-chan Event
	frames    chan<- *core.Frame
	cues      core.CueSink
	logger    *log.Logger
	tickSleep time.Duration
	now       func() time.Time
	sleep     func(time.Duration)
	ticks     int
}

// NewLoop creates a simulation loop. Frames sent on frames belong to the
// receiver; the loop never touches them again.
func NewLoop(game *invaders.Game, events <-chan Event, frames chan<- *core.Frame, cues core.CueSink, logger *log.Logger) *Loop {
	if cues == nil {
		cues = core.NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:      game,
		events:    events,
		frames:    frames,
		cues:      cues,
		logger:    logger,
		tickSleep: core.TickSleep,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// SetTickSleep changes the pause after each tick.
func (l *Loop) SetTickSleep(d time.Duration) {
	l.tickSleep = d
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Run plays until the swarm is destroyed, the swarm reaches the bottom or the
// player quits. Cancelling ctx counts as quitting. The ending cue is played
// before Run returns. Input errors are fatal and returned as is.
func (l *Loop) Run(ctx context.Context) (invaders.Outcome, error) {
	in := core.NewInputFrame()
	last := l.now()

	for {
		now := l.now()
		delta := now.Sub(last)
		last = now

		in.Clear()
		quit, err := l.drain(ctx, &in)
		if err != nil {
			l.logger.Error("input failed", "error", err)
			return invaders.OutcomeNone, err
		}
		if quit {
			l.game.Quit()
			break
		}

		res := l.game.Step(delta, in)
		for _, c := range res.Cues {
			l.cues.Play(c)
			if c == core.CueMove {
				snap := l.game.Snapshot()
				l.logger.Debug("swarm moved",
					"tick", snap.Tick,
					"invaders", snap.Invaders,
					"direction", snap.Direction,
					"interval", snap.Interval,
				)
			}
		}

		f := core.NewFrame()
		l.game.Render(f)
		l.frames <- f

		l.sleep(l.tickSleep)
		l.ticks++

		if l.game.Outcome() != invaders.OutcomeNone {
			break
		}
	}

	outcome := l.game.Outcome()
	l.cues.Play(outcome.Cue())

	state := l.game.State()
	l.logger.Info("game finished",
		"outcome", outcome,
		"score", state.Score,
		"remaining", state.Remaining,
		"shots", state.ShotsFired,
		"elapsed", state.Elapsed,
		"ticks", l.ticks,
	)
	return outcome, nil
}

// drain applies every pending input event without waiting for new ones.
// It stops early on quit.
func (l *Loop) drain(ctx context.Context, in *core.InputFrame) (quit bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return true, nil
		case ev := <-l.events:
			if ev.Err != nil {
				return false, ev.Err
			}
			if ev.Action == core.ActionQuit {
				return true, nil
			}
			in.Add(ev.Action)
		default:
			return false, nil
		}
	}
}
