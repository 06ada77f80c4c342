package term

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Result summarizes a finished game.
type Result struct {
	Outcome invaders.Outcome
	State   core.GameState
	Final   *core.Frame // The last board, drawn after the loop ended
	Frames  int         // Frames the renderer wrote
}

// Session runs one game on a terminal screen: renderer on its own goroutine,
// simulation on the caller's.
type Session struct {
	screen tcell.Screen
	keys   *KeyMapper
	cues   core.CueSink
	logger *log.Logger
}

// NewSession creates a session on an initialized screen.
func NewSession(s tcell.Screen, keys *KeyMapper, cues core.CueSink, logger *log.Logger) *Session {
	if cues == nil {
		cues = core.NopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{screen: s, keys: keys, cues: cues, logger: logger}
}

// Run plays the game to completion. The renderer is joined before Run
// returns, so every queued frame has been written by then. A render failure
// stops the simulation and is returned.
func (s *Session) Run(ctx context.Context, game *invaders.Game) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pump := NewInputPump(s.screen, s.keys)
	pump.Start()
	defer pump.Stop()

	renderer := NewRenderer(NewScreenDisplay(s.screen), s.logger)
	send, recv := NewFrameQueue()

	renderDone := make(chan error, 1)
	go func() {
		err := renderer.Run(recv, pump.Redraw())
		if err != nil {
			cancel()
			for range recv {
				// Discard what the loop sends before it notices
			}
		}
		renderDone <- err
	}()

	loop := NewLoop(game, pump.Events(), send, s.cues, s.logger)
	if d := game.Config().TickSleep; d > 0 {
		loop.SetTickSleep(d)
	}
	outcome, loopErr := loop.Run(ctx)

	close(send)
	renderErr := <-renderDone
	if renderErr != nil {
		s.logger.Error("render failed", "error", renderErr)
	}

	final := core.NewFrame()
	game.Render(final)

	return Result{
		Outcome: outcome,
		State:   game.State(),
		Final:   final,
		Frames:  renderer.Frames(),
	}, errors.Join(loopErr, renderErr)
}
