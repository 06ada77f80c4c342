package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Renderer turns frames into display writes. Only cells that differ from the
// previous frame are written, which keeps per-tick output proportional to
// what actually changed.
type Renderer struct {
	display Display
	logger  *log.Logger
	frames  int
}

// NewRenderer creates a renderer for the given display.
// A nil logger discards log output.
func NewRenderer(d Display, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{display: d, logger: logger}
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() int {
	return r.frames
}

// Render writes curr to the display. Without force only the cells that
// differ from prev are written; with force the display is cleared and every
// cell is written. The display is flushed in both cases.
func (r *Renderer) Render(prev, curr *core.Frame, force bool) error {
	if force {
		r.display.Clear()
	}

	for y := 0; y < core.Rows; y++ {
		for x := 0; x < core.Cols; x++ {
			c := curr.Get(x, y)
			if force || c != prev.Get(x, y) {
				r.display.SetCell(x, y, c)
			}
		}
	}

	if err := r.display.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	r.frames++
	return nil
}

// Run is the render goroutine body. It draws a blank baseline, then renders
// each received frame against the previous one until frames is closed.
// A value on redraw forces the next frame to be drawn in full.
func (r *Renderer) Run(frames <-chan *core.Frame, redraw <-chan struct{}) error {
	last := core.NewFrame()
	if err := r.Render(last, last, true); err != nil {
		return err
	}
	r.logger.Debug("renderer started")

	force := false
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				r.logger.Debug("renderer stopped", "frames", r.frames)
				return nil
			}
			if err := r.Render(last, f, force); err != nil {
				return err
			}
			last = f
			force = false

		case <-redraw:
			force = true
		}
	}
}
