package term

import "github.com/vovakirdan/tui-invaders/internal/core"

// NewFrameQueue returns the two ends of an unbounded frame queue.
//
// Sends never wait on the receiver: a pump goroutine keeps a backlog, so a
// slow renderer makes frames pile up instead of stalling the simulation or
// being dropped. Closing the send side delivers the backlog and then closes
// the receive side.
func NewFrameQueue() (chan<- *core.Frame, <-chan *core.Frame) {
	in := make(chan *core.Frame)
	out := make(chan *core.Frame)

	go func() {
		defer close(out)

		src := in
		var pending []*core.Frame
		for src != nil || len(pending) > 0 {
			var dst chan<- *core.Frame
			var next *core.Frame
			if len(pending) > 0 {
				dst = out
				next = pending[0]
			}

			select {
			case f, ok := <-src:
				if !ok {
					src = nil
					continue
				}
				pending = append(pending, f)
			case dst <- next:
				pending[0] = nil
				pending = pending[1:]
			}
		}
	}()

	return in, out
}
