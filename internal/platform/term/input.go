package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// eventBuffer bounds how many decoded actions wait for the next tick.
const eventBuffer = 64

// Event is one decoded input: an action, or a fatal input error.
type Event struct {
	Action core.Action
	Err    error
}

// InputPump reads terminal events on its own goroutine and hands decoded
// actions to the simulation, which drains them without blocking.
type InputPump struct {
	screen tcell.Screen
	keys   *KeyMapper
	events chan Event
	redraw chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

// NewInputPump creates a pump for the given screen.
func NewInputPump(s tcell.Screen, keys *KeyMapper) *InputPump {
	return &InputPump{
		screen: s,
		keys:   keys,
		events: make(chan Event, eventBuffer),
		redraw: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Events returns the decoded input stream.
func (p *InputPump) Events() <-chan Event {
	return p.events
}

// Redraw signals that the terminal was resized and needs a full redraw.
func (p *InputPump) Redraw() <-chan struct{} {
	return p.redraw
}

// Start begins polling terminal events.
func (p *InputPump) Start() {
	go p.run()
}

// Stop ends polling. It wakes the poller with an interrupt event and waits
// for the goroutine to exit.
func (p *InputPump) Stop() {
	close(p.stop)
	//nolint:errcheck // A full event queue still leaves the stop channel to unblock the pump
	p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-p.done
}

func (p *InputPump) run() {
	defer close(p.done)

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			action := p.keys.MapKey(e)
			if action == core.ActionNone {
				continue
			}
			if !p.send(Event{Action: action}) {
				return
			}

		case *tcell.EventResize:
			select {
			case p.redraw <- struct{}{}:
			default: // A redraw is already pending
			}

		case *tcell.EventError:
			p.send(Event{Err: fmt.Errorf("terminal input: %w", e)})
			return

		case *tcell.EventInterrupt:
			select {
			case <-p.stop:
				return
			default:
			}
		}
	}
}

// send delivers an event unless the pump is stopping.
func (p *InputPump) send(ev Event) bool {
	select {
	case p.events <- ev:
		return true
	case <-p.stop:
		return false
	}
}
