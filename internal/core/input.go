package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow - move ship left
	ActionRight        // Right arrow - move ship right
	ActionShoot        // Space, Enter - fire
	ActionQuit         // Esc, Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Actions lists every bindable action in display order.
var Actions = []Action{ActionLeft, ActionRight, ActionShoot, ActionQuit}

// InputFrame holds the actions decoded during one simulation tick, in
// arrival order. Held keys produce repeated actions; nothing is debounced.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
