package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// keyNames maps special keys to the names used in config files.
var keyNames = map[tcell.Key]string{
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyCtrlC:  "ctrl+c",
	tcell.KeyTab:    "tab",
}

// KeyName returns the config name of a key event, or "" if it has none.
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return keyNames[ev.Key()]
}

// KeyMapper translates tcell key events to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper from the configured bindings.
func NewKeyMapper(keys config.KeyConfig) (*KeyMapper, error) {
	b, err := keys.Bindings()
	if err != nil {
		return nil, err
	}
	return &KeyMapper{bindings: b}, nil
}

// MapKey translates a key event to an action (ActionNone if unbound).
func (km *KeyMapper) MapKey(ev *tcell.EventKey) core.Action {
	name := KeyName(ev)
	if name == "" {
		return core.ActionNone
	}
	return km.bindings[name]
}
