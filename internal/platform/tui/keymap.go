package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// actionHelp is the help text shown for each game action.
var actionHelp = map[core.Action]string{
	core.ActionLeft:  "move left",
	core.ActionRight: "move right",
	core.ActionShoot: "fire",
	core.ActionQuit:  "quit",
}

// teaKey converts a config key name to the string Bubble Tea reports.
func teaKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "space" {
		return " "
	}
	return name
}

// GameKeyMap lists the in-game bindings for the help view. The game itself
// reads keys through tcell; these bindings only describe them.
type GameKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Shoot key.Binding
	Quit  key.Binding
}

// NewGameKeyMap builds help bindings from the configured keys.
func NewGameKeyMap(keys config.KeyConfig) GameKeyMap {
	binding := func(a core.Action) key.Binding {
		names := keys.ForAction(a)
		bound := make([]string, len(names))
		for i, n := range names {
			bound[i] = teaKey(n)
		}
		return key.NewBinding(
			key.WithKeys(bound...),
			key.WithHelp(strings.Join(names, "/"), actionHelp[a]),
		)
	}

	return GameKeyMap{
		Left:  binding(core.ActionLeft),
		Right: binding(core.ActionRight),
		Shoot: binding(core.ActionShoot),
		Quit:  binding(core.ActionQuit),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Shoot, k.Quit},
	}
}

// ScreenKeyMap defines the keys of the title and result screens.
type ScreenKeyMap struct {
	Continue key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScreenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScreenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScreenKeyMap returns the screen bindings with the given label for
// the continue key.
func DefaultScreenKeyMap(continueHelp string) ScreenKeyMap {
	return ScreenKeyMap{
		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", continueHelp),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
