// Package config provides YAML-based configuration loading for the game:
// glyphs, key bindings, audio and logging. Gameplay timing is fixed in code.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Glyphs GlyphConfig `yaml:"glyphs"`
	Keys   KeyConfig   `yaml:"keys"`
	Audio  AudioConfig `yaml:"audio"`
	Log    LogConfig   `yaml:"log"`
	UI     UIConfig    `yaml:"ui"`
}

// GlyphConfig defines how each game object is drawn.
type GlyphConfig struct {
	Player  GlyphSpec   `yaml:"player"`
	Shot    GlyphSpec   `yaml:"shot"`
	Blast   GlyphSpec   `yaml:"blast"`
	Invader []GlyphSpec `yaml:"invader"` // Two animation frames
}

// GlyphSpec is a single character with an optional color name.
type GlyphSpec struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// KeyConfig lists the key names bound to each action.
// Names follow the "left", "space", "ctrl+c", "q" convention.
type KeyConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Shoot []string `yaml:"shoot"`
	Quit  []string `yaml:"quit"`
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Volume        float64 `yaml:"volume"`          // Gain in log2 steps, 0 = unchanged
	WaitTimeoutMS int     `yaml:"wait_timeout_ms"` // Upper bound on waiting for cues at exit
}

// LogConfig controls the log file. The terminal belongs to the game, so logs
// never go to stdout.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// UIConfig toggles the screens around the game.
type UIConfig struct {
	ShowTitle  bool `yaml:"show_title"`
	ShowResult bool `yaml:"show_result"`
}

// Cell converts the spec to a frame cell.
func (g GlyphSpec) Cell() (core.Cell, error) {
	if utf8.RuneCountInString(g.Rune) != 1 {
		return core.Cell{}, fmt.Errorf("glyph %q must be exactly one character", g.Rune)
	}
	r, _ := utf8.DecodeRuneInString(g.Rune)
	color, err := core.ParseColor(g.Color)
	if err != nil {
		return core.Cell{}, err
	}
	return core.Cell{Rune: r, Color: color}, nil
}

// ForAction returns the keys bound to an action.
func (k KeyConfig) ForAction(a core.Action) []string {
	switch a {
	case core.ActionLeft:
		return k.Left
	case core.ActionRight:
		return k.Right
	case core.ActionShoot:
		return k.Shoot
	case core.ActionQuit:
		return k.Quit
	default:
		return nil
	}
}

// Bindings returns the key name to action lookup table.
func (k KeyConfig) Bindings() (map[string]core.Action, error) {
	out := make(map[string]core.Action)
	for _, a := range core.Actions {
		keys := k.ForAction(a)
		if len(keys) == 0 {
			return nil, fmt.Errorf("no keys bound to %s", a)
		}
		for _, key := range keys {
			key = strings.ToLower(strings.TrimSpace(key))
			if prev, ok := out[key]; ok && prev != a {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, a)
			}
			out[key] = a
		}
	}
	return out, nil
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	specs := map[string]GlyphSpec{
		"player": c.Glyphs.Player,
		"shot":   c.Glyphs.Shot,
		"blast":  c.Glyphs.Blast,
	}
	for name, spec := range specs {
		if _, err := spec.Cell(); err != nil {
			return fmt.Errorf("glyphs.%s: %w", name, err)
		}
	}

	if len(c.Glyphs.Invader) != 2 {
		return fmt.Errorf("glyphs.invader: expected 2 frames, got %d", len(c.Glyphs.Invader))
	}
	for i, spec := range c.Glyphs.Invader {
		if _, err := spec.Cell(); err != nil {
			return fmt.Errorf("glyphs.invader[%d]: %w", i, err)
		}
	}

	if _, err := c.Keys.Bindings(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Audio.WaitTimeoutMS < 0 {
		return fmt.Errorf("audio.wait_timeout_ms: must not be negative")
	}
	return nil
}
