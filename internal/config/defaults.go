package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Glyphs: GlyphConfig{
			Player: GlyphSpec{Rune: "A", Color: "bright_green"},
			Shot:   GlyphSpec{Rune: "|", Color: "bright_yellow"},
			Blast:  GlyphSpec{Rune: "*", Color: "orange"},
			Invader: []GlyphSpec{
				{Rune: "x", Color: "bright_magenta"},
				{Rune: "+", Color: "bright_magenta"},
			},
		},
		Keys: KeyConfig{
			Left:  []string{"left", "h"},
			Right: []string{"right", "l"},
			Shoot: []string{"space", "enter"},
			Quit:  []string{"esc", "q", "ctrl+c"},
		},
		Audio: AudioConfig{
			Enabled:       true,
			Volume:        0,
			WaitTimeoutMS: 3000,
		},
		Log: LogConfig{
			File:  "~/.invaders/invaders.log",
			Level: "info",
		},
		UI: UIConfig{
			ShowTitle:  true,
			ShowResult: true,
		},
	}
}
