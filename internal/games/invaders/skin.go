package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Skin holds the glyphs used to draw the game.
type Skin struct {
	Player  core.Cell
	Shot    core.Cell
	Blast   core.Cell
	Invader [2]core.Cell // Alternating animation frames
}

// DefaultSkin returns the classic glyph set.
func DefaultSkin() Skin {
	return Skin{
		Player: core.Cell{Rune: 'A', Color: core.ColorBrightGreen},
		Shot:   core.Cell{Rune: '|', Color: core.ColorBrightYellow},
		Blast:  core.Cell{Rune: '*', Color: core.ColorOrange},
		Invader: [2]core.Cell{
			{Rune: 'x', Color: core.ColorBrightMagenta},
			{Rune: '+', Color: core.ColorBrightMagenta},
		},
	}
}

// SkinFromConfig builds a skin from the glyph section of the config.
func SkinFromConfig(g config.GlyphConfig) (Skin, error) {
	var (
		s   Skin
		err error
	)
	if s.Player, err = g.Player.Cell(); err != nil {
		return s, fmt.Errorf("player glyph: %w", err)
	}
	if s.Shot, err = g.Shot.Cell(); err != nil {
		return s, fmt.Errorf("shot glyph: %w", err)
	}
	if s.Blast, err = g.Blast.Cell(); err != nil {
		return s, fmt.Errorf("blast glyph: %w", err)
	}
	if len(g.Invader) != len(s.Invader) {
		return s, fmt.Errorf("invader glyph: expected %d frames, got %d", len(s.Invader), len(g.Invader))
	}
	for i, spec := range g.Invader {
		if s.Invader[i], err = spec.Cell(); err != nil {
			return s, fmt.Errorf("invader glyph %d: %w", i, err)
		}
	}
	return s, nil
}
