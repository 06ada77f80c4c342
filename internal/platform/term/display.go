// Package term runs the game on a character-cell terminal: it owns the
// display, decodes key presses into actions and drives the simulation and
// render goroutines.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Display is a character-cell terminal that supports positioned single glyph
// writes. Writes are buffered until Flush.
type Display interface {
	// Clear blanks the whole display.
	Clear()
	// SetCell writes one glyph at a playfield position.
	SetCell(x, y int, c core.Cell)
	// Flush pushes buffered writes to the terminal.
	Flush() error
}

// colorStyles maps core.Color to tcell styles using the ANSI 256-color palette.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:       tcell.StyleDefault,
	core.ColorRed:           tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorGreen:         tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorYellow:        tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorBlue:          tcell.StyleDefault.Foreground(tcell.PaletteColor(4)),
	core.ColorMagenta:       tcell.StyleDefault.Foreground(tcell.PaletteColor(5)),
	core.ColorCyan:          tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:         tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorBrightRed:     tcell.StyleDefault.Foreground(tcell.PaletteColor(9)),
	core.ColorBrightGreen:   tcell.StyleDefault.Foreground(tcell.PaletteColor(10)),
	core.ColorBrightYellow:  tcell.StyleDefault.Foreground(tcell.PaletteColor(11)),
	core.ColorBrightBlue:    tcell.StyleDefault.Foreground(tcell.PaletteColor(12)),
	core.ColorBrightMagenta: tcell.StyleDefault.Foreground(tcell.PaletteColor(13)),
	core.ColorBrightCyan:    tcell.StyleDefault.Foreground(tcell.PaletteColor(14)),
	core.ColorBrightWhite:   tcell.StyleDefault.Foreground(tcell.PaletteColor(15)),
	core.ColorOrange:        tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:          tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

var borderStyle = colorStyles[core.ColorGray]

// styleFor returns the tcell style for a color, falling back to the default.
func styleFor(c core.Color) tcell.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return tcell.StyleDefault
}

// ScreenDisplay draws the playfield on a tcell screen, framed by a border.
type ScreenDisplay struct {
	screen tcell.Screen
	field  core.Rect // Playfield area in screen coordinates
}

// NewScreenDisplay creates a display that places the playfield one cell in
// from the top-left corner, leaving room for the border.
func NewScreenDisplay(s tcell.Screen) *ScreenDisplay {
	return &ScreenDisplay{
		screen: s,
		field:  core.NewRect(1, 1, core.Cols, core.Rows),
	}
}

// MinSize returns the terminal size needed to show the playfield and border.
func MinSize() (width, height int) {
	r := core.NewRect(1, 1, core.Cols, core.Rows).Inset(1)
	return r.W, r.H
}

// Clear blanks the screen and redraws the border.
func (d *ScreenDisplay) Clear() {
	d.screen.Clear()
	d.drawBorder()
}

// SetCell writes a glyph at a playfield position.
func (d *ScreenDisplay) SetCell(x, y int, c core.Cell) {
	if !d.field.Contains(d.field.X+x, d.field.Y+y) {
		panic(fmt.Sprintf("term: cell (%d, %d) outside the playfield", x, y))
	}
	d.screen.SetContent(d.field.X+x, d.field.Y+y, c.Rune, nil, styleFor(c.Color))
}

// Flush shows pending changes.
func (d *ScreenDisplay) Flush() error {
	d.screen.Show()
	return nil
}

// drawBorder draws a box outline around the playfield.
func (d *ScreenDisplay) drawBorder() {
	r := d.field.Inset(1)
	set := func(x, y int, ch rune) {
		d.screen.SetContent(x, y, ch, nil, borderStyle)
	}

	// Corners
	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
}

// OpenScreen creates and initializes a tcell screen for the game: alternate
// screen, raw input and a hidden cursor. Callers must call Fini on it.
func OpenScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return s, nil
}
