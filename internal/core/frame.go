package core

import (
	"fmt"
	"strings"
)

// Playfield dimensions in character cells.
const (
	Cols = 40
	Rows = 20
)

// Blank is the glyph every cell holds until something is drawn over it.
const Blank = ' '

// Cell is a single glyph on the playfield.
type Cell struct {
	Rune  rune
	Color Color
}

// BlankCell is the default content of a fresh frame.
var BlankCell = Cell{Rune: Blank, Color: ColorDefault}

// Frame is a fixed-size 2D character buffer holding one tick worth of output.
// A frame is built by the simulation, handed to the renderer and never touched
// by the sender again.
type Frame struct {
	cells [Rows][Cols]Cell
}

// NewFrame creates a frame with every cell blank.
func NewFrame() *Frame {
	f := &Frame{}
	f.Clear()
	return f
}

// Width returns the frame width in characters.
func (f *Frame) Width() int {
	return Cols
}

// Height returns the frame height in characters.
func (f *Frame) Height() int {
	return Rows
}

// Bounds returns the rectangle covered by the frame.
func (f *Frame) Bounds() Rect {
	return NewRect(0, 0, Cols, Rows)
}

// Clear fills the entire frame with blank cells.
func (f *Frame) Clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = BlankCell
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are a caller bug and panic.
func (f *Frame) Set(x, y int, c Cell) {
	f.mustContain(x, y)
	f.cells[y][x] = c
}

// SetRune places a rune with the default color at the given position.
func (f *Frame) SetRune(x, y int, r rune) {
	f.Set(x, y, Cell{Rune: r})
}

// Get returns the cell at the given position.
func (f *Frame) Get(x, y int) Cell {
	f.mustContain(x, y)
	return f.cells[y][x]
}

func (f *Frame) mustContain(x, y int) {
	if !f.Bounds().Contains(x, y) {
		panic(fmt.Sprintf("core: frame access out of bounds at (%d, %d)", x, y))
	}
}

// Equal reports whether two frames hold identical cells.
func (f *Frame) Equal(other *Frame) bool {
	return f.cells == other.cells
}

// String converts the frame glyphs to text, one line per row.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Cols*Rows + Rows)

	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < Cols; x++ {
			sb.WriteRune(f.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (f *Frame) Row(y int) string {
	f.mustContain(0, y)
	runes := make([]rune, Cols)
	for x := range runes {
		runes[x] = f.cells[y][x].Rune
	}
	return string(runes)
}

// Drawable is anything that can stamp its current state onto a frame.
// Later draws overwrite earlier ones on the same cell.
type Drawable interface {
	Draw(f *Frame)
}
