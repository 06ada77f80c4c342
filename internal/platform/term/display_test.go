package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	w, h := MinSize()
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestMinSize(t *testing.T) {
	w, h := MinSize()
	if w != core.Cols+2 || h != core.Rows+2 {
		t.Errorf("MinSize() = %dx%d, expected %dx%d", w, h, core.Cols+2, core.Rows+2)
	}
}

func TestScreenDisplayBorder(t *testing.T) {
	s := newSimScreen(t)
	d := NewScreenDisplay(s)

	d.Clear()
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	corners := []struct {
		x, y int
		r    rune
	}{
		{0, 0, '┌'},
		{core.Cols + 1, 0, '┐'},
		{0, core.Rows + 1, '└'},
		{core.Cols + 1, core.Rows + 1, '┘'},
	}
	for _, c := range corners {
		if got, _, _, _ := s.GetContent(c.x, c.y); got != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if got, _, _, _ := s.GetContent(5, 0); got != '─' {
		t.Errorf("top edge = %q, expected '─'", got)
	}
	if got, _, _, _ := s.GetContent(0, 5); got != '│' {
		t.Errorf("left edge = %q, expected '│'", got)
	}
}

func TestScreenDisplaySetCellOffsetsIntoBorder(t *testing.T) {
	s := newSimScreen(t)
	d := NewScreenDisplay(s)

	d.SetCell(0, 0, core.Cell{Rune: 'A', Color: core.ColorBrightGreen})
	d.SetCell(core.Cols-1, core.Rows-1, core.Cell{Rune: 'x'})
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	got, _, style, _ := s.GetContent(1, 1)
	if got != 'A' {
		t.Errorf("playfield origin shows %q, expected 'A'", got)
	}
	if style != styleFor(core.ColorBrightGreen) {
		t.Errorf("style = %v, expected bright green", style)
	}
	if got, _, _, _ := s.GetContent(core.Cols, core.Rows); got != 'x' {
		t.Errorf("playfield corner shows %q, expected 'x'", got)
	}
}

func TestScreenDisplaySetCellOutsidePanics(t *testing.T) {
	s := newSimScreen(t)
	d := NewScreenDisplay(s)

	defer func() {
		if recover() == nil {
			t.Error("SetCell outside the playfield should panic")
		}
	}()
	d.SetCell(core.Cols, 0, core.Cell{Rune: 'x'})
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)) != tcell.StyleDefault {
		t.Error("unknown colors should use the default style")
	}
}
