package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '[', ColorCyan)
	s.DrawTextColored(4, 1, "[]", ColorGray)

	if c := s.GetCell(2, 1); c.Rune != '[' || c.Color != ColorCyan {
		t.Errorf("GetCell(2, 1) = %+v, expected '[' in cyan", c)
	}
	if c := s.GetCell(5, 1); c.Rune != ']' || c.Color != ColorGray {
		t.Errorf("GetCell(5, 1) = %+v, expected ']' in gray", c)
	}

	// Plain Set resets the color
	s.Set(2, 1, 'x')
	if c := s.GetCell(2, 1); c.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", c.Color)
	}

	// Out of bounds returns a blank cell
	if c := s.GetCell(-1, 0); c != blankCell {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenColoredTextClipped(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(4, 0, "[][]", ColorRed)
	s.DrawTextColored(-2, 1, "[][]", ColorBlue)

	if got := s.Row(0); got != "    []" {
		t.Errorf("Row(0) = %q, expected clipped at right edge", got)
	}
	if got := s.Row(1); got != "[]    " {
		t.Errorf("Row(1) = %q, expected clipped at left edge", got)
	}
	if c := s.GetCell(5, 0); c.Color != ColorRed {
		t.Errorf("clipped text lost its color: %+v", c)
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "[][]", ColorMagenta)
	s.Clear()

	if c := s.GetCell(1, 0); c != blankCell {
		t.Errorf("after Clear, cell = %+v, expected blank", c)
	}
}

func TestScreenDrawBoxOverColoredCells(t *testing.T) {
	s := NewScreen(10, 6)
	for y := 0; y < 6; y++ {
		s.DrawTextColored(0, y, "[][][][][]", ColorGray)
	}
	s.DrawBox(NewRect(1, 1, 6, 4))

	corners := map[Point]rune{
		{X: 1, Y: 1}: '┌', {X: 6, Y: 1}: '┐',
		{X: 1, Y: 4}: '└', {X: 6, Y: 4}: '┘',
	}
	for p, want := range corners {
		if c := s.GetCell(p.X, p.Y); c.Rune != want || c.Color != ColorDefault {
			t.Errorf("corner (%d, %d) = %+v, expected %q uncolored", p.X, p.Y, c, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges missing")
	}
	for y := 2; y < 4; y++ {
		for x := 2; x < 6; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("interior (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
	if c := s.GetCell(0, 0); c.Rune != '[' || c.Color != ColorGray {
		t.Error("DrawBox should not affect outside area")
	}
}

func TestScreenWellFloor(t *testing.T) {
	s := NewScreen(8, 3)
	s.Set(0, 0, '|')
	s.Set(7, 0, '|')
	s.DrawHLine(1, 1, 6, '-')

	expected := "|      |\n ------ \n        "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenCenteredMessage(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "GAME OVER")

	if got := strings.TrimRight(s.Row(1), " "); got != "     GAME OVER" {
		t.Errorf("Row(1) = %q, expected centered text", got)
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "[]", ColorYellow)
	s.DrawText(0, 8, "gone")

	s.Resize(6, 4)
	if s.Width() != 6 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 6x4", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 0); c.Rune != ']' || c.Color != ColorYellow {
		t.Errorf("resize lost colored cell: %+v", c)
	}

	s.Resize(12, 9)
	if c := s.GetCell(0, 0); c.Color != ColorYellow {
		t.Errorf("enlarging lost colored cell: %+v", c)
	}
	if got := s.Row(8); strings.TrimSpace(got) != "" {
		t.Errorf("row cut by shrinking should stay blank, got %q", got)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 12) {
		t.Errorf("out of bounds row = %q, expected spaces", got)
	}
}
