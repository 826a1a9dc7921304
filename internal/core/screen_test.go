package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !s.IsBlank(x, y) {
				t.Fatalf("new screen not blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '*', ColorCyan)
	cell := s.GetCell(5, 5)
	if cell.Rune != '*' || cell.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v", cell)
	}
	if s.IsBlank(5, 5) {
		t.Error("coloured cell reported blank")
	}

	// Out of bounds is silent
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(0, 0, 4, 2), '#', ColorRed)
	s.Clear()

	if s.GetCell(1, 1) != (Cell{Rune: ' '}) {
		t.Errorf("Clear left %+v", s.GetCell(1, 1))
	}
}

func TestScreenDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(17, 0, "héllo", ColorGreen)

	if s.Get(17, 0) != 'h' || s.Get(18, 0) != 'é' || s.Get(19, 0) != 'l' {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if s.GetCell(18, 0).Color != ColorGreen {
		t.Error("text colour not applied")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 1)
	if s.String() != "AAA" {
		t.Errorf("after shrink String() = %q", s.String())
	}

	s.Resize(6, 2)
	if !strings.HasPrefix(s.Row(0), "AAA") {
		t.Errorf("content lost after grow, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "      " {
		t.Errorf("out of range Row = %q", s.Row(-1))
	}
}
