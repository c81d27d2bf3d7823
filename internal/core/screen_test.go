package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 30)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 30 {
		t.Errorf("Height() = %d, expected 30", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	st := Style{Fg: ColorRed, Bg: ColorDarkGray}

	s.SetCell(5, 5, Cell{Rune: 'X', Style: st})
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Set keeps the style already in the cell
	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Rune != 'Y' || c.Style != st {
		t.Errorf("Set should keep style, got %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), Cell{Rune: 'X', Style: Style{Bg: ColorGreen}})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	st := Style{Fg: ColorWhite}
	s.DrawText(2, 1, "Score: 10", st)

	if got := s.Row(1)[2:11]; got != "Score: 10" {
		t.Errorf("DrawText: row 1 = %q", got)
	}
	if s.GetCell(2, 1).Style != st {
		t.Error("DrawText should apply the style")
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", st)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(30, 5)
	s.DrawTextCentered(NewRect(10, 0, 20, 5), 2, "Hi", Style{})

	// "Hi" is 2 chars, centered in 20 columns starting at 10 -> column 19
	if s.Get(19, 2) != 'H' || s.Get(20, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "←→x", Style{})

	if s.Get(0, 0) != '←' || s.Get(1, 0) != '→' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text should occupy one cell per rune, row = %q", s.Row(0))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	c := Cell{Rune: '#', Style: Style{Bg: ColorPurple}}
	s.FillRect(NewRect(2, 2, 3, 3), c)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y) != c {
				t.Errorf("FillRect: expected %+v at (%d, %d), got %+v", c, x, y, s.GetCell(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), Style{Fg: ColorWhite})

	corners := map[[2]int]rune{
		{1, 1}: '╭',
		{5, 1}: '╮',
		{1, 4}: '╰',
		{5, 4}: '╯',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", Style{})
	s.DrawText(0, 1, "BBBBB", Style{Fg: ColorRed})
	s.DrawText(0, 2, "CCCCC", Style{})

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", Style{})

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("Row length should be 15, got %d", len(s.Row(7)))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
