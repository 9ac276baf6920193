package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 20)

	if s.Width() != 40 || s.Height() != 20 {
		t.Fatalf("dimensions = %dx%d, expected 40x20", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(3, 4, 'M', ColorRed)
	c := s.GetCell(3, 4)
	if c.Rune != 'M' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red M", c)
	}

	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	// Out of bounds writes are ignored
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(10, 0, 'A', ColorRed)
	s.SetColor(0, 10, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(0, 0, 5, 5), '#')
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("after Clear screen should be blank, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColor(1, 1, "Lives: 3", ColorYellow)

	if !strings.HasPrefix(s.Row(1), " Lives: 3") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(1, 1).Color != ColorYellow {
		t.Error("DrawTextColor should color every rune")
	}

	// Clipped at right edge
	s.DrawText(10, 0, "Score")
	if s.Get(10, 0) != 'S' || s.Get(11, 0) != 'c' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Error("DrawTextCentered placed text at wrong column")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "###")
	s.DrawText(0, 1, "#.#")

	if got := s.String(); got != "###\n#.#" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(0, 0, 'C', ColorBrightYellow)
	s.DrawText(1, 0, "ello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Cello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorBrightYellow {
		t.Error("colors should be preserved on resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Cello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(-1)) != 15 {
		t.Error("out of bounds row should be a blank line of screen width")
	}
}
