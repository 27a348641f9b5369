package core

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ztrix/internal/geom"
)

// rows returns the screen content one string per row.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		draw     func(s *Screen)
		expected []string
	}{
		{
			name:     "blank",
			w:        4,
			h:        2,
			draw:     func(*Screen) {},
			expected: []string{"    ", "    "},
		},
		{
			name: "set ignores out of bounds",
			w:    3,
			h:    2,
			draw: func(s *Screen) {
				s.Set(1, 1, 'X')
				s.Set(-1, 0, 'A')
				s.Set(3, 0, 'A')
				s.Set(0, 2, 'A')
			},
			expected: []string{"   ", " X "},
		},
		{
			name: "text clipped at the right edge",
			w:    6,
			h:    2,
			draw: func(s *Screen) {
				s.DrawText(1, 0, "well")
				s.DrawText(4, 1, "next")
			},
			expected: []string{" well ", "    ne"},
		},
		{
			name:     "centered text",
			w:        8,
			h:        1,
			draw:     func(s *Screen) { s.DrawTextCentered(0, "GO") },
			expected: []string{"   GO   "},
		},
		{
			name: "fill rect",
			w:    5,
			h:    4,
			draw: func(s *Screen) {
				s.FillRect(geom.MustRect(1, 1, 4, 3), '#')
			},
			expected: []string{"     ", " ### ", " ### ", "     "},
		},
		{
			name:     "box",
			w:        5,
			h:        4,
			draw:     func(s *Screen) { s.DrawBox(geom.MustRect(0, 0, 5, 4)) },
			expected: []string{"┌───┐", "│   │", "│   │", "└───┘"},
		},
		{
			name: "lines",
			w:    4,
			h:    3,
			draw: func(s *Screen) {
				s.DrawHLine(0, 0, 3, '-')
				s.DrawVLine(3, 0, 3, '|')
			},
			expected: []string{"---|", "   |", "   |"},
		},
		{
			name: "fill then clear",
			w:    3,
			h:    1,
			draw: func(s *Screen) {
				s.Fill('#')
				s.Clear()
			},
			expected: []string{"   "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			tc.draw(s)
			got := rows(s)
			if strings.Join(got, "\n") != strings.Join(tc.expected, "\n") {
				t.Errorf("screen = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "SCORE")
	s.DrawText(0, 5, "LINES")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "SCOR" {
		t.Errorf("Row(0) = %q, expected SCOR", got)
	}

	s.Resize(8, 6)
	if got := s.Row(0); got != "SCOR    " {
		t.Errorf("Row(0) after growing = %q, expected %q", got, "SCOR    ")
	}
	if got := s.Row(5); got != strings.Repeat(" ", 8) {
		t.Errorf("Row(5) after growing = %q, expected blank", got)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 8) {
		t.Errorf("Row(-1) = %q, expected blank", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, 'X', ColorCyan)

	cell := s.GetCell(1, 2)
	if cell.Rune != 'X' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected X in cyan", cell)
	}

	// Clear resets color as well as rune
	s.Clear()
	if cell := s.GetCell(1, 2); cell.Color != ColorDefault || cell.Rune != ' ' {
		t.Errorf("After Clear, GetCell(1, 2) = %+v, expected blank", cell)
	}

	if cell := s.GetCell(10, 10); cell.Rune != ' ' {
		t.Errorf("Out of bounds GetCell should be blank, got %+v", cell)
	}
}

func TestScreenDrawRegion(t *testing.T) {
	s := NewScreen(12, 6)
	piece := geom.MustSetRegion(geom.C(0, 0), geom.C(1, 0), geom.C(1, 1))
	s.DrawRegion(piece, geom.C(2, 1), "[]", ColorYellow)

	tests := []struct {
		x, y     int
		expected rune
	}{
		{2, 1, '['},
		{3, 1, ']'},
		{4, 1, '['},
		{5, 1, ']'},
		{4, 2, '['},
		{5, 2, ']'},
		{2, 2, ' '},
	}
	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.expected {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
		}
	}
	if s.GetCell(4, 2).Color != ColorYellow {
		t.Errorf("DrawRegion color = %v, expected yellow", s.GetCell(4, 2).Color)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(8, 3)
	r, ok := s.Bounds()
	if !ok {
		t.Fatal("Bounds() reported an empty screen")
	}
	if r != geom.MustRect(0, 0, 8, 3) {
		t.Errorf("Bounds() = %v, expected Rect[(0, 0) - (8, 3)]", r)
	}

	if _, ok := NewScreen(0, 3).Bounds(); ok {
		t.Error("Bounds() of a zero-width screen should report false")
	}
}
