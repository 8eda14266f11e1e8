package core

import (
	"strings"
)

// Screen is a 2D rune buffer. It stands in for a terminal when pixels need to
// be inspected as a grid, e.g. for snapshots or headless runs.
type Screen struct {
	width  int
	height int
	cells  [][]rune
}

// NewScreen creates a blank screen of the given size.
func NewScreen(size ScreenSize) *Screen {
	s := &Screen{
		width:  Max(size.W, 0),
		height: Max(size.H, 0),
	}
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
	s.Clear()
	return s
}

// Size returns the screen dimensions.
func (s *Screen) Size() ScreenSize {
	return ScreenSize{W: s.width, H: s.height}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Contains reports whether pos is a cell of the screen.
func (s *Screen) Contains(pos ScreenPos) bool {
	return pos.X >= 0 && pos.X < s.width && pos.Y >= 0 && pos.Y < s.height
}

// Set places a rune at the given position and reports whether it landed.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(pos ScreenPos, r rune) bool {
	if !s.Contains(pos) {
		return false
	}
	s.cells[pos.Y][pos.X] = r
	return true
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(pos ScreenPos) rune {
	if !s.Contains(pos) {
		return ' '
	}
	return s.cells[pos.Y][pos.X]
}

// Paint writes pixels in order; later pixels overwrite earlier ones.
// It returns how many pixels landed inside the screen.
func (s *Screen) Paint(pixels []Pixel) int {
	painted := 0
	for _, p := range pixels {
		if s.Set(p.Pos, p.Glyph) {
			painted++
		}
	}
	return painted
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.Get(NewScreenPos(x, y)))
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
