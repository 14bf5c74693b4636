package viewer

import "github.com/inkwell-dev/pdfgrid/theme"

// ScreenCell is a single abstract screen write: {char, fg, bg, attrs}
// (spec §9 "Theme / rendering abstraction"). Reverse marks the cursor cell;
// selected cells are shown through their Fg/Bg colors instead.
type ScreenCell struct {
	Char    rune
	Fg, Bg  theme.Color
	Reverse bool
}

// Screen is the abstract back-buffer the controller draws into. Every
// write is bounds-checked; writes outside [0,Width)x[0,Height) are
// silently dropped rather than panicking, mirroring the teacher's
// bounds-checked cell writes.
type Screen struct {
	width, height int
	cells         []ScreenCell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = make([]ScreenCell, width*height)
	return s
}

// Width and Height return the screen's dimensions.
func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Set writes a cell at (x, y). Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, c ScreenCell) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = c
}

// At returns the cell at (x, y), or the zero ScreenCell if out of bounds.
func (s *Screen) At(x, y int) ScreenCell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return ScreenCell{}
	}
	return s.cells[y*s.width+x]
}

// WriteString writes s starting at (x, y), one rune per column, clipping
// at the right edge.
func (s *Screen) WriteString(x, y int, str string, fg, bg theme.Color) {
	col := x
	for _, r := range str {
		s.Set(col, y, ScreenCell{Char: r, Fg: fg, Bg: bg})
		col++
	}
}

// Resize reallocates the screen to a new size, discarding prior content.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
	s.cells = make([]ScreenCell, width*height)
}
