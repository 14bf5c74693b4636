package matrix

import "sync"

// DefaultRowWidth is used when auto-grow must create the buffer's first row
// and no wider row has been written yet (§4.3 auto-grow rule).
const DefaultRowWidth = 80

// Buffer is a grow-on-write 2D character buffer. It is the unique owner of
// its grid; Selection holds only copyable position values, never a
// reference into Buffer's rows. Buffer pins the uniform-width auto-grow
// policy (§3): widening any row widens the whole buffer.
//
// A mutex guards every exported method, matching the teacher's own Buffer
// (buffer.go in the original terminal emulator this package is adapted
// from), even though the viewer's single-threaded event loop never calls in
// from more than one goroutine.
type Buffer struct {
	mu sync.Mutex

	rows  [][]rune
	width int // 0 until the first row is created

	defaultWidth int
	cursor       Position
	sel          *Selection
	modified     bool
}

// NewBuffer creates an empty buffer. defaultWidth is the row width used the
// first time auto-grow needs to create a row; DefaultRowWidth (80) is used
// if defaultWidth <= 0.
func NewBuffer(defaultWidth int) *Buffer {
	if defaultWidth <= 0 {
		defaultWidth = DefaultRowWidth
	}
	return &Buffer{defaultWidth: defaultWidth}
}

// Height implements GridSource.
func (b *Buffer) Height() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows)
}

// RowLen implements GridSource. Buffer is always uniform-width, so every
// in-range row reports the same length.
func (b *Buffer) RowLen(row int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return b.width
}

// At implements GridSource.
func (b *Buffer) At(row, col int) rune {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cellLocked(row, col)
}

func (b *Buffer) cellLocked(row, col int) rune {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= b.width {
		return ' '
	}
	return b.rows[row][col]
}

// HasContent reports whether the buffer has at least one row.
func (b *Buffer) HasContent() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows) > 0
}

// Modified reports whether the buffer has been mutated since the last Load.
func (b *Buffer) Modified() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modified
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

// SetCursor places the cursor directly, without clamping or growing the
// buffer. A cursor position may legally exceed the buffer's current extents
// (§3 Position); only writes expand the grid.
func (b *Buffer) SetCursor(p Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = p
}

// Load replaces the buffer's contents from src, resets the cursor to
// (0,0), clears any selection, and clears the modified flag (§4.3).
func (b *Buffer) Load(src GridSource) {
	b.mu.Lock()
	defer b.mu.Unlock()

	h := src.Height()
	width := 0
	for r := 0; r < h; r++ {
		if l := src.RowLen(r); l > width {
			width = l
		}
	}
	rows := make([][]rune, h)
	for r := 0; r < h; r++ {
		row := make([]rune, width)
		rl := src.RowLen(r)
		for c := 0; c < width; c++ {
			if c < rl {
				row[c] = src.At(r, c)
			} else {
				row[c] = ' '
			}
		}
		rows[r] = row
	}
	b.rows = rows
	b.width = width
	b.cursor = Position{}
	b.sel = nil
	b.modified = false
	assertUniform(b)
}

// growTo ensures row and col are writable, applying the uniform-width
// policy: if col would widen the grid, every row is widened, not just the
// target row (§3, §9).
func (b *Buffer) growTo(row, col int) {
	width := b.width
	if width == 0 {
		width = b.defaultWidth
	}
	if col+1 > width {
		width = col + 1
	}
	if width > b.width {
		for i := range b.rows {
			b.rows[i] = padRow(b.rows[i], width)
		}
		b.width = width
	}
	for len(b.rows) <= row {
		b.rows = append(b.rows, newRow(b.width))
	}
	assertUniform(b)
}

func padRow(row []rune, width int) []rune {
	if len(row) >= width {
		return row
	}
	out := make([]rune, width)
	copy(out, row)
	for i := len(row); i < width; i++ {
		out[i] = ' '
	}
	return out
}

func newRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// clearSelectionOnEdit implements the §9 recommended contract: any mutating
// edit other than DeleteSelection itself clears an outstanding selection,
// since there is no defined semantics for adjusting it under a shrinking or
// shifting edit.
func (b *Buffer) clearSelectionOnEdit() {
	b.sel = nil
}

// InsertChar writes ch at the cursor, advances the cursor one column right,
// and marks the buffer modified (§4.3).
func (b *Buffer) InsertChar(ch rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.growTo(b.cursor.Row, b.cursor.Col)
	b.rows[b.cursor.Row][b.cursor.Col] = ch
	b.cursor.Col++
	b.modified = true
	b.clearSelectionOnEdit()
}

// InsertNewline moves the cursor to (row+1, 0), auto-growing rows as needed.
func (b *Buffer) InsertNewline() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor.Row++
	b.cursor.Col = 0
	b.growTo(b.cursor.Row, 0)
	b.modified = true
	b.clearSelectionOnEdit()
}

// DeleteBackward decrements the column and blanks that cell; a no-op at
// column 0 (§4.3, §8 boundary behavior).
func (b *Buffer) DeleteBackward() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursor.Col == 0 {
		return
	}
	b.cursor.Col--
	if b.cursor.Row >= 0 && b.cursor.Row < len(b.rows) && b.cursor.Col < b.width {
		b.rows[b.cursor.Row][b.cursor.Col] = ' '
	}
	b.modified = true
	b.clearSelectionOnEdit()
}

// DeleteAtCursor blanks the cell under the cursor; a no-op past the end.
func (b *Buffer) DeleteAtCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursor.Row < 0 || b.cursor.Row >= len(b.rows) || b.cursor.Col < 0 || b.cursor.Col >= b.width {
		return
	}
	b.rows[b.cursor.Row][b.cursor.Col] = ' '
	b.modified = true
	b.clearSelectionOnEdit()
}
