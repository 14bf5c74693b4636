package matrix

import (
	"strings"
	"unicode"
)

// Sanitize prepares pasted text per §4.3: tabs become 4 spaces, CR becomes
// LF, and control characters other than LF and space are dropped. Sanitize
// is idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteString("    ")
		case r == '\r':
			b.WriteRune('\n')
		case r == '\n' || !unicode.IsControl(r):
			b.WriteRune(r)
		default:
			// drop other control characters
		}
	}
	return b.String()
}

// DetectMode applies the §4.3 rectangularity heuristic to decide whether a
// paste payload should be treated as Block or Line when the caller (the
// viewer, reading from the clipboard) does not specify one explicitly. The
// input is treated as a block if every line's length differs from the
// first by at most 2, or if every line shares the same count of leading
// spaces. Returns the mode and, for a detected block, the text with the
// shared leading-space run stripped.
func DetectMode(text string) (mode Mode, adjusted string) {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return Line, text
	}

	firstLen := len([]rune(lines[0]))
	similarLength := true
	for _, l := range lines {
		if diff := len([]rune(l)) - firstLen; diff > 2 || diff < -2 {
			similarLength = false
			break
		}
	}

	leading := leadingSpaces(lines[0])
	sharedIndent := true
	for _, l := range lines {
		if leadingSpaces(l) != leading {
			sharedIndent = false
			break
		}
	}

	if !similarLength && !sharedIndent {
		return Line, text
	}

	if sharedIndent && leading > 0 {
		stripped := make([]string, len(lines))
		for i, l := range lines {
			if len(l) >= leading {
				stripped[i] = l[leading:]
			} else {
				stripped[i] = l
			}
		}
		return Block, strings.Join(stripped, "\n")
	}
	return Block, text
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

// Paste writes text at the cursor per §4.3's Block/Line semantics.
//
// Block mode writes every line at (startRow+i, startCol) regardless of line
// length, widening rows as needed, and leaves the cursor at the start
// position so pasting columnar data preserves rectangular structure.
//
// Line mode writes the first line at the cursor column, but every
// subsequent line starts at column 0 (§8 Scenario S3: pasting "ab\ncd" with
// the cursor at (0,2) leaves "cd" at row 1 columns 0-1, the same place a
// newline followed by typed text would land), then moves the cursor to the
// end of the last pasted line.
//
// In both modes, characters extending past the current width widen the
// buffer; under the uniform-width policy (§3) every row widens to match.
func (b *Buffer) Paste(text string, mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clean := Sanitize(text)
	lines := strings.Split(clean, "\n")
	startRow, startCol := b.cursor.Row, b.cursor.Col

	lastLineLen := 0
	for i, line := range lines {
		row := startRow + i
		col := startCol
		if mode == Line && i > 0 {
			col = 0
		}
		runes := []rune(line)
		lastLineLen = len(runes)
		for _, ch := range runes {
			b.growTo(row, col)
			b.rows[row][col] = ch
			col++
		}
		if len(runes) == 0 {
			b.growTo(row, col)
		}
	}

	switch mode {
	case Block:
		b.cursor = Position{Row: startRow, Col: startCol}
	default: // Line
		if len(lines) == 1 {
			b.cursor = Position{Row: startRow, Col: startCol + lastLineLen}
		} else {
			b.cursor = Position{Row: startRow + len(lines) - 1, Col: lastLineLen}
		}
	}

	b.modified = true
	b.clearSelectionOnEdit()
}
