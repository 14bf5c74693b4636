package matrix

import "testing"

func blankBuffer(rows, cols int) *Buffer {
	b := NewBuffer(cols)
	for r := 0; r < rows; r++ {
		b.SetCursor(Position{r, cols - 1})
		b.InsertChar(' ')
		b.DeleteBackward()
	}
	return b
}

func TestBackspaceAtColumnZeroIsNoOp(t *testing.T) {
	b := NewBuffer(10)
	b.InsertChar('a')
	b.SetCursor(Position{0, 0})
	b.DeleteBackward()
	if got := b.Cursor(); got != (Position{0, 0}) {
		t.Fatalf("cursor = %v, want unchanged at (0,0)", got)
	}
}

func TestCursorDownPastLastRowGrowsByOneRow(t *testing.T) {
	b := NewBuffer(10)
	b.InsertChar('a')
	before := b.Height()
	b.MoveCursor(Down)
	if got := b.Height(); got != before+1 {
		t.Fatalf("height = %d, want %d", got, before+1)
	}
}

func TestRightAtEndOfRowWidensByOneColumn(t *testing.T) {
	b := NewBuffer(3)
	b.InsertChar('a')
	b.InsertChar('b')
	b.InsertChar('c')
	before := b.RowLen(0)
	b.MoveCursor(Right)
	if got := b.RowLen(0); got != before+1 {
		t.Fatalf("row width = %d, want %d", got, before+1)
	}
}

// TestScenarioS2BlockPastePreservesColumns pins spec §8 Scenario S2.
func TestScenarioS2BlockPastePreservesColumns(t *testing.T) {
	b := blankBuffer(3, 10)
	b.SetCursor(Position{0, 2})
	b.Paste("ab\ncd\nef", Block)

	want := map[[2]int]string{{0, 2}: "ab", {1, 2}: "cd", {2, 2}: "ef"}
	for pos, s := range want {
		got := string([]rune{b.At(pos[0], pos[1]), b.At(pos[0], pos[1]+1)})
		if got != s {
			t.Errorf("row %d cols %d-%d = %q, want %q", pos[0], pos[1], pos[1]+1, got, s)
		}
	}
	if got := b.Cursor(); got != (Position{0, 2}) {
		t.Fatalf("cursor = %v, want (0,2)", got)
	}
}

// TestScenarioS3LinePasteMovesCursor pins spec §8 Scenario S3.
func TestScenarioS3LinePasteMovesCursor(t *testing.T) {
	b := blankBuffer(3, 10)
	b.SetCursor(Position{0, 2})
	b.Paste("ab\ncd", Line)

	if got := string([]rune{b.At(0, 2), b.At(0, 3)}); got != "ab" {
		t.Fatalf("row 0 cols 2-3 = %q, want ab", got)
	}
	if got := string([]rune{b.At(1, 0), b.At(1, 1)}); got != "cd" {
		t.Fatalf("row 1 cols 0-1 = %q, want cd", got)
	}
	if got := b.Cursor(); got != (Position{1, 2}) {
		t.Fatalf("cursor = %v, want (1,2)", got)
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	b := NewBuffer(10)
	for _, ch := range "hello" {
		b.InsertChar(ch)
	}
	b.SetSelection(Position{0, 0}, Position{0, 4}, Block)
	text, ok := b.GetSelectedText()
	if !ok || text != "hello" {
		t.Fatalf("GetSelectedText() = %q, %v, want hello, true", text, ok)
	}

	b.SetCursor(Position{0, 0})
	b.Paste(text, Block)
	for i, ch := range "hello" {
		if got := b.At(0, i); got != ch {
			t.Fatalf("cell (0,%d) = %q, want %q after round trip", i, got, ch)
		}
	}
}

func TestDeleteThenPasteRestoresRegion(t *testing.T) {
	b := NewBuffer(10)
	for _, ch := range "hello" {
		b.InsertChar(ch)
	}
	b.SetSelection(Position{0, 0}, Position{0, 4}, Block)
	text, _ := b.GetSelectedText()

	b.DeleteSelection()
	b.SetCursor(Position{0, 0})
	b.Paste(text, Block)

	for i, ch := range "hello" {
		if got := b.At(0, i); got != ch {
			t.Fatalf("cell (0,%d) = %q, want %q after delete+paste", i, got, ch)
		}
	}
}

func TestSelectAllCopyPasteIsNoOp(t *testing.T) {
	b := NewBuffer(5)
	for _, ch := range "ab" {
		b.InsertChar(ch)
	}
	b.InsertNewline()
	for _, ch := range "cd" {
		b.InsertChar(ch)
	}

	before := snapshot(b)
	b.SelectAll()
	text, _ := b.GetSelectedText()
	b.SetCursor(Position{0, 0})
	b.Paste(text, Block)
	after := snapshot(b)

	if before != after {
		t.Fatalf("select-all copy/paste changed content:\nbefore=%q\nafter=%q", before, after)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	input := "a\tb\rc\x01d\ne"
	once := Sanitize(input)
	twice := Sanitize(once)
	if once != twice {
		t.Fatalf("Sanitize not idempotent: %q != %q", once, twice)
	}
}

func snapshot(b *Buffer) string {
	s := ""
	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.RowLen(r); c++ {
			s += string(b.At(r, c))
		}
		s += "\n"
	}
	return s
}
