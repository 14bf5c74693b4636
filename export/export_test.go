package export

import (
	"strings"
	"testing"
	"time"

	"github.com/inkwell-dev/pdfgrid/matrix"
)

func fixtureBuffer() *matrix.Buffer {
	b := matrix.NewBuffer(5)
	for _, ch := range "ab" {
		b.InsertChar(ch)
	}
	b.InsertNewline()
	for _, ch := range "cd" {
		b.InsertChar(ch)
	}
	return b
}

func TestTextWithoutLineNumbers(t *testing.T) {
	got := Text(fixtureBuffer(), false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Fatalf("line 0 = %q, want prefix ab", lines[0])
	}
}

func TestTextWithLineNumbers(t *testing.T) {
	got := Text(fixtureBuffer(), true)
	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "   1 ab") {
		t.Fatalf("line 0 = %q, want prefix '   1 ab'", lines[0])
	}
	if !strings.HasPrefix(lines[1], "   2 cd") {
		t.Fatalf("line 1 = %q, want prefix '   2 cd'", lines[1])
	}
}

func TestTextHasNoTrailingNewlineBeyondLastRow(t *testing.T) {
	got := Text(fixtureBuffer(), false)
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("Text() ended with newline: %q", got)
	}
}

func TestDefaultFilenameMatchesTemplate(t *testing.T) {
	ts := time.Date(2026, 7, 31, 14, 5, 9, 0, time.UTC)
	got := DefaultFilename(ts)
	want := "matrix_export_20260731_140509.txt"
	if got != want {
		t.Fatalf("DefaultFilename() = %q, want %q", got, want)
	}
}
