// Package export implements the §6 plain-text export file format: each
// matrix row, optionally line-numbered, UTF-8 encoded.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/inkwell-dev/pdfgrid/matrix"
)

// RowSource is the minimal view of a matrix.Buffer export needs, so this
// package depends only on an interface rather than the concrete buffer.
type RowSource interface {
	Height() int
	RowLen(row int) int
	At(row, col int) rune
}

var _ RowSource = (*matrix.Buffer)(nil)

// Text renders src as plain text, one line per row. When lineNumbers is
// true, each row is prefixed with a 4-digit right-aligned line number and
// a space.
func Text(src RowSource, lineNumbers bool) string {
	var b strings.Builder
	rows := src.Height()
	for r := 0; r < rows; r++ {
		if lineNumbers {
			fmt.Fprintf(&b, "%4d ", r+1)
		}
		n := src.RowLen(r)
		for c := 0; c < n; c++ {
			b.WriteRune(src.At(r, c))
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTo writes the rendered text to w.
func WriteTo(w io.Writer, src RowSource, lineNumbers bool) (int, error) {
	return io.WriteString(w, Text(src, lineNumbers))
}

// DefaultFilename builds the default export filename for t, matching the
// `matrix_export_<YYYYMMDD_HHMMSS>.txt` template (§6).
func DefaultFilename(t time.Time) string {
	return "matrix_export_" + t.Format("20060102_150405") + ".txt"
}
