//go:build matrixdebug

package matrix

import "fmt"

// assertUniform panics if any row's length diverges from b.width. Only
// compiled with -tags matrixdebug; callers hold b.mu already.
func assertUniform(b *Buffer) {
	for i, row := range b.rows {
		if len(row) != b.width {
			panic(fmt.Sprintf("matrix: row %d has length %d, want %d", i, len(row), b.width))
		}
	}
}
