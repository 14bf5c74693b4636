//go:build !matrixdebug

package matrix

// assertUniform is a no-op in normal builds. Build with -tags matrixdebug to
// enable the invariant check in invariants_debug.go.
func assertUniform(*Buffer) {}
