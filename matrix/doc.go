// Package matrix implements the editable character matrix: a grow-on-write
// 2D buffer with cursor navigation, block/line selection, and a paste
// operation that respects the active selection mode.
//
// This package pins the uniform-width auto-grow policy described in
// SPEC_FULL.md §3: widening any row widens every row, so the grid stays
// rectangular at all times. Build with -tags matrixdebug to run a debug
// assertion after every mutation that checks this invariant.
package matrix
