// Package spatial turns positioned PDF text fragments into a dense character
// grid, preserving the columnar layout of the source page at monospace
// resolution.
//
// The algorithm is deterministic: identical fragment input produces an
// identical grid. Input order matters where fragments collide: a write with
// priority at or below 100 never replaces a non-space cell, so the first such
// writer keeps it, while a write above 100 always replaces it, so the last
// such writer wins.
package spatial
