package spatial

import "context"

// Fragment is a single positioned piece of text as produced by a page text
// source. Coordinates are in page user-space units with a top-left origin,
// Y increasing downward. Callers backed by a bottom-left coordinate system
// (most native PDF libraries, PDFium included) must flip Y before handing
// fragments to Extract.
type Fragment struct {
	Text     string
	X, Y     float64
	W, H     float64
	FontSize float64
}

// TextSource produces the positioned text fragments for a single page. It is
// the sole external collaborator C2 depends on; this package never parses a
// PDF itself. See package pdfium for a concrete implementation backed by
// PDFium.
type TextSource interface {
	ExtractFragments(ctx context.Context, pageIndex int) ([]Fragment, error)
}

// trimmedNonEmpty reports whether a fragment carries visible text once
// leading/trailing whitespace is stripped, per the §4.1 contract that a
// conforming text source only emits non-empty fragments.
func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
