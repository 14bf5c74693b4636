package raster

import "context"

// Placeholder is a Rasterizer that always fails, used when the module is
// built without a PDF engine (no pdfium build tag). The viewer does not call
// Render: its PDF pane draws text lines only and never shows page pixels.
type Placeholder struct{}

// Render always returns ErrUnavailable.
func (Placeholder) Render(ctx context.Context, pageIndex, maxWPx, maxHPx int) ([]byte, int, int, error) {
	return nil, 0, 0, ErrUnavailable
}
