//go:build pdfium && cgo

package pdfium

import (
	"context"
	"fmt"

	"github.com/klippa-app/go-pdfium/requests"

	"github.com/inkwell-dev/pdfgrid/raster"
)

// Render implements raster.Rasterizer, using go-pdfium's ergonomic
// RenderPageInPixels request (a thin wrapper over FPDF_RenderPageBitmap)
// rather than the raw bitmap API, since the adapter only ever needs a
// single RGBA buffer, not incremental painting.
func (a *Adapter) Render(ctx context.Context, pageIndex, maxWPx, maxHPx int) ([]byte, int, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, h := raster.ClampToSafeBounds(maxWPx, maxHPx)

	resp, err := a.instance.RenderPageInPixels(&requests.RenderPageInPixels{
		Page: requests.Page{Document: *a.document, Index: pageIndex},
		Width:  w,
		Height: h,
	})
	if err != nil {
		return nil, 0, 0, fmt.Errorf("pdfium: render page: %w", err)
	}

	rgba, outW, outH := raster.EncodeRGBA(toRGBA(resp.Result.Image))
	if raster.IsTooSmall(outW, outH) {
		return nil, 0, 0, fmt.Errorf("pdfium: rendered image %dx%d below minimum size", outW, outH)
	}
	return rgba, outW, outH, nil
}
