//go:build pdfium && cgo

package main

import (
	"github.com/inkwell-dev/pdfgrid/pdfium"
	"github.com/inkwell-dev/pdfgrid/raster"
	"github.com/inkwell-dev/pdfgrid/spatial"
)

// newEngine opens pdfPath with PDFium when given. With no path, the viewer
// starts with no document open (Ctrl+O still works to pick one later;
// re-opening through the file picker currently requires a restart since
// the PDFium document handle is created once at startup).
func newEngine(pdfPath string) (spatial.TextSource, raster.Rasterizer, func() error, error) {
	if pdfPath == "" {
		return nil, raster.Placeholder{}, nil, nil
	}
	adapter, err := pdfium.Open(pdfPath)
	if err != nil {
		return nil, raster.Placeholder{}, nil, err
	}
	return adapter, adapter, adapter.Close, nil
}
