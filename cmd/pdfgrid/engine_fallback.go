//go:build !(pdfium && cgo)

package main

import (
	"github.com/inkwell-dev/pdfgrid/raster"
	"github.com/inkwell-dev/pdfgrid/spatial"
)

// newEngine is the no-PDFium build: it always reports "Input unavailable"
// for extraction and renders a text placeholder, so the module builds
// without the system PDFium library (spec §4.10).
func newEngine(pdfPath string) (spatial.TextSource, raster.Rasterizer, func() error, error) {
	return nil, raster.Placeholder{}, nil, nil
}
