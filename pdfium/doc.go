//go:build pdfium && cgo

// Package pdfium implements the §4.10 PDFium Adapter: a concrete
// spatial.TextSource and raster.Rasterizer backed by
// github.com/klippa-app/go-pdfium, the Go binding for the PDFium engine
// used by original_source's pdfium-render-based extractor and rasterizer.
//
// This package requires the system PDFium library and is only compiled
// with -tags pdfium (cgo is implied). Without the tag, cmd/pdfgrid falls
// back to raster.Placeholder and a text source that reports "Input
// unavailable", so the rest of the module always builds.
package pdfium
