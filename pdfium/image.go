//go:build pdfium && cgo

package pdfium

import (
	"image"
	"image/draw"
)

// toRGBA converts any image.Image into *image.RGBA, the concrete type
// raster.EncodeRGBA expects for its row-major, unpadded wire format.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
