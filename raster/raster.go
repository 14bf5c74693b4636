// Package raster implements the §4.5 Page Rasterizer component: the
// zoom-clamp and aspect-fit sizing logic shared by every concrete
// rasterizer, plus the Rasterizer interface itself (C5) so the viewer
// depends only on this package, never on a specific PDF engine.
package raster

import (
	"context"
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// MinRenderPx and MaxRenderPx bound the pixel dimensions a Rasterizer may
// be asked to produce, regardless of the requested zoom, to avoid
// pathological memory or latency (spec §4.5).
const (
	MinRenderPx = 500
	MaxRenderPx = 1500
)

// ErrUnavailable is returned by a Rasterizer that cannot render, e.g. the
// placeholder used when no PDF engine is compiled in.
var ErrUnavailable = errors.New("raster: no rasterizer available")

// Rasterizer produces an RGBA pixel buffer for a page, sized to fit within
// maxWPx x maxHPx. rgba is row-major, 4 bytes per pixel, no padding,
// matching the §6 external interface.
type Rasterizer interface {
	Render(ctx context.Context, pageIndex, maxWPx, maxHPx int) (rgba []byte, w, h int, err error)
}

// AspectFit computes the largest w x h that fits within maxW x maxH while
// preserving the src aspect ratio. Falls back to the bounding box itself
// when the source dimensions are unknown (<= 0).
func AspectFit(srcW, srcH, maxW, maxH int) (w, h int) {
	if srcW <= 0 || srcH <= 0 {
		return maxW, maxH
	}
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w = int(math.Round(float64(srcW) * scale))
	h = int(math.Round(float64(srcH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ClampToSafeBounds clamps each dimension independently into
// [MinRenderPx, MaxRenderPx].
func ClampToSafeBounds(w, h int) (int, int) {
	return clampAxis(w), clampAxis(h)
}

func clampAxis(v int) int {
	switch {
	case v < MinRenderPx:
		return MinRenderPx
	case v > MaxRenderPx:
		return MaxRenderPx
	default:
		return v
	}
}

// IsTooSmall reports whether a rendered image falls below the 50x50
// minimum usable size (spec §7, "Render failure").
func IsTooSmall(w, h int) bool {
	return w < 50 || h < 50
}

// Scale resizes src to exactly w x h using bilinear interpolation,
// grounded on golang.org/x/image/draw's scaler.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// EncodeRGBA flattens img into the row-major, unpadded byte buffer the §6
// wire contract specifies.
func EncodeRGBA(img *image.RGBA) (buf []byte, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if img.Stride == w*4 {
		return img.Pix, w, h
	}
	buf = make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		srcRow := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(buf[y*w*4:(y+1)*w*4], srcRow)
	}
	return buf, w, h
}
