//go:build pdfium && cgo

package pdfium

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/single_threaded"

	"github.com/inkwell-dev/pdfgrid/spatial"
)

// Adapter wraps a single PDFium instance and document, implementing both
// spatial.TextSource (ExtractFragments) and raster.Rasterizer (Render).
// PDFium's document/page handles are not safe for concurrent use; the
// single-threaded event loop (spec §5) is the only caller, enforced here
// with a mutex as a second line of defense, matching the teacher's own
// belt-and-suspenders locking on Buffer.
type Adapter struct {
	mu       sync.Mutex
	pool     pdfium.Pool
	instance pdfium.Pdfium
	document *requests.Document
	pageCount int
}

// Open loads the PDF at path and prepares it for extraction/rendering.
func Open(path string) (*Adapter, error) {
	pool := single_threaded.Init(single_threaded.Config{})
	instance, err := pool.GetInstance(0)
	if err != nil {
		return nil, fmt.Errorf("pdfium: get instance: %w", err)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdfium: read file: %w", err)
	}

	openResp, err := instance.OpenDocument(&requests.OpenDocument{File: &file})
	if err != nil {
		return nil, fmt.Errorf("pdfium: open document: %w", err)
	}

	countResp, err := instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: openResp.Document,
	})
	if err != nil {
		return nil, fmt.Errorf("pdfium: get page count: %w", err)
	}

	return &Adapter{
		pool:      pool,
		instance:  instance,
		document:  &openResp.Document,
		pageCount: countResp.PageCount,
	}, nil
}

// PageCount returns the number of pages in the open document.
func (a *Adapter) PageCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pageCount
}

// Close releases the document and the instance's resources.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.document != nil {
		_, _ = a.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: *a.document})
	}
	return a.instance.Close()
}

// ExtractFragments implements spatial.TextSource. PDFium reports character
// boxes in a bottom-left-origin page space; every fragment's Y is flipped
// to the top-left origin spatial.Extract expects (spec §4.1/§9).
func (a *Adapter) ExtractFragments(ctx context.Context, pageIndex int) ([]spatial.Fragment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	page := requests.Page{Document: *a.document, Index: pageIndex}

	sizeResp, err := a.instance.FPDF_GetPageSizeByIndex(&requests.FPDF_GetPageSizeByIndex{
		Document: *a.document,
		Index:    pageIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("pdfium: page size: %w", err)
	}
	pageHeight := sizeResp.Height

	textPageResp, err := a.instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{Page: page})
	if err != nil {
		return nil, fmt.Errorf("pdfium: load text page: %w", err)
	}
	textPage := textPageResp.TextPage
	defer a.instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{TextPage: textPage})

	countResp, err := a.instance.FPDFText_CountChars(&requests.FPDFText_CountChars{TextPage: textPage})
	if err != nil {
		return nil, fmt.Errorf("pdfium: count chars: %w", err)
	}

	fragments := make([]spatial.Fragment, 0, countResp.Count)
	for i := 0; i < countResp.Count; i++ {
		charResp, err := a.instance.FPDFText_GetUnicodeChar(&requests.FPDFText_GetUnicodeChar{
			TextPage: textPage,
			Index:    i,
		})
		if err != nil || charResp.UnicodeChar == 0 {
			continue
		}

		boxResp, err := a.instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPage,
			Index:    i,
		})
		if err != nil {
			continue
		}

		sizeResp, err := a.instance.FPDFText_GetFontSize(&requests.FPDFText_GetFontSize{
			TextPage: textPage,
			Index:    i,
		})
		fontSize := 0.0
		if err == nil {
			fontSize = sizeResp.FontSize
		}

		fragments = append(fragments, spatial.Fragment{
			Text:     string(charResp.UnicodeChar),
			X:        boxResp.Left,
			Y:        pageHeight - boxResp.Top, // flip bottom-left -> top-left origin
			W:        boxResp.Right - boxResp.Left,
			H:        boxResp.Top - boxResp.Bottom,
			FontSize: fontSize,
		})
	}

	return fragments, nil
}
