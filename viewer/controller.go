// Package viewer implements the §4.6 Viewer Controller: the top-level
// application state, the single-threaded cooperative event loop's input
// routing, and the status-line/error-mapping surface that ties every other
// component together. It draws the §4.7 log pane held by package logpane.
package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/inkwell-dev/pdfgrid/clipboard"
	"github.com/inkwell-dev/pdfgrid/config"
	"github.com/inkwell-dev/pdfgrid/export"
	"github.com/inkwell-dev/pdfgrid/logpane"
	"github.com/inkwell-dev/pdfgrid/matrix"
	"github.com/inkwell-dev/pdfgrid/raster"
	"github.com/inkwell-dev/pdfgrid/spatial"
	"github.com/inkwell-dev/pdfgrid/theme"
)

// inputMode tracks which input routing branch is active (§4.6).
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilePicker
	modeSearchInput
)

// SearchHit is a single exact-substring match produced by a search.
type SearchHit struct {
	Row, Col int
}

// letterPageWidthPt/HeightPt are the US Letter page dimensions used to size
// an extracted grid when no PDF-reported page size is available.
const (
	letterPageWidthPt  = 612.0
	letterPageHeightPt = 792.0
)

// splitRatioStep is how far each Ctrl+[ / Ctrl+] press moves the PDF/matrix
// pane divider, kept within [minSplitRatio, maxSplitRatio] so neither pane
// collapses to nothing.
const (
	splitRatioStep = 0.05
	minSplitRatio  = 0.15
	maxSplitRatio  = 0.85
)

// Controller owns the top-level application state and event loop.
type Controller struct {
	cfg        config.Config
	logger     *zap.Logger
	clip       *clipboard.Adapter
	logPane    *logpane.Pane
	textSource spatial.TextSource
	rasterizer raster.Rasterizer

	pdfPath    string
	pageIndex  int
	totalPages int
	zoom       float64

	buf *matrix.Buffer

	cursorBlinkOn bool
	pdfScroll     int
	matrixScroll  int

	mode        inputMode
	searchQuery string
	searchHits  []SearchHit
	searchIdx   int

	filePickerDir     string
	filePickerEntries []string
	filePickerIdx     int

	theme          theme.Theme
	darkMode       bool
	lineNumbers    bool
	helpOverlay    bool
	logPaneVisible bool
	splitRatio     float64

	lastScreenW, lastScreenH int
	mouseDragActive          bool
	dragAnchor               matrix.Position

	status string
	quit   bool
}

// MouseEvent is a single SGR mouse report translated into screen
// coordinates (0-based, top-left origin), per §4.6's mouse operations.
type MouseEvent struct {
	X, Y    int
	Button  int
	Pressed bool
	Shift   bool
	Motion  bool
}

// New builds a controller. rz and ts may be nil (no PDF engine compiled
// in); operations that need them report "Input unavailable" / a render
// placeholder instead of panicking.
func New(cfg config.Config, logger *zap.Logger, logPane *logpane.Pane, clip *clipboard.Adapter, ts spatial.TextSource, rz raster.Rasterizer) *Controller {
	cfg = cfg.ApplyDefaults()
	return &Controller{
		cfg:            cfg,
		logger:         logger,
		clip:           clip,
		logPane:        logPane,
		textSource:     ts,
		rasterizer:     rz,
		zoom:           1.0,
		buf:            matrix.NewBuffer(cfg.DefaultRowWidth),
		theme:          cfg.Theme,
		darkMode:       true,
		splitRatio:     0.5,
		logPaneVisible: true,
	}
}

// Buffer exposes the matrix buffer for rendering.
func (c *Controller) Buffer() *matrix.Buffer { return c.buf }

// Status returns the current status-line text.
func (c *Controller) Status() string { return c.status }

// Quit reports whether the event loop should stop.
func (c *Controller) Quit() bool { return c.quit }

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// Tick advances cursor-blink state; called once per event-loop iteration
// regardless of whether an input event was present (§4.6 event loop
// contract).
func (c *Controller) Tick() {
	c.cursorBlinkOn = !c.cursorBlinkOn
}

// HandleKey routes a single key event per §4.6.
func (c *Controller) HandleKey(key string) {
	switch c.mode {
	case modeFilePicker:
		c.handleFilePickerKey(key)
		return
	case modeSearchInput:
		c.handleSearchInputKey(key)
		return
	}

	switch key {
	case "C-q":
		c.quit = true
	case "C-o":
		c.openFilePicker()
	case "C-e", "C-m":
		c.extractCurrentPage()
	case "C-s":
		c.exportMatrix()
	case "C-f":
		c.mode = modeSearchInput
		c.searchQuery = ""
	case "F3":
		c.searchNext()
	case "F2":
		c.searchPrev()
	case "C-c":
		c.copySelection()
	case "C-x":
		c.cutSelection()
	case "C-v":
		c.pasteClipboard()
	case "C-+", "C-=":
		c.zoomBy(c.cfg.ZoomStep)
	case "C--":
		c.zoomBy(1 / c.cfg.ZoomStep)
	case "C-0":
		c.zoom = 1.0
		c.status = ""
	case "Up":
		c.moveCursor(matrix.Up)
	case "Down":
		c.moveCursor(matrix.Down)
	case "Left":
		c.moveCursor(matrix.Left)
	case "Right":
		c.moveCursor(matrix.Right)
	case "Home":
		c.moveCursor(matrix.Home)
	case "End":
		c.moveCursor(matrix.End)
	case "S-Up":
		c.extendSelection(matrix.Up)
	case "S-Down":
		c.extendSelection(matrix.Down)
	case "S-Left":
		c.extendSelection(matrix.Left)
	case "S-Right":
		c.extendSelection(matrix.Right)
	case "Backspace":
		c.buf.ClearSelection()
		c.buf.DeleteBackward()
	case "Delete":
		c.buf.ClearSelection()
		c.buf.DeleteAtCursor()
	case "Enter":
		c.buf.ClearSelection()
		c.buf.InsertNewline()
	case "C-l":
		c.lineNumbers = !c.lineNumbers
	case "C-t":
		c.darkMode = !c.darkMode
	case "C-g":
		c.logPaneVisible = !c.logPaneVisible
	case "C-[":
		c.adjustSplitRatio(-splitRatioStep)
	case "C-]":
		c.adjustSplitRatio(splitRatioStep)
	case "F1":
		c.helpOverlay = !c.helpOverlay
	default:
		if r, ok := singleRune(key); ok && unicode.IsPrint(r) {
			c.buf.ClearSelection()
			c.buf.InsertChar(r)
		}
	}
}

func (c *Controller) moveCursor(dir matrix.Direction) {
	c.buf.ClearSelection()
	c.buf.MoveCursor(dir)
}

func (c *Controller) extendSelection(dir matrix.Direction) {
	before := c.buf.Cursor()
	c.buf.MoveCursor(dir)
	after := c.buf.Cursor()
	if !c.buf.HasSelection() {
		c.buf.SetSelection(before, after, matrix.Block)
		return
	}
	c.buf.ExtendSelectionTo(after, matrix.Block)
}

func (c *Controller) copySelection() {
	text, ok := c.buf.GetSelectedText()
	if !ok {
		c.status = "No selection to copy"
		return
	}
	if err := c.clip.Set(text); err != nil {
		c.status = "Clipboard failure"
		c.logger.Warn("clipboard set failed", zap.Error(err))
	} else {
		c.status = ""
	}
}

func (c *Controller) cutSelection() {
	text, ok := c.buf.GetSelectedText()
	if !ok {
		c.status = "No selection to cut"
		return
	}
	if err := c.clip.Set(text); err != nil {
		c.status = "Clipboard failure"
		c.logger.Warn("clipboard set failed", zap.Error(err))
	}
	c.buf.DeleteSelection()
}

func (c *Controller) pasteClipboard() {
	text, ok := c.clip.Get()
	if !ok {
		c.status = "Clipboard empty"
		return
	}
	sanitized := matrix.Sanitize(text)
	mode, stripped := matrix.DetectMode(sanitized)
	c.buf.Paste(stripped, mode)
	c.status = ""
}

func (c *Controller) zoomBy(factor float64) {
	candidate := c.zoom * factor
	switch {
	case candidate > c.cfg.MaxZoom+1e-9:
		c.status = fmt.Sprintf("Maximum zoom reached (%.0f%%)", c.cfg.MaxZoom*100)
	case candidate < c.cfg.MinZoom-1e-9:
		c.status = fmt.Sprintf("Minimum zoom reached (%.0f%%)", c.cfg.MinZoom*100)
	default:
		c.zoom = candidate
		c.status = ""
	}
}

func (c *Controller) adjustSplitRatio(delta float64) {
	r := c.splitRatio + delta
	if r < minSplitRatio {
		r = minSplitRatio
	}
	if r > maxSplitRatio {
		r = maxSplitRatio
	}
	c.splitRatio = r
}

// HandleMouse routes a decoded SGR mouse report per §4.6: left-click
// positions the cursor, drag extends a selection, Shift+click starts a
// selection from the current cursor, and a click outside the matrix pane
// clears any active selection.
func (c *Controller) HandleMouse(ev MouseEvent) {
	if c.lastScreenW <= 0 || c.lastScreenH <= 0 || ev.Button != 0 {
		return
	}
	l := c.layout(c.lastScreenW, c.lastScreenH)
	if ev.Y < 0 || ev.Y >= l.contentHeight || ev.X < l.splitCol {
		if ev.Pressed && !ev.Motion {
			c.buf.ClearSelection()
			c.mouseDragActive = false
		}
		return
	}

	pos := c.clampToBuffer(matrix.Position{
		Row: ev.Y,
		Col: ev.X - l.splitCol - l.gutter,
	})

	switch {
	case ev.Motion:
		if c.mouseDragActive {
			c.buf.SetSelection(c.dragAnchor, pos, matrix.Block)
			c.buf.SetCursor(pos)
		}
	case ev.Shift:
		anchor := c.buf.Cursor()
		if sel, ok := c.buf.SelectionValue(); ok {
			anchor = sel.Anchor
		}
		c.buf.SetSelection(anchor, pos, matrix.Block)
		c.buf.SetCursor(pos)
		c.dragAnchor = anchor
		c.mouseDragActive = true
	default:
		c.buf.ClearSelection()
		c.buf.SetCursor(pos)
		c.dragAnchor = pos
		c.mouseDragActive = true
	}

	if !ev.Pressed {
		c.mouseDragActive = false
	}
}

func (c *Controller) clampToBuffer(p matrix.Position) matrix.Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if h := c.buf.Height(); h > 0 && p.Row >= h {
		p.Row = h - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := c.buf.RowLen(p.Row); n > 0 && p.Col >= n {
		p.Col = n - 1
	} else if n == 0 {
		p.Col = 0
	}
	return p
}

func (c *Controller) extractCurrentPage() {
	if c.textSource == nil {
		c.status = describeError(ErrInputUnavailable)
		return
	}
	frags, err := c.textSource.ExtractFragments(context.Background(), c.pageIndex)
	if err != nil || len(frags) == 0 {
		c.status = describeError(ErrExtractionFailure)
		if err != nil {
			c.logger.Warn("extract fragments failed", zap.Error(err))
		}
		return
	}
	cols := int(letterPageWidthPt / c.cfg.CellWidth)
	rows := int(letterPageHeightPt / c.cfg.CellHeight)
	grid := spatial.Extract(frags, cols, rows, spatial.Options{CellWidth: c.cfg.CellWidth, CellHeight: c.cfg.CellHeight})
	c.buf.Load(grid)
	c.status = fmt.Sprintf("Extracted page %d", c.pageIndex+1)
}

func (c *Controller) exportMatrix() {
	text := export.Text(c.buf, c.lineNumbers)
	name := export.DefaultFilename(time.Now())
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		c.status = "Export failed"
		c.logger.Warn("export failed", zap.Error(err))
		return
	}
	c.status = "Exported to " + name
}

func (c *Controller) openFilePicker() {
	dir := c.filePickerDir
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.status = "File picker unavailable"
		c.logger.Warn("read dir failed", zap.Error(err))
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".pdf") || strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	c.filePickerDir = dir
	c.filePickerEntries = names
	c.filePickerIdx = 0
	c.mode = modeFilePicker
}

func (c *Controller) handleFilePickerKey(key string) {
	switch key {
	case "Up":
		if c.filePickerIdx > 0 {
			c.filePickerIdx--
		}
	case "Down":
		if c.filePickerIdx < len(c.filePickerEntries)-1 {
			c.filePickerIdx++
		}
	case "Enter":
		if len(c.filePickerEntries) > 0 {
			c.pdfPath = filepath.Join(c.filePickerDir, c.filePickerEntries[c.filePickerIdx])
			c.status = "Opened " + c.pdfPath
		}
		c.mode = modeNormal
	case "Esc":
		c.mode = modeNormal
	}
}

func (c *Controller) handleSearchInputKey(key string) {
	switch key {
	case "Enter":
		c.runSearch()
		c.mode = modeNormal
	case "Esc":
		c.mode = modeNormal
		c.searchQuery = ""
	case "Backspace":
		if r := []rune(c.searchQuery); len(r) > 0 {
			c.searchQuery = string(r[:len(r)-1])
		}
	default:
		if r, ok := singleRune(key); ok && unicode.IsPrint(r) {
			c.searchQuery += string(r)
		}
	}
}

func (c *Controller) runSearch() {
	c.searchHits = nil
	if c.searchQuery == "" {
		return
	}
	for row := 0; row < c.buf.Height(); row++ {
		line := rowText(c.buf, row)
		start := 0
		for {
			idx := strings.Index(line[start:], c.searchQuery)
			if idx < 0 {
				break
			}
			col := start + idx
			c.searchHits = append(c.searchHits, SearchHit{Row: row, Col: col})
			start = col + 1
		}
	}
	c.searchIdx = 0
	if len(c.searchHits) == 0 {
		c.status = "No matches"
		return
	}
	c.status = ""
	c.jumpToHit(0)
}

func (c *Controller) searchNext() {
	if len(c.searchHits) == 0 {
		return
	}
	c.searchIdx = (c.searchIdx + 1) % len(c.searchHits)
	c.jumpToHit(c.searchIdx)
}

func (c *Controller) searchPrev() {
	if len(c.searchHits) == 0 {
		return
	}
	c.searchIdx = (c.searchIdx - 1 + len(c.searchHits)) % len(c.searchHits)
	c.jumpToHit(c.searchIdx)
}

func (c *Controller) jumpToHit(i int) {
	hit := c.searchHits[i]
	c.buf.SetCursor(matrix.Position{Row: hit.Row, Col: hit.Col})
}

func rowText(b *matrix.Buffer, row int) string {
	n := b.RowLen(row)
	rs := make([]rune, n)
	for i := 0; i < n; i++ {
		rs[i] = b.At(row, i)
	}
	return string(rs)
}

// singleRune reports whether key decodes to exactly one rune, the
// direct-key-handler convention for a literal printable keypress as
// opposed to a named key like "Enter" or "C-c".
func singleRune(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, false
	}
	return r, true
}
