package viewer

import (
	"fmt"

	"github.com/inkwell-dev/pdfgrid/matrix"
)

// logPaneHeight is the number of rows given to the log pane when visible.
const logPaneHeight = 6

// layout computes the §4.6 pane geometry for a w x h screen. HandleMouse
// uses the same arithmetic to translate a click back into pane-relative
// coordinates, so this is the one place the split/log/gutter math lives.
type layout struct {
	splitCol      int
	contentHeight int
	logRows       int
	gutter        int
}

func (c *Controller) layout(w, h int) layout {
	logRows := 0
	if c.logPane != nil && c.logPane.Len() > 0 && c.logPaneVisible {
		logRows = logPaneHeight
		if logRows > h-2 {
			logRows = h - 2
		}
		if logRows < 0 {
			logRows = 0
		}
	}
	contentHeight := h - 1 - logRows
	if contentHeight < 0 {
		contentHeight = 0
	}
	gutter := 0
	if c.lineNumbers {
		gutter = 5
	}
	return layout{
		splitCol:      int(float64(w) * c.splitRatio),
		contentHeight: contentHeight,
		logRows:       logRows,
		gutter:        gutter,
	}
}

// Draw renders the full application layout into screen: a PDF pane, a
// matrix pane, a status line, and (when toggled) a log pane at the
// bottom (§4.6 "composes a two-pane layout ... with a persistent status
// line and a togglable log pane").
func (c *Controller) Draw(screen *Screen) {
	w, h := screen.Width(), screen.Height()
	c.lastScreenW, c.lastScreenH = w, h
	if w <= 0 || h <= 0 {
		return
	}

	l := c.layout(w, h)
	statusRow := h - 1

	c.drawPDFPane(screen, 0, 0, l.splitCol, l.contentHeight)
	c.drawMatrixPane(screen, l.splitCol, 0, w-l.splitCol, l.contentHeight, l.gutter)

	if l.logRows > 0 {
		c.drawLogPane(screen, 0, l.contentHeight, w, l.logRows)
	}

	c.drawStatusLine(screen, statusRow, w)

	if c.mode == modeFilePicker {
		c.drawFilePicker(screen, w, h)
	}
	if c.helpOverlay {
		c.drawHelpOverlay(screen, w, h)
	}
}

func (c *Controller) drawPDFPane(screen *Screen, x, y, w, h int) {
	fg, bg := c.theme.Foreground(c.darkMode), c.theme.Background(c.darkMode)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.Set(x+col, y+row, ScreenCell{Char: ' ', Fg: fg, Bg: bg})
		}
	}
	if c.rasterizer == nil {
		screen.WriteString(x+1, y+1, "Render failure: no rasterizer available", fg, bg)
	} else if c.pdfPath == "" {
		screen.WriteString(x+1, y+1, "No document open (Ctrl+O)", fg, bg)
	}
}

func (c *Controller) drawMatrixPane(screen *Screen, x, y, w, h, gutter int) {
	fg, bg := c.theme.Foreground(c.darkMode), c.theme.Background(c.darkMode)
	cursor := c.buf.Cursor()
	for row := 0; row < h && row < c.buf.Height(); row++ {
		if c.lineNumbers {
			screen.WriteString(x, y+row, fmt.Sprintf("%4d ", row+1), c.theme.LineNumber, bg)
		}
		n := c.buf.RowLen(row)
		for col := 0; col < w-gutter && col < n; col++ {
			ch := c.buf.At(row, col)
			cellFg, cellBg := fg, bg
			if c.buf.IsPositionSelected(matrix.Position{Row: row, Col: col}) {
				cellFg, cellBg = bg, c.theme.Selection
			}
			reverse := row == cursor.Row && col == cursor.Col && c.cursorBlinkOn
			screen.Set(x+gutter+col, y+row, ScreenCell{Char: ch, Fg: cellFg, Bg: cellBg, Reverse: reverse})
		}
	}
}

func (c *Controller) drawLogPane(screen *Screen, x, y, w, h int) {
	fg, bg := c.theme.Foreground(c.darkMode), c.theme.Background(c.darkMode)
	screen.WriteString(x, y, "— log —", c.theme.LogPaneTitle, bg)
	lines := c.logPane.Window(h - 1)
	for i, line := range lines {
		screen.WriteString(x, y+1+i, line, fg, bg)
	}
}

func (c *Controller) drawStatusLine(screen *Screen, row, w int) {
	bg := c.theme.StatusBar
	fg := c.theme.Foreground(c.darkMode)
	for col := 0; col < w; col++ {
		screen.Set(col, row, ScreenCell{Char: ' ', Fg: fg, Bg: bg})
	}
	text := c.status
	switch c.mode {
	case modeSearchInput:
		text = "Search: " + c.searchQuery
	}
	screen.WriteString(0, row, text, fg, bg)
	zoomText := fmt.Sprintf("zoom %.0f%%", c.zoom*100)
	screen.WriteString(w-len(zoomText)-1, row, zoomText, fg, bg)
}

// helpLines is the §4.6 dedicated-key reference shown by F1.
var helpLines = []string{
	"Ctrl+Q quit   Ctrl+O open   Ctrl+E/M extract   Ctrl+S export",
	"Ctrl+F search   F2/F3 prev/next   Ctrl+C/X/V copy/cut/paste",
	"Ctrl++/-/0 zoom   Ctrl+L line numbers   Ctrl+T theme",
	"Ctrl+[ / Ctrl+] split ratio   Ctrl+G log pane   F1 this help",
	"Shift+arrow extend selection   click/drag select in matrix pane",
}

func (c *Controller) drawHelpOverlay(screen *Screen, w, h int) {
	fg, bg := c.theme.Foreground(c.darkMode), c.theme.Selection
	pw, ph := w*3/4, len(helpLines)+2
	if pw > w {
		pw = w
	}
	if ph > h {
		ph = h
	}
	ox, oy := (w-pw)/2, (h-ph)/2
	for row := 0; row < ph; row++ {
		for col := 0; col < pw; col++ {
			screen.Set(ox+col, oy+row, ScreenCell{Char: ' ', Fg: fg, Bg: bg})
		}
	}
	screen.WriteString(ox+1, oy, "Help (F1 to close)", fg, bg)
	for i, line := range helpLines {
		if i+1 >= ph {
			break
		}
		screen.WriteString(ox+1, oy+1+i, line, fg, bg)
	}
}

func (c *Controller) drawFilePicker(screen *Screen, w, h int) {
	fg, bg := c.theme.Foreground(c.darkMode), c.theme.Selection
	pw, ph := w*2/3, h*2/3
	ox, oy := (w-pw)/2, (h-ph)/2
	for row := 0; row < ph; row++ {
		for col := 0; col < pw; col++ {
			screen.Set(ox+col, oy+row, ScreenCell{Char: ' ', Fg: fg, Bg: bg})
		}
	}
	for i, name := range c.filePickerEntries {
		if i+1 >= ph {
			break
		}
		cellFg := fg
		reverse := i == c.filePickerIdx
		screen.WriteString(ox+1, oy+1+i, name, cellFg, bg)
		if reverse {
			screen.Set(ox, oy+1+i, ScreenCell{Char: '>', Fg: cellFg, Bg: bg})
		}
	}
}
