package viewer

import (
	"testing"

	"go.uber.org/zap"

	"github.com/inkwell-dev/pdfgrid/clipboard"
	"github.com/inkwell-dev/pdfgrid/config"
	"github.com/inkwell-dev/pdfgrid/logpane"
	"github.com/inkwell-dev/pdfgrid/matrix"
)

func testController() *Controller {
	return New(config.Config{}, zap.NewNop(), logpane.New(), clipboard.New(), nil, nil)
}

// TestScenarioS6ZoomClamp pins spec §8 Scenario S6.
func TestScenarioS6ZoomClamp(t *testing.T) {
	c := testController()
	for i := 0; i < 5; i++ {
		c.HandleKey("C-+")
	}
	if c.Zoom() > 1.2+1e-9 {
		t.Fatalf("zoom = %v, want <= 1.2", c.Zoom())
	}
	before := c.Zoom()
	c.HandleKey("C-+")
	if c.Zoom() != before {
		t.Fatalf("zoom changed to %v after exceeding max, want unchanged at %v", c.Zoom(), before)
	}
	if c.Status() == "" {
		t.Fatal("expected a status message when exceeding max zoom")
	}
}

func TestZoomResetKeyRestoresOne(t *testing.T) {
	c := testController()
	c.HandleKey("C-+")
	c.HandleKey("C-0")
	if c.Zoom() != 1.0 {
		t.Fatalf("zoom = %v, want 1.0 after reset", c.Zoom())
	}
}

func TestPrintableKeyInsertsAtCursor(t *testing.T) {
	c := testController()
	c.HandleKey("a")
	c.HandleKey("b")
	if got := c.Buffer().At(0, 0); got != 'a' {
		t.Fatalf("cell (0,0) = %q, want a", got)
	}
	if got := c.Buffer().At(0, 1); got != 'b' {
		t.Fatalf("cell (0,1) = %q, want b", got)
	}
}

func TestCopySelectionWithoutSelectionReportsStatus(t *testing.T) {
	c := testController()
	c.HandleKey("C-c")
	if c.Status() == "" {
		t.Fatal("expected status message for copy with no selection")
	}
}

func TestShiftArrowCreatesAndExtendsSelection(t *testing.T) {
	c := testController()
	for _, ch := range "hello" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("Home")
	c.HandleKey("S-Right")
	c.HandleKey("S-Right")
	if !c.Buffer().HasSelection() {
		t.Fatal("expected a selection after Shift+Right")
	}
	// Two presses put the extent at column 2; a Block selection includes
	// both corner columns.
	text, ok := c.Buffer().GetSelectedText()
	if !ok || text != "hel" {
		t.Fatalf("GetSelectedText() = %q, %v, want hel, true", text, ok)
	}
}

func TestCopyThenPasteRoundTripsThroughController(t *testing.T) {
	c := testController()
	for _, ch := range "hi" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("Home")
	c.HandleKey("S-Right")
	c.HandleKey("S-Right")
	c.HandleKey("C-c")
	// End moves to the row's full width, 80 under the default config.
	c.HandleKey("End")
	c.HandleKey("C-v")
	if got := c.Buffer().At(0, 80); got != 'h' {
		t.Fatalf("cell (0,80) = %q, want h after paste", got)
	}
}

func TestExtractCurrentPageWithoutTextSourceReportsInputUnavailable(t *testing.T) {
	c := testController()
	c.HandleKey("C-e")
	if c.Status() != "Input unavailable" {
		t.Fatalf("Status() = %q, want Input unavailable", c.Status())
	}
}

func TestMouseClickPositionsCursorInMatrixPane(t *testing.T) {
	c := testController()
	for _, ch := range "hello" {
		c.HandleKey(string(ch))
	}
	c.Draw(NewScreen(40, 10))

	l := c.layout(40, 10)
	c.HandleMouse(MouseEvent{X: l.splitCol + 2, Y: 0, Button: 0, Pressed: true})

	if got := c.Buffer().Cursor(); got != (matrix.Position{Row: 0, Col: 2}) {
		t.Fatalf("cursor = %v, want (0,2)", got)
	}
	if c.Buffer().HasSelection() {
		t.Fatal("a plain click must not leave a selection active")
	}
}

func TestMouseDragExtendsSelection(t *testing.T) {
	c := testController()
	for _, ch := range "hello" {
		c.HandleKey(string(ch))
	}
	c.Draw(NewScreen(40, 10))
	l := c.layout(40, 10)

	c.HandleMouse(MouseEvent{X: l.splitCol, Y: 0, Button: 0, Pressed: true})
	c.HandleMouse(MouseEvent{X: l.splitCol + 2, Y: 0, Button: 0, Pressed: true, Motion: true})

	if !c.Buffer().HasSelection() {
		t.Fatal("expected a selection after drag")
	}
	text, ok := c.Buffer().GetSelectedText()
	if !ok || text != "hel" {
		t.Fatalf("GetSelectedText() = %q, %v, want hel, true", text, ok)
	}
}

func TestMouseShiftClickStartsSelectionFromCursor(t *testing.T) {
	c := testController()
	for _, ch := range "hello" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("Home")
	c.Draw(NewScreen(40, 10))
	l := c.layout(40, 10)

	c.HandleMouse(MouseEvent{X: l.splitCol + 2, Y: 0, Button: 0, Pressed: true, Shift: true})

	text, ok := c.Buffer().GetSelectedText()
	if !ok || text != "hel" {
		t.Fatalf("GetSelectedText() = %q, %v, want hel, true", text, ok)
	}
}

func TestMouseClickOutsideMatrixPaneClearsSelection(t *testing.T) {
	c := testController()
	for _, ch := range "hello" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("Home")
	c.HandleKey("S-Right")
	c.HandleKey("S-Right")
	if !c.Buffer().HasSelection() {
		t.Fatal("setup: expected a selection before the click")
	}
	c.Draw(NewScreen(40, 10))

	c.HandleMouse(MouseEvent{X: 0, Y: 0, Button: 0, Pressed: true})

	if c.Buffer().HasSelection() {
		t.Fatal("click outside the matrix pane must clear the selection")
	}
}

func TestLogPaneVisibilityToggleKey(t *testing.T) {
	c := testController()
	c.logPane.Append("something happened")
	before := c.logPaneVisible
	c.HandleKey("C-g")
	if c.logPaneVisible == before {
		t.Fatal("Ctrl+G did not toggle log pane visibility")
	}
}

func TestHelpOverlayKeyTogglesAndRendersContent(t *testing.T) {
	c := testController()
	c.HandleKey("F1")
	if !c.helpOverlay {
		t.Fatal("F1 did not set helpOverlay")
	}
	screen := NewScreen(60, 20)
	c.Draw(screen)
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.At(x, y).Char == 'H' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("help overlay did not render any content")
	}
}

func TestSplitRatioAdjustmentKeys(t *testing.T) {
	c := testController()
	before := c.splitRatio
	c.HandleKey("C-]")
	if c.splitRatio <= before {
		t.Fatalf("splitRatio = %v after Ctrl+], want > %v", c.splitRatio, before)
	}
	c.HandleKey("C-[")
	c.HandleKey("C-[")
	if c.splitRatio >= before {
		t.Fatalf("splitRatio = %v after Ctrl+[ x2, want < %v", c.splitRatio, before)
	}
}

func TestSearchFindsAndWrapsHits(t *testing.T) {
	c := testController()
	for _, ch := range "cat dog cat" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("C-f")
	for _, ch := range "cat" {
		c.HandleKey(string(ch))
	}
	c.HandleKey("Enter")
	if len(c.searchHits) != 2 {
		t.Fatalf("len(searchHits) = %d, want 2", len(c.searchHits))
	}
	first := c.Buffer().Cursor()
	c.searchNext()
	c.searchNext()
	if got := c.Buffer().Cursor(); got != first {
		t.Fatalf("cursor after wrapping = %v, want back at %v", got, first)
	}
}
