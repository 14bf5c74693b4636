package logpane

import "testing"

func fill(p *Pane, n int) {
	for i := 0; i < n; i++ {
		p.Append(string(rune('a' + i%26)))
	}
}

func TestWindowReturnsSliceFromOffset(t *testing.T) {
	p := New()
	fill(p, 5)
	got := p.Window(3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestScrollUpClampsAtZero(t *testing.T) {
	p := New()
	fill(p, 10)
	p.ScrollUp(100)
	if got := p.ScrollOffset(); got != 0 {
		t.Fatalf("offset = %d, want 0", got)
	}
}

func TestScrollDownClampsAtLastLine(t *testing.T) {
	p := New()
	fill(p, 5)
	p.ScrollDown(100)
	if got := p.ScrollOffset(); got != 4 {
		t.Fatalf("offset = %d, want 4", got)
	}
}

func TestAppendAfterClearStartsEmpty(t *testing.T) {
	p := New()
	fill(p, 5)
	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("len = %d, want 0 after Clear", p.Len())
	}
	if got := p.Window(5); got != nil {
		t.Fatalf("Window() = %v, want nil", got)
	}
}

func TestSelectRangeAndCopySelection(t *testing.T) {
	p := New()
	p.Append("one")
	p.Append("two")
	p.Append("three")
	p.SelectRange(1, 2)
	got, ok := p.CopySelection()
	if !ok || got != "two\nthree" {
		t.Fatalf("CopySelection() = %q, %v, want two\\nthree, true", got, ok)
	}
}

func TestCopySelectionWithNoSelectionReturnsFalse(t *testing.T) {
	p := New()
	p.Append("only")
	if _, ok := p.CopySelection(); ok {
		t.Fatal("CopySelection() ok = true, want false with no selection made")
	}
}

func TestSelectRangeClampsToExtent(t *testing.T) {
	p := New()
	p.Append("a")
	p.Append("b")
	p.SelectRange(-5, 50)
	got, ok := p.CopySelection()
	if !ok || got != "a\nb" {
		t.Fatalf("CopySelection() = %q, %v, want a\\nb, true", got, ok)
	}
}
