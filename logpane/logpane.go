// Package logpane implements the append-only scrollable diagnostics pane
// (§4.7): an ordered sequence of lines with a scroll offset and whole-line
// selection, shared between the viewer controller and the logging
// subsystem (SPEC_FULL.md §4.8).
package logpane

import (
	"strings"
	"sync"
)

// Pane is an append-only log buffer with a scroll offset (0 = top) and a
// contiguous, whole-line selection.
type Pane struct {
	mu           sync.Mutex
	lines        []string
	scrollOffset int
	selActive    bool
	selStart     int
	selEnd       int
}

// New creates an empty log pane.
func New() *Pane {
	return &Pane{}
}

// Append adds a line to the end of the pane.
func (p *Pane) Append(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = append(p.lines, line)
}

// Clear removes all lines and resets scroll and selection state.
func (p *Pane) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lines = nil
	p.scrollOffset = 0
	p.selActive = false
}

// Len returns the number of lines currently held.
func (p *Pane) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

// ScrollOffset returns the current scroll offset.
func (p *Pane) ScrollOffset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrollOffset
}

// ScrollUp moves the visible window toward the top of the log by n lines.
func (p *Pane) ScrollUp(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scrollOffset -= n
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

// ScrollDown moves the visible window toward the bottom of the log by n
// lines, clamped so the last line stays visible.
func (p *Pane) ScrollDown(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scrollOffset += n
	if max := len(p.lines) - 1; p.scrollOffset > max {
		p.scrollOffset = max
	}
	if p.scrollOffset < 0 {
		p.scrollOffset = 0
	}
}

// Window returns the lines visible in a pane of the given height, starting
// at the current scroll offset: [scrollOffset, scrollOffset+visibleHeight).
func (p *Pane) Window(visibleHeight int) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if visibleHeight <= 0 || len(p.lines) == 0 {
		return nil
	}
	start := p.scrollOffset
	if start < 0 {
		start = 0
	}
	if start >= len(p.lines) {
		return nil
	}
	end := start + visibleHeight
	if end > len(p.lines) {
		end = len(p.lines)
	}
	out := make([]string, end-start)
	copy(out, p.lines[start:end])
	return out
}

// SelectRange selects the contiguous, whole-line range [start, end]
// (inclusive), clamped to the pane's current extent.
func (p *Pane) SelectRange(start, end int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end >= len(p.lines) {
		end = len(p.lines) - 1
	}
	if end < start {
		p.selActive = false
		return
	}
	p.selActive = true
	p.selStart, p.selEnd = start, end
}

// CopySelection returns the selected lines joined with newlines, and
// whether a selection is active.
func (p *Pane) CopySelection() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.selActive {
		return "", false
	}
	return strings.Join(p.lines[p.selStart:p.selEnd+1], "\n"), true
}
