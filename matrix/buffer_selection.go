package matrix

// SetSelection installs an explicit anchor/extent/mode, used by the viewer
// for mouse drag, shift+click, and shift+arrow extension.
func (b *Buffer) SetSelection(anchor, extent Position, mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = &Selection{Anchor: anchor, Extent: extent, Mode: mode}
}

// ExtendSelectionTo moves the extent of an existing selection, or starts one
// anchored at the current cursor if none is active (§4.6: "Shift+arrow
// extends a selection, creating one if absent").
func (b *Buffer) ExtendSelectionTo(extent Position, mode Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sel == nil {
		b.sel = &Selection{Anchor: b.cursor, Extent: extent, Mode: mode}
		return
	}
	b.sel.Extent = extent
}

// ClearSelection removes any active selection.
func (b *Buffer) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel = nil
}

// HasSelection reports whether a selection is active.
func (b *Buffer) HasSelection() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel != nil
}

// SelectionValue returns a copy of the active selection, if any.
func (b *Buffer) SelectionValue() (Selection, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sel == nil {
		return Selection{}, false
	}
	return *b.sel, true
}

// SelectAll selects the whole buffer in Block mode, per §4.3.
func (b *Buffer) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.rows) == 0 {
		b.sel = &Selection{Mode: Block}
		return
	}
	lastRow := len(b.rows) - 1
	lastCol := b.width - 1
	if lastCol < 0 {
		lastCol = 0
	}
	b.sel = &Selection{
		Anchor: Position{0, 0},
		Extent: Position{lastRow, lastCol},
		Mode:   Block,
	}
}

// IsPositionSelected delegates to the active selection, per §4.4.
func (b *Buffer) IsPositionSelected(p Position) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sel == nil {
		return false
	}
	return b.sel.Contains(p)
}

// GetSelectedText delegates to the active selection's extraction. The bool
// result is false when there is no active selection.
func (b *Buffer) GetSelectedText() (string, bool) {
	b.mu.Lock()
	if b.sel == nil {
		b.mu.Unlock()
		return "", false
	}
	sel := *b.sel
	b.mu.Unlock()
	// ExtractText reads b through its locking GridSource methods, so the
	// mutex is released before extraction.
	return sel.ExtractText(b), true
}

// DeleteSelection blanks the selected cells, moves the cursor to the
// selection's minimum corner, clears the selection, and marks the buffer
// modified (§4.3).
func (b *Buffer) DeleteSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sel == nil {
		return
	}
	sel := *b.sel
	minRow, minCol, maxRow, maxCol := sel.bounds()

	for row := minRow; row <= maxRow && row < len(b.rows); row++ {
		startCol := minCol
		if sel.Mode == Line && row != minRow {
			startCol = 0
		}

		switch {
		case sel.Mode == Line && row == maxRow:
			// Exclusive on the last row, matching ExtractText: the
			// character at maxCol itself is not part of the selection.
			for col := startCol; col < maxCol && col < b.width; col++ {
				if col >= 0 {
					b.rows[row][col] = ' '
				}
			}
		default:
			endCol := maxCol
			if sel.Mode == Line && row != maxRow {
				endCol = b.width - 1
			}
			for col := startCol; col <= endCol && col < b.width; col++ {
				if col >= 0 {
					b.rows[row][col] = ' '
				}
			}
		}
	}

	b.cursor = Position{Row: minRow, Col: minCol}
	b.sel = nil
	b.modified = true
}
