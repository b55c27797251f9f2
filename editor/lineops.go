package editor

// Whole-line editing commands. Like the character-level edits they keep
// every cursor on the text it was on; indices out of range are ignored.

// DeleteLine removes the line at the given 0-based index. Deleting the only
// line leaves one empty line behind. Reports whether a line was removed.
func (d *Document) DeleteLine(i int) bool {
	if i < 0 || i >= d.lines.Count() {
		return false
	}
	d.deleteLineShift(nil, i)
	d.finishCursorEdit()
	return true
}

// DuplicateLine inserts a copy of line i immediately after it. Reports
// whether a copy was made.
func (d *Document) DuplicateLine(i int) bool {
	if i < 0 || i >= d.lines.Count() {
		return false
	}
	d.lines.InsertLine(i+1, d.lines.Content(i))
	d.shiftOthers(nil, func(p Position) Position { return shiftAfterLineInsert(p, i+1) })
	d.finishCursorEdit()
	return true
}

// MoveLine swaps line i with the line delta away (+1 = down, -1 = up).
// Cursors riding either line travel with it. Reports whether the move
// happened.
func (d *Document) MoveLine(i, delta int) bool {
	j := i + delta
	if !d.lines.MoveLine(i, delta) {
		return false
	}
	d.shiftOthers(nil, func(p Position) Position {
		switch p.Line {
		case i:
			p.Line = j
		case j:
			p.Line = i
		}
		return p
	})
	d.finishCursorEdit()
	return true
}

// finishCursorEdit restores collection invariants after an edit that moved
// cursors and publishes a cursor notification.
func (d *Document) finishCursorEdit() {
	d.cursors.resort()
	d.cursors.dedupe()
	d.emitCursors()
}
