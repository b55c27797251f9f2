package editor

import "unicode/utf8"

// Movement intents. Every intent applies to each cursor in visit order and
// publishes at most one cursor notification. Targets are clamped to valid
// positions, so callers never need to range-check first.

// setCursorPos moves one cursor to target, clamped. With extend a selection
// is grown from the cursor's pivot; without it any selection is dropped.
// Reports whether position or selection changed.
func (d *Document) setCursorPos(c *Cursor, target Position, extend bool) bool {
	target = d.lines.ClampPosition(target)
	changed := false
	if extend {
		if c.sel == nil {
			c.sel = NewSelection(c.pos)
		}
		if c.pos != target {
			changed = true
		}
		c.pos = target
		before := c.sel.Region
		c.sel.Adjust(c.pos)
		if c.sel.Region != before {
			changed = true
		}
	} else {
		if c.sel != nil {
			c.sel = nil
			changed = true
		}
		if c.pos != target {
			c.pos = target
			changed = true
		}
	}
	return changed
}

// moveCursors runs one motion against every cursor and restores collection
// invariants afterwards.
func (d *Document) moveCursors(fn func(*Cursor) bool) {
	changed := false
	for _, c := range d.cursors.All() {
		if fn(c) {
			changed = true
		}
	}
	d.finishCursorOp(changed)
}

// MoveLeft moves every cursor one cell left, wrapping to the end of the
// previous line. A plain move with an active selection collapses to the
// selection start instead.
func (d *Document) MoveLeft(extend bool) {
	d.moveCursors(func(c *Cursor) bool { return d.moveLeftOne(c, extend) })
}

func (d *Document) moveLeftOne(c *Cursor, extend bool) bool {
	if !extend && c.HasSelection() {
		return d.setCursorPos(c, c.sel.Region.Start, false)
	}
	p := d.lines.ClampPosition(c.pos)
	if p.Col > 0 {
		p.Col--
	} else if p.Line > 0 {
		p = Position{Line: p.Line - 1, Col: d.lines.LineLen(p.Line - 1)}
	}
	return d.setCursorPos(c, p, extend)
}

// MoveRight moves every cursor one cell right, wrapping to the start of the
// next line. A plain move with an active selection collapses to the
// selection end instead.
func (d *Document) MoveRight(extend bool) {
	d.moveCursors(func(c *Cursor) bool { return d.moveRightOne(c, extend) })
}

func (d *Document) moveRightOne(c *Cursor, extend bool) bool {
	if !extend && c.HasSelection() {
		return d.setCursorPos(c, c.sel.Region.End, false)
	}
	p := d.lines.ClampPosition(c.pos)
	if p.Col < d.lines.LineLen(p.Line) {
		p.Col++
	} else if p.Line < d.lines.Count()-1 {
		p = Position{Line: p.Line + 1}
	}
	return d.setCursorPos(c, p, extend)
}

// MoveUp moves every cursor n lines up. The column is clamped per target
// line.
func (d *Document) MoveUp(n int, extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		return d.setCursorPos(c, Position{Line: c.pos.Line - n, Col: c.pos.Col}, extend)
	})
}

// MoveDown moves every cursor n lines down.
func (d *Document) MoveDown(n int, extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		return d.setCursorPos(c, Position{Line: c.pos.Line + n, Col: c.pos.Col}, extend)
	})
}

// MoveWordLeft moves every cursor to the previous word start, crossing line
// boundaries. At the document start the cursor stays put.
func (d *Document) MoveWordLeft(extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		if !extend && c.HasSelection() {
			return d.setCursorPos(c, c.sel.Region.Start, false)
		}
		p, ok := d.lines.WordStartBefore(c.pos)
		if !ok {
			return false
		}
		return d.setCursorPos(c, p, extend)
	})
}

// MoveWordRight moves every cursor to the next word end, crossing line
// boundaries. At the document end the cursor stays put.
func (d *Document) MoveWordRight(extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		if !extend && c.HasSelection() {
			return d.setCursorPos(c, c.sel.Region.End, false)
		}
		p, ok := d.lines.WordEndAfter(c.pos)
		if !ok {
			return false
		}
		return d.setCursorPos(c, p, extend)
	})
}

// MoveLineStart moves every cursor to column zero. With respectIndent the
// first press goes to the line's first non-whitespace column and only a
// repeat goes to zero.
func (d *Document) MoveLineStart(respectIndent, extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		target := Position{Line: c.pos.Line}
		if respectIndent {
			lead := leadingWhitespace(d.lines.Content(c.pos.Line))
			if n := utf8.RuneCountInString(lead); c.pos.Col != n {
				target.Col = n
			}
		}
		return d.setCursorPos(c, target, extend)
	})
}

// MoveLineEnd moves every cursor past the last cell of its line.
func (d *Document) MoveLineEnd(extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		return d.setCursorPos(c, Position{Line: c.pos.Line, Col: d.lines.LineLen(c.pos.Line)}, extend)
	})
}

// MoveDocStart moves every cursor to the document origin.
func (d *Document) MoveDocStart(extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		return d.setCursorPos(c, Position{}, extend)
	})
}

// MoveDocEnd moves every cursor past the last cell of the last line.
func (d *Document) MoveDocEnd(extend bool) {
	d.moveCursors(func(c *Cursor) bool {
		return d.setCursorPos(c, d.lines.End(), extend)
	})
}

// MoveTo places the primary cursor at p. Secondary cursors are untouched;
// pair it with ClearSecondaryCursors for click-to-place behavior.
func (d *Document) MoveTo(p Position, extend bool) {
	changed := d.setCursorPos(d.cursors.Primary(), p, extend)
	d.finishCursorOp(changed)
}
