package editor

// Cursor is one editing position with an optional selection and a private
// clipboard. Cursors are owned by a CursorCollection; movement and editing
// go through the Document so every cursor sees the same line storage.
type Cursor struct {
	id   int
	pos  Position
	sel  *Selection
	clip string
}

// ID returns the cursor's identity within its document. The primary cursor
// is always id 0.
func (c *Cursor) ID() int { return c.id }

// Pos returns the cursor's current position.
func (c *Cursor) Pos() Position { return c.pos }

// Selection returns the cursor's selection, or nil when none exists.
func (c *Cursor) Selection() *Selection { return c.sel }

// HasSelection reports whether the cursor holds a non-empty selection.
func (c *Cursor) HasSelection() bool { return c.sel.Active() }

// Clipboard returns the cursor's private clipboard content.
func (c *Cursor) Clipboard() string { return c.clip }

// The shift functions translate a position across a single edit primitive.
// They adjust peer cursors (and selection pivots) so that after an edit
// every other cursor still points at the text it was on.

// shiftAfterInsert adjusts p for n runes inserted at 'at' within one line.
func shiftAfterInsert(p, at Position, n int) Position {
	if p.Line == at.Line && p.Col >= at.Col {
		p.Col += n
	}
	return p
}

// shiftAfterRemove adjusts p for the removal of region r. Positions inside
// the region collapse to its start.
func shiftAfterRemove(p Position, r Region) Position {
	if r.IsEmpty() || p.Before(r.Start) {
		return p
	}
	if p.Before(r.End) || p == r.End {
		return r.Start
	}
	if p.Line == r.End.Line {
		p.Col = r.Start.Col + (p.Col - r.End.Col)
	}
	p.Line -= r.End.Line - r.Start.Line
	return p
}

// shiftAfterSplit adjusts p for a line split at 'at' whose tail landed on
// the next line behind prefixLen runes of indentation.
func shiftAfterSplit(p, at Position, prefixLen int) Position {
	if p.Line > at.Line {
		p.Line++
		return p
	}
	if p.Line == at.Line && p.Col >= at.Col {
		return Position{Line: at.Line + 1, Col: prefixLen + (p.Col - at.Col)}
	}
	return p
}

// shiftAfterMerge adjusts p for line+1 having been folded into line at the
// junction column.
func shiftAfterMerge(p Position, line, junction int) Position {
	if p.Line == line+1 {
		return Position{Line: line, Col: junction + p.Col}
	}
	if p.Line > line+1 {
		p.Line--
	}
	return p
}

// shiftAfterLineInsert adjusts p for a whole line inserted at index line.
func shiftAfterLineInsert(p Position, line int) Position {
	if p.Line >= line {
		p.Line++
	}
	return p
}

// shiftAfterLineDelete adjusts p for n whole lines deleted at index line.
// A position on a deleted line lands at the start of the line that took its
// place.
func shiftAfterLineDelete(p Position, line, n int) Position {
	if p.Line >= line+n {
		p.Line -= n
		return p
	}
	if p.Line >= line {
		p.Line = line
		p.Col = 0
	}
	return p
}
