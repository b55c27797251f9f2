package editor

import (
	"strings"
	"unicode/utf8"
)

// Edit intents. Each applies to every cursor in visit order; after a
// cursor's edit the remaining cursors are shifted through the matching
// transform so they keep pointing at the text they were on.

// editCursors runs one edit against every cursor, restores collection
// invariants and publishes a cursor notification.
func (d *Document) editCursors(fn func(*Cursor)) {
	for _, c := range d.cursors.All() {
		fn(c)
	}
	d.finishCursorEdit()
}

// shiftOthers maps every cursor except the actor through f, positions and
// selection pivots both. Selections emptied by the edit are dropped.
func (d *Document) shiftOthers(except *Cursor, f func(Position) Position) {
	for _, c := range d.cursors.All() {
		if c == except {
			continue
		}
		c.pos = d.lines.ClampPosition(f(c.pos))
		if c.sel != nil {
			c.sel.Pivot = d.lines.ClampPosition(f(c.sel.Pivot))
			c.sel.Adjust(c.pos)
			if !c.sel.Active() {
				c.sel = nil
			}
		}
	}
}

// removeRegionShift deletes r from the lines, shifts the actor's peers and
// parks the actor at the region start.
func (d *Document) removeRegionShift(actor *Cursor, r Region) {
	r = NewRegion(d.lines.ClampPosition(r.Start), d.lines.ClampPosition(r.End))
	if r.IsEmpty() {
		if actor != nil {
			actor.pos = r.Start
		}
		return
	}
	d.lines.RemoveRegion(r)
	d.shiftOthers(actor, func(p Position) Position { return shiftAfterRemove(p, r) })
	if actor != nil {
		actor.pos = r.Start
	}
}

// dropSelection removes the cursor's selected text, if any, and clears the
// selection.
func (d *Document) dropSelection(c *Cursor) {
	if c.HasSelection() {
		r := c.sel.Region
		c.sel = nil
		d.removeRegionShift(c, r)
		return
	}
	c.sel = nil
}

// insertTextOne splices s (no newlines) at the cursor, replacing its
// selection first.
func (d *Document) insertTextOne(c *Cursor, s string) {
	d.dropSelection(c)
	if s == "" {
		return
	}
	at := d.lines.ClampPosition(c.pos)
	d.lines.InsertInLine(at.Line, at.Col, s)
	n := utf8.RuneCountInString(s)
	d.shiftOthers(c, func(p Position) Position { return shiftAfterInsert(p, at, n) })
	c.pos = Position{Line: at.Line, Col: at.Col + n}
}

// insertLineOne breaks the line at the cursor. Column zero pushes the
// current line down and leaves the cursor on it; end of line opens a line
// below; anything else splits. With autoIndent the opened line inherits the
// current indentation, one step deeper behind an opening bracket.
func (d *Document) insertLineOne(c *Cursor, autoIndent bool) {
	d.dropSelection(c)
	at := d.lines.ClampPosition(c.pos)
	switch {
	case at.Col == 0:
		d.lines.InsertLine(at.Line, "")
		d.shiftOthers(c, func(p Position) Position { return shiftAfterLineInsert(p, at.Line) })
		c.pos = Position{Line: at.Line + 1}
	case at.Col >= d.lines.LineLen(at.Line):
		prefix := ""
		if autoIndent {
			prefix = ComputeIndent(d.lines.Content(at.Line), d.tabSize)
		}
		d.lines.InsertLine(at.Line+1, prefix)
		d.shiftOthers(c, func(p Position) Position { return shiftAfterLineInsert(p, at.Line+1) })
		c.pos = Position{Line: at.Line + 1, Col: utf8.RuneCountInString(prefix)}
	default:
		prefix := ""
		if autoIndent {
			prefix = ComputeIndent(runeSub(d.lines.Content(at.Line), 0, at.Col), d.tabSize)
		}
		d.lines.SplitLine(at.Line, at.Col, prefix)
		pl := utf8.RuneCountInString(prefix)
		d.shiftOthers(c, func(p Position) Position { return shiftAfterSplit(p, at, pl) })
		c.pos = Position{Line: at.Line + 1, Col: pl}
	}
}

// deleteBackwardsOne removes the selection, or count units before the
// cursor. A unit at column zero folds the line into the previous one.
func (d *Document) deleteBackwardsOne(c *Cursor, count int) {
	if c.HasSelection() {
		d.dropSelection(c)
		return
	}
	c.sel = nil
	for ; count > 0; count-- {
		at := d.lines.ClampPosition(c.pos)
		switch {
		case at.Col > 0:
			d.removeRegionShift(c, NewRegion(Position{Line: at.Line, Col: at.Col - 1}, at))
		case at.Line > 0:
			junction := d.lines.MergeDown(at.Line - 1)
			d.shiftOthers(c, func(p Position) Position { return shiftAfterMerge(p, at.Line-1, junction) })
			c.pos = Position{Line: at.Line - 1, Col: junction}
		default:
			return
		}
	}
}

// deleteForwardsOne removes the selection, or count units after the cursor.
// A unit at line end folds the next line up.
func (d *Document) deleteForwardsOne(c *Cursor, count int) {
	if c.HasSelection() {
		d.dropSelection(c)
		return
	}
	c.sel = nil
	for ; count > 0; count-- {
		at := d.lines.ClampPosition(c.pos)
		switch {
		case at.Col < d.lines.LineLen(at.Line):
			d.removeRegionShift(c, NewRegion(at, Position{Line: at.Line, Col: at.Col + 1}))
		case at.Line < d.lines.Count()-1:
			junction := d.lines.MergeDown(at.Line)
			d.shiftOthers(c, func(p Position) Position { return shiftAfterMerge(p, at.Line, junction) })
			c.pos = Position{Line: at.Line, Col: junction}
		default:
			return
		}
	}
}

// copySelectedOne writes the selection (fragments joined with newlines), or
// the whole current line when none, to the cursor's private clipboard. With
// cut the copied text is removed; cutting without a selection deletes the
// line.
func (d *Document) copySelectedOne(c *Cursor, cut bool) {
	if c.HasSelection() {
		c.clip = strings.Join(d.lines.RegionContent(c.sel.Region), "\n")
		if cut {
			d.dropSelection(c)
		}
		return
	}
	line := d.lines.ClampPosition(c.pos).Line
	c.clip = d.lines.Content(line)
	if cut {
		d.deleteLineShift(c, line)
	}
}

// deleteLineShift removes one whole line and shifts every cursor but the
// actor.
func (d *Document) deleteLineShift(actor *Cursor, line int) {
	d.lines.DeleteLines(line, 1)
	d.shiftOthers(actor, func(p Position) Position { return shiftAfterLineDelete(p, line, 1) })
	if actor != nil {
		actor.pos = d.lines.ClampPosition(Position{Line: line})
	}
}

// pasteOne replays the cursor's clipboard: segments between newlines are
// inserted as text, the newlines themselves as literal line breaks.
func (d *Document) pasteOne(c *Cursor) {
	if c.clip == "" {
		return
	}
	parts := strings.Split(c.clip, "\n")
	for i, part := range parts {
		if part != "" {
			d.insertTextOne(c, part)
		}
		if i < len(parts)-1 {
			d.insertLineOne(c, false)
		}
	}
}

// Insert types s at every cursor. Newlines in s become literal line breaks.
func (d *Document) Insert(s string) {
	if s == "" {
		return
	}
	parts := strings.Split(s, "\n")
	d.editCursors(func(c *Cursor) {
		for i, part := range parts {
			if part != "" {
				d.insertTextOne(c, part)
			}
			if i < len(parts)-1 {
				d.insertLineOne(c, false)
			}
		}
	})
}

// InsertNewline breaks the line at every cursor.
func (d *Document) InsertNewline(autoIndent bool) {
	d.editCursors(func(c *Cursor) { d.insertLineOne(c, autoIndent) })
}

// DeleteBackwards deletes n units before every cursor, or each cursor's
// selection.
func (d *Document) DeleteBackwards(n int) {
	if n < 1 {
		return
	}
	d.editCursors(func(c *Cursor) { d.deleteBackwardsOne(c, n) })
}

// DeleteForwards deletes n units after every cursor, or each cursor's
// selection.
func (d *Document) DeleteForwards(n int) {
	if n < 1 {
		return
	}
	d.editCursors(func(c *Cursor) { d.deleteForwardsOne(c, n) })
}

// CopySelection copies per cursor into each cursor's private clipboard.
// With cut the copied text is removed as well.
func (d *Document) CopySelection(cut bool) {
	if !cut {
		d.cursors.ForEach(func(c *Cursor) { d.copySelectedOne(c, false) })
		return
	}
	d.editCursors(func(c *Cursor) { d.copySelectedOne(c, true) })
}

// Paste inserts each cursor's private clipboard at that cursor.
func (d *Document) Paste() {
	d.editCursors(func(c *Cursor) { d.pasteOne(c) })
}

// SetClipboards overwrites every cursor's private clipboard, for bridging
// in an external clipboard.
func (d *Document) SetClipboards(s string) {
	d.cursors.ForEach(func(c *Cursor) { c.clip = s })
}
