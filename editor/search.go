package editor

import (
	"strings"
	"unicode/utf8"
)

// Find returns every occurrence of query in document order. The query is
// matched literally within single lines; matches never overlap.
func (d *Document) Find(query string) []Region {
	if query == "" || strings.Contains(query, "\n") {
		return nil
	}
	qlen := utf8.RuneCountInString(query)
	var out []Region
	for i := 0; i < d.lines.Count(); i++ {
		content := d.lines.Content(i)
		off, col := 0, 0
		for {
			idx := strings.Index(content[off:], query)
			if idx < 0 {
				break
			}
			col += utf8.RuneCountInString(content[off : off+idx])
			out = append(out, NewRegion(
				Position{Line: i, Col: col},
				Position{Line: i, Col: col + qlen},
			))
			off += idx + len(query)
			col += qlen
		}
	}
	return out
}

// ReplaceAll substitutes every occurrence of query with replacement and
// returns the substitution count. Matches are replaced back to front so
// earlier regions stay valid; newlines in the replacement become line
// breaks. Cursors shift with the edits.
func (d *Document) ReplaceAll(query, replacement string) int {
	regions := d.Find(query)
	if len(regions) == 0 {
		return 0
	}
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		d.lines.RemoveRegion(r)
		d.shiftOthers(nil, func(p Position) Position { return shiftAfterRemove(p, r) })
		d.insertAt(r.Start, replacement)
	}
	d.finishCursorEdit()
	return len(regions)
}

// insertAt splices s at the position, newlines becoming line breaks, and
// shifts every cursor across the splice. Returns the end of the inserted
// text.
func (d *Document) insertAt(at Position, s string) Position {
	parts := strings.Split(s, "\n")
	for k, part := range parts {
		if part != "" {
			d.lines.InsertInLine(at.Line, at.Col, part)
			n := utf8.RuneCountInString(part)
			from := at
			d.shiftOthers(nil, func(p Position) Position { return shiftAfterInsert(p, from, n) })
			at.Col += n
		}
		if k < len(parts)-1 {
			split := at
			d.lines.SplitLine(at.Line, at.Col, "")
			d.shiftOthers(nil, func(p Position) Position { return shiftAfterSplit(p, split, 0) })
			at = Position{Line: at.Line + 1}
		}
	}
	return at
}
