// Package editor implements an in-memory text document engine: a line
// buffer with stable line identities, multi-cursor editing with per-cursor
// selections and clipboards, tokenized render state per line, and an index
// of indentation regions for guide rendering. A Document is the aggregate
// entry point; it is not safe for concurrent use.
package editor

// Position addresses a character slot in a document: a 0-based line index
// and a 0-based rune column within that line. Column len(line) is the valid
// end-of-line slot.
type Position struct {
	Line int
	Col  int
}

// Compare orders positions line-major, column-minor. It returns -1 when p
// precedes q, +1 when p follows q, and 0 when they are equal.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Before reports whether p strictly precedes q.
func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

// After reports whether p strictly follows q.
func (p Position) After(q Position) bool {
	return p.Compare(q) > 0
}

// minPos returns the earlier of two positions.
func minPos(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// maxPos returns the later of two positions.
func maxPos(a, b Position) Position {
	if b.After(a) {
		return b
	}
	return a
}
