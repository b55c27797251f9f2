package editor

// Region is a span of document text between two positions. Regions are
// normalized at construction: Start never follows End. The span is half
// open, containing Start and excluding End.
type Region struct {
	Start Position
	End   Position
}

// NewRegion builds a normalized region from two positions in either order.
func NewRegion(a, b Position) Region {
	return Region{Start: minPos(a, b), End: maxPos(a, b)}
}

// IsEmpty reports whether the region spans no characters.
func (r Region) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p falls inside the region.
func (r Region) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// Lines returns the inclusive range of line indices the region touches.
func (r Region) Lines() (first, last int) {
	return r.Start.Line, r.End.Line
}

// ColumnsOn returns the column span the region covers on the given line,
// where lineLen is that line's length in runes. ok is false when the region
// does not touch the line. A multi-line region covers from its start column
// to the end of the first line, whole interior lines, and up to its end
// column on the last line.
func (r Region) ColumnsOn(line, lineLen int) (startCol, endCol int, ok bool) {
	if r.IsEmpty() || line < r.Start.Line || line > r.End.Line {
		return 0, 0, false
	}
	startCol = 0
	endCol = lineLen
	if line == r.Start.Line {
		startCol = r.Start.Col
	}
	if line == r.End.Line {
		endCol = r.End.Col
	}
	if startCol > lineLen {
		startCol = lineLen
	}
	if endCol > lineLen {
		endCol = lineLen
	}
	if startCol > endCol {
		startCol = endCol
	}
	return startCol, endCol, true
}
