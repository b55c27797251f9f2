package editor

import (
	"strings"

	"github.com/odvcencio/inkwell/syntax"
)

// LineCollection owns a document's lines: storage, the line id generator,
// tokenizer state threading across lines, and the indent-region index. It
// maintains two invariants after every mutation: the collection is never
// empty (a document always has at least one, possibly empty, line), and
// lines[i].Index() == i.
type LineCollection struct {
	lines   []*Line
	nextID  int
	eng     *syntax.Engine
	tabSize int
	index   *IndentRegionIndex
	notify  func(Event)
}

// NewLineCollection builds a collection holding text split on newlines. eng
// may be nil for plain documents; tabSize below 1 falls back to the syntax
// default.
func NewLineCollection(text string, eng *syntax.Engine, tabSize int) *LineCollection {
	if tabSize < 1 {
		tabSize = syntax.DefaultTabSize
	}
	if eng != nil {
		eng = eng.WithTabSize(tabSize)
	}
	lc := &LineCollection{eng: eng, tabSize: tabSize}
	lc.reset(text)
	return lc
}

// TabSize returns the tab width used for indent math and tab expansion.
func (lc *LineCollection) TabSize() int { return lc.tabSize }

// Engine returns the tokenizer engine, or nil for a plain document.
func (lc *LineCollection) Engine() *syntax.Engine { return lc.eng }

// Count returns the number of lines, always at least 1.
func (lc *LineCollection) Count() int { return len(lc.lines) }

// Line returns the line at index i, or nil when i is out of range.
func (lc *LineCollection) Line(i int) *Line {
	if i < 0 || i >= len(lc.lines) {
		return nil
	}
	return lc.lines[i]
}

// Content returns the text of line i, or "" when i is out of range.
func (lc *LineCollection) Content(i int) string {
	if l := lc.Line(i); l != nil {
		return l.content
	}
	return ""
}

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (lc *LineCollection) LineLen(i int) int {
	if l := lc.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// Text joins all lines with newlines.
func (lc *LineCollection) Text() string {
	parts := make([]string, len(lc.lines))
	for i, l := range lc.lines {
		parts[i] = l.content
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the whole document. Line ids are not reused.
func (lc *LineCollection) SetText(text string) {
	lc.reset(text)
	lc.emit(Event{Kind: EventDocumentReset, Line: -1})
}

func (lc *LineCollection) reset(text string) {
	parts := strings.Split(text, "\n")
	lc.lines = make([]*Line, len(parts))
	for i, content := range parts {
		lc.lines[i] = lc.newLine(content)
		lc.lines[i].index = i
	}
	lc.recomputeFrom(0)
	lc.rebuildIndex()
}

func (lc *LineCollection) newLine(content string) *Line {
	l := &Line{
		id:      lc.nextID,
		content: content,
		indent:  indentWidth(content, lc.tabSize),
		// -1 never equals a real entry state, so a fresh line is always
		// rendered by the next recompute pass.
		syntaxIn: -1,
	}
	lc.nextID++
	return l
}

// Elements returns the cached render segments of line i.
func (lc *LineCollection) Elements(i int) []syntax.Segment {
	if l := lc.Line(i); l != nil {
		return l.elements
	}
	return nil
}

// IndentIndex returns the current indent-region index.
func (lc *LineCollection) IndentIndex() *IndentRegionIndex { return lc.index }

// ClampPosition clamps p onto a valid document position: the line into
// [0, Count) and the column into [0, line length].
func (lc *LineCollection) ClampPosition(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(lc.lines) {
		p.Line = len(lc.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := lc.lines[p.Line].Len(); p.Col > n {
		p.Col = n
	}
	return p
}

// End returns the position just past the last character of the document.
func (lc *LineCollection) End() Position {
	last := len(lc.lines) - 1
	return Position{Line: last, Col: lc.lines[last].Len()}
}

// SetContent replaces the text of line i and recomputes render state from
// it, cascading to following lines whose entry state no longer matches.
func (lc *LineCollection) SetContent(i int, content string) {
	l := lc.Line(i)
	if l == nil {
		return
	}
	l.content = content
	l.indent = indentWidth(content, lc.tabSize)
	last := lc.recomputeFrom(i)
	lc.rebuildIndex()
	for j := i; j <= last; j++ {
		lc.emit(Event{Kind: EventLineChanged, Line: j})
	}
}

// InsertInLine splices s into line i at rune column col.
func (lc *LineCollection) InsertInLine(i, col int, s string) {
	if l := lc.Line(i); l != nil {
		lc.SetContent(i, spliceRunes(l.content, col, 0, s))
	}
}

// RemoveInLine deletes the rune span [from, to) of line i.
func (lc *LineCollection) RemoveInLine(i, from, to int) {
	if l := lc.Line(i); l != nil {
		if to < from {
			from, to = to, from
		}
		lc.SetContent(i, spliceRunes(l.content, from, to-from, ""))
	}
}

// InsertLine inserts a new line with the given content at index i, shifting
// later lines down. i is clamped into [0, Count].
func (lc *LineCollection) InsertLine(i int, content string) *Line {
	if i < 0 {
		i = 0
	}
	if i > len(lc.lines) {
		i = len(lc.lines)
	}
	l := lc.newLine(content)
	lc.lines = append(lc.lines, nil)
	copy(lc.lines[i+1:], lc.lines[i:])
	lc.lines[i] = l
	lc.afterSplice(i)
	return l
}

// Append adds a line at the end of the document.
func (lc *LineCollection) Append(content string) *Line {
	return lc.InsertLine(len(lc.lines), content)
}

// DeleteLines removes n lines starting at index i. Deleting every line
// leaves a single empty line.
func (lc *LineCollection) DeleteLines(i, n int) {
	if i < 0 {
		n += i
		i = 0
	}
	if i >= len(lc.lines) || n <= 0 {
		return
	}
	if i+n > len(lc.lines) {
		n = len(lc.lines) - i
	}
	lc.lines = append(lc.lines[:i], lc.lines[i+n:]...)
	if len(lc.lines) == 0 {
		lc.lines = []*Line{lc.newLine("")}
	}
	if i >= len(lc.lines) {
		i = len(lc.lines) - 1
	}
	lc.afterSplice(i)
}

// SplitLine breaks line i at rune column col. The tail, prefixed with
// prefix, becomes a new line below; the head stays on line i.
func (lc *LineCollection) SplitLine(i, col int, prefix string) {
	l := lc.Line(i)
	if l == nil {
		return
	}
	runes := runeSlice(l.content)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	head := string(runes[:col])
	tail := prefix + string(runes[col:])
	l.content = head
	l.indent = indentWidth(head, lc.tabSize)
	newl := lc.newLine(tail)
	lc.lines = append(lc.lines, nil)
	copy(lc.lines[i+2:], lc.lines[i+1:])
	lc.lines[i+1] = newl
	lc.afterSplice(i)
}

// MergeDown folds line i+1 into line i and returns the junction column (the
// rune length line i had before the merge). It returns -1 when there is no
// line below i.
func (lc *LineCollection) MergeDown(i int) int {
	if i < 0 || i+1 >= len(lc.lines) {
		return -1
	}
	l := lc.lines[i]
	junction := l.Len()
	l.content += lc.lines[i+1].content
	l.indent = indentWidth(l.content, lc.tabSize)
	lc.lines = append(lc.lines[:i+1], lc.lines[i+2:]...)
	lc.afterSplice(i)
	return junction
}

// MoveLine swaps line i with the line delta away (+1 down, -1 up). Out of
// range moves are no-ops.
func (lc *LineCollection) MoveLine(i, delta int) bool {
	j := i + delta
	if i < 0 || i >= len(lc.lines) || j < 0 || j >= len(lc.lines) || i == j {
		return false
	}
	lc.lines[i], lc.lines[j] = lc.lines[j], lc.lines[i]
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	// Both swap points need re-rendering; the cascade from the first may
	// settle before reaching the second.
	lc.lines[lo].syntaxIn = -1
	lc.lines[hi].syntaxIn = -1
	lc.renumber(lo)
	if last := lc.recomputeFrom(lo); last < hi {
		lc.recomputeFrom(hi)
	}
	lc.rebuildIndex()
	lc.emit(Event{Kind: EventLinesChanged, Line: -1})
	return true
}

// RegionContent returns the text the region covers, one fragment per line.
// The first and last fragments are trimmed to the region's columns.
func (lc *LineCollection) RegionContent(r Region) []string {
	if r.IsEmpty() {
		return nil
	}
	start := lc.ClampPosition(r.Start)
	end := lc.ClampPosition(r.End)
	if start.Line == end.Line {
		return []string{runeSub(lc.Content(start.Line), start.Col, end.Col)}
	}
	out := make([]string, 0, end.Line-start.Line+1)
	out = append(out, runeSub(lc.Content(start.Line), start.Col, lc.LineLen(start.Line)))
	for i := start.Line + 1; i < end.Line; i++ {
		out = append(out, lc.Content(i))
	}
	out = append(out, runeSub(lc.Content(end.Line), 0, end.Col))
	return out
}

// RemoveRegion deletes the region's span. A multi-line removal merges the
// first line's head with the last line's tail into a single line, so the
// result is exactly the textual splice of the region, even when the merged
// line ends up empty.
func (lc *LineCollection) RemoveRegion(r Region) {
	if r.IsEmpty() {
		return
	}
	start := lc.ClampPosition(r.Start)
	end := lc.ClampPosition(r.End)
	if start.Line == end.Line {
		lc.RemoveInLine(start.Line, start.Col, end.Col)
		return
	}
	first := lc.lines[start.Line]
	head := runeSub(first.content, 0, start.Col)
	tail := runeSub(lc.Content(end.Line), end.Col, lc.LineLen(end.Line))
	first.content = head + tail
	first.indent = indentWidth(first.content, lc.tabSize)
	lc.lines = append(lc.lines[:start.Line+1], lc.lines[end.Line+1:]...)
	lc.afterSplice(start.Line)
}

// SetMarker sets or clears (with "") the gutter annotation of line i.
func (lc *LineCollection) SetMarker(i int, marker string) {
	l := lc.Line(i)
	if l == nil || l.marker == marker {
		return
	}
	l.marker = marker
	lc.emit(Event{Kind: EventLineChanged, Line: i})
}

// afterSplice restores the collection invariants after a structural change
// beginning at index i and emits a single structure notification.
func (lc *LineCollection) afterSplice(i int) {
	lc.renumber(i)
	lc.recomputeFrom(i)
	lc.rebuildIndex()
	lc.emit(Event{Kind: EventLinesChanged, Line: -1})
}

func (lc *LineCollection) renumber(from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(lc.lines); i++ {
		lc.lines[i].index = i
	}
}

// recomputeFrom re-tokenizes line i and cascades downward while a line's
// recorded entry state no longer matches its predecessor's exit state. It
// returns the index of the last line recomputed.
func (lc *LineCollection) recomputeFrom(i int) int {
	if i < 0 {
		i = 0
	}
	last := i
	for j := i; j < len(lc.lines); j++ {
		l := lc.lines[j]
		enter := syntax.Initial
		if j > 0 {
			enter = lc.lines[j-1].syntaxOut
		}
		if j > i && l.syntaxIn == enter {
			break
		}
		lc.render(l, enter)
		last = j
	}
	return last
}

func (lc *LineCollection) render(l *Line, enter syntax.StateID) {
	l.syntaxIn = enter
	if lc.eng != nil {
		l.elements, l.syntaxOut = lc.eng.HighlightLine(enter, l.content)
		return
	}
	l.elements = syntax.PlainSegments(l.content, lc.tabSize)
	l.syntaxOut = enter
}

func (lc *LineCollection) rebuildIndex() {
	lc.index = buildIndentIndex(lc.lines, lc.tabSize)
}

func (lc *LineCollection) emit(ev Event) {
	if lc.notify != nil {
		lc.notify(ev)
	}
}
