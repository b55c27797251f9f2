package editor

import (
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/inkwell/syntax"
)

// Document is the aggregate root of the engine: line storage, cursors,
// tokenizer wiring and change notification behind one intent surface.
// Runtime misuse (out-of-range indices, impossible targets) degrades to
// clamping or no-ops; only construction reports errors. A Document is not
// safe for concurrent use.
type Document struct {
	id      string
	lines   *LineCollection
	cursors *CursorCollection
	events  *notifier
	logger  *slog.Logger
	tabSize int
}

type docOptions struct {
	tabSize int
	eng     *syntax.Engine
	logger  *slog.Logger
	text    string
}

// Option configures NewDocument.
type Option func(*docOptions)

// WithTabSize sets the tab width used for indent math and tab expansion.
func WithTabSize(n int) Option {
	return func(o *docOptions) { o.tabSize = n }
}

// WithSyntax attaches a compiled grammar. A nil engine leaves the document
// plain.
func WithSyntax(e *syntax.Engine) Option {
	return func(o *docOptions) { o.eng = e }
}

// WithLogger sets the logger used for observer failure reports.
func WithLogger(l *slog.Logger) Option {
	return func(o *docOptions) { o.logger = l }
}

// WithText sets the document's initial content.
func WithText(s string) Option {
	return func(o *docOptions) { o.text = s }
}

// NewDocument builds a document. Invalid configuration is the only error
// path.
func NewDocument(opts ...Option) (*Document, error) {
	o := docOptions{tabSize: syntax.DefaultTabSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tabSize < 1 {
		return nil, fmt.Errorf("tab size %d: must be at least 1", o.tabSize)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	d := &Document{
		id:      ulid.Make().String(),
		cursors: NewCursorCollection(),
		events:  newNotifier(o.logger),
		logger:  o.logger,
		tabSize: o.tabSize,
	}
	d.lines = NewLineCollection(o.text, o.eng, o.tabSize)
	d.lines.notify = d.events.emit
	return d, nil
}

// ID returns the document's unique identity.
func (d *Document) ID() string { return d.id }

// TabSize returns the document's tab width.
func (d *Document) TabSize() int { return d.tabSize }

// Language returns the attached grammar's name, or "" for a plain document.
func (d *Document) Language() string {
	if d.lines.eng == nil {
		return ""
	}
	return d.lines.eng.Name()
}

// Lines exposes the document's line collection for read access and direct
// line-level manipulation.
func (d *Document) Lines() *LineCollection { return d.lines }

// Cursors exposes the document's cursor collection.
func (d *Document) Cursors() *CursorCollection { return d.cursors }

// Observe registers fn for the event kinds in mask and returns an
// unsubscribe closure. Delivery is synchronous and in subscription order; a
// panicking observer is reported through the document logger and skipped.
func (d *Document) Observe(mask EventKind, fn func(Event)) func() {
	return d.events.observe(mask, fn)
}

// Text returns the whole document joined with newlines.
func (d *Document) Text() string { return d.lines.Text() }

// SetText replaces the document content and resets every cursor to the
// origin, dropping secondaries.
func (d *Document) SetText(s string) {
	d.lines.SetText(s)
	d.cursors.Clear()
	p := d.cursors.Primary()
	p.pos = Position{}
	p.sel = nil
	d.events.emit(Event{Kind: EventCursorsChanged, Line: -1})
}

// LineCount returns the number of lines, always at least 1.
func (d *Document) LineCount() int { return d.lines.Count() }

// LineContent returns the text of line i, "" when out of range.
func (d *Document) LineContent(i int) string { return d.lines.Content(i) }

// LineID returns the stable id of line i, or -1 when out of range.
func (d *Document) LineID(i int) int {
	if l := d.lines.Line(i); l != nil {
		return l.id
	}
	return -1
}

// LineIndent returns the indent width of line i in display columns.
func (d *Document) LineIndent(i int) int {
	if l := d.lines.Line(i); l != nil {
		return l.indent
	}
	return 0
}

// RenderElements returns the cached styled segments of line i.
func (d *Document) RenderElements(i int) []syntax.Segment { return d.lines.Elements(i) }

// Marker returns line i's gutter annotation.
func (d *Document) Marker(i int) string {
	if l := d.lines.Line(i); l != nil {
		return l.marker
	}
	return ""
}

// SetMarker sets (or clears, with "") line i's gutter annotation.
func (d *Document) SetMarker(i int, marker string) { d.lines.SetMarker(i, marker) }

// IndentRegions returns the document's indent blocks, one slice per guide
// column.
func (d *Document) IndentRegions() [][]IndentBlock { return d.lines.IndentIndex().Blocks() }

// IndentGuides returns the guide columns crossing line i.
func (d *Document) IndentGuides(i int) []int { return d.lines.IndentIndex().GuidesAt(i) }

// PrimaryPos returns the primary cursor's position.
func (d *Document) PrimaryPos() Position { return d.cursors.Primary().pos }

// PrimarySelection returns the primary cursor's selected region, if any.
func (d *Document) PrimarySelection() (Region, bool) {
	p := d.cursors.Primary()
	if !p.HasSelection() {
		return Region{}, false
	}
	return p.sel.Region, true
}

// PrimaryClipboard returns the primary cursor's clipboard content.
func (d *Document) PrimaryClipboard() string { return d.cursors.Primary().clip }

// CursorPositions returns every cursor position in visit order: primary
// first, then secondaries ascending.
func (d *Document) CursorPositions() []Position {
	out := make([]Position, 0, d.cursors.Count())
	d.cursors.ForEach(func(c *Cursor) { out = append(out, c.pos) })
	return out
}

// SelectionRegions returns the active selections in visit order.
func (d *Document) SelectionRegions() []Region {
	var out []Region
	d.cursors.ForEach(func(c *Cursor) {
		if c.HasSelection() {
			out = append(out, c.sel.Region)
		}
	})
	return out
}

// AddCursor places a secondary cursor at p (clamped).
func (d *Document) AddCursor(p Position) {
	d.cursors.Add(d.lines.ClampPosition(p))
	d.emitCursors()
}

// AddCursorAbove clones the topmost cursor one line up.
func (d *Document) AddCursorAbove() {
	low := d.cursors.Lowest()
	if low.pos.Line == 0 {
		return
	}
	d.cursors.Add(d.lines.ClampPosition(Position{Line: low.pos.Line - 1, Col: low.pos.Col}))
	d.emitCursors()
}

// AddCursorBelow clones the bottommost cursor one line down.
func (d *Document) AddCursorBelow() {
	high := d.cursors.Highest()
	if high.pos.Line >= d.lines.Count()-1 {
		return
	}
	d.cursors.Add(d.lines.ClampPosition(Position{Line: high.pos.Line + 1, Col: high.pos.Col}))
	d.emitCursors()
}

// AddCursorColumn places one cursor per line of [startLine, endLine] at the
// given column, clamped per line. Lines already carrying a cursor at that
// spot are skipped.
func (d *Document) AddCursorColumn(startLine, endLine, col int) {
	if startLine > endLine {
		startLine, endLine = endLine, startLine
	}
	for i := startLine; i <= endLine; i++ {
		if i < 0 || i >= d.lines.Count() {
			continue
		}
		d.cursors.Add(d.lines.ClampPosition(Position{Line: i, Col: col}))
	}
	d.emitCursors()
}

// RemoveLastAddedCursor drops the most recently added secondary cursor.
func (d *Document) RemoveLastAddedCursor() {
	if d.cursors.RemoveLastAdded() {
		d.emitCursors()
	}
}

// ClearSecondaryCursors keeps only the primary cursor.
func (d *Document) ClearSecondaryCursors() {
	if d.cursors.IsMulti() {
		d.cursors.Clear()
		d.emitCursors()
	}
}

// SelectAll puts the primary selection around the whole document and drops
// secondary cursors.
func (d *Document) SelectAll() {
	d.cursors.Clear()
	p := d.cursors.Primary()
	p.sel = NewSelection(Position{})
	p.pos = d.lines.End()
	p.sel.Adjust(p.pos)
	d.emitCursors()
}

// SelectWord selects the word under each cursor. Cursors touching no word
// are left alone.
func (d *Document) SelectWord() {
	changed := false
	d.cursors.ForEach(func(c *Cursor) {
		r, ok := d.lines.WordRangeAt(c.pos)
		if !ok {
			return
		}
		c.sel = NewSelection(r.Start)
		c.pos = r.End
		c.sel.Adjust(c.pos)
		changed = true
	})
	if changed {
		d.finishCursorOp(true)
	}
}

// BracketMatch resolves the bracket pair adjacent to the primary cursor:
// the bracket at or just before the cursor plus its match. ok is false when
// the cursor is not next to a bracket or the pair is unbalanced.
func (d *Document) BracketMatch() (at, match Position, ok bool) {
	p := d.cursors.Primary().pos
	off, found := d.encapsulatorOffset(p)
	if !found {
		return Position{}, Position{}, false
	}
	at = Position{Line: p.Line, Col: p.Col + off}
	match, ok = d.lines.MatchingBracket(at)
	return at, match, ok
}

// encapsulatorOffset reports whether the cell at the position (offset 0) or
// just before it (offset -1) holds a bracket, preferring the one at the
// position.
func (d *Document) encapsulatorOffset(p Position) (int, bool) {
	if _, ok := d.lines.BracketAt(p); ok {
		return 0, true
	}
	if p.Col > 0 {
		if _, ok := d.lines.BracketAt(Position{Line: p.Line, Col: p.Col - 1}); ok {
			return -1, true
		}
	}
	return 0, false
}

// emitCursors publishes a cursor-set notification.
func (d *Document) emitCursors() {
	d.events.emit(Event{Kind: EventCursorsChanged, Line: -1})
}

// finishCursorOp restores collection invariants after cursors moved and
// publishes a notification when anything changed.
func (d *Document) finishCursorOp(changed bool) {
	d.cursors.resort()
	if d.cursors.dedupe() {
		changed = true
	}
	if changed {
		d.emitCursors()
	}
}
