package editor

import (
	"unicode/utf8"

	"github.com/odvcencio/inkwell/syntax"
)

// Line is one line of document text plus its cached derived state. Lines are
// owned by a LineCollection; the collection is the only writer. A line's id
// is assigned once and survives reordering, while its index always mirrors
// the line's current slice position.
type Line struct {
	id        int
	index     int
	content   string
	indent    int
	syntaxIn  syntax.StateID
	syntaxOut syntax.StateID
	elements  []syntax.Segment
	marker    string
}

// ID returns the line's stable identity within its document.
func (l *Line) ID() int { return l.id }

// Index returns the line's current 0-based position in the document.
func (l *Line) Index() int { return l.index }

// Content returns the line's text without a trailing newline.
func (l *Line) Content() string { return l.content }

// Len returns the line's length in runes.
func (l *Line) Len() int { return utf8.RuneCountInString(l.content) }

// Indent returns the width of the line's leading whitespace in display
// columns, with tabs expanded at the document tab size.
func (l *Line) Indent() int { return l.indent }

// Blank reports whether the line is empty or all whitespace.
func (l *Line) Blank() bool {
	for _, r := range l.content {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

// SyntaxIn returns the tokenizer state the line was last rendered entering.
func (l *Line) SyntaxIn() syntax.StateID { return l.syntaxIn }

// SyntaxOut returns the tokenizer state the line leaves for its successor.
func (l *Line) SyntaxOut() syntax.StateID { return l.syntaxOut }

// Elements returns the line's cached render segments.
func (l *Line) Elements() []syntax.Segment { return l.elements }

// Marker returns the line's gutter annotation, or "".
func (l *Line) Marker() string { return l.marker }

// runeSlice converts content to runes once for column arithmetic.
func runeSlice(s string) []rune {
	return []rune(s)
}

// spliceRunes replaces the rune span [at, at+del) of s with insert and
// returns the result. Out-of-range spans are clamped.
func spliceRunes(s string, at, del int, insert string) string {
	runes := runeSlice(s)
	if at < 0 {
		at = 0
	}
	if at > len(runes) {
		at = len(runes)
	}
	end := at + del
	if end < at {
		end = at
	}
	if end > len(runes) {
		end = len(runes)
	}
	out := make([]rune, 0, len(runes)-(end-at)+utf8.RuneCountInString(insert))
	out = append(out, runes[:at]...)
	out = append(out, runeSlice(insert)...)
	out = append(out, runes[end:]...)
	return string(out)
}

// runeSub returns the rune span [from, to) of s, clamped to its bounds.
func runeSub(s string, from, to int) string {
	runes := runeSlice(s)
	if from < 0 {
		from = 0
	}
	if from > len(runes) {
		from = len(runes)
	}
	if to < from {
		to = from
	}
	if to > len(runes) {
		to = len(runes)
	}
	return string(runes[from:to])
}

// indentWidth measures leading whitespace in display columns, counting each
// tab as tabSize columns.
func indentWidth(content string, tabSize int) int {
	w := 0
	for _, r := range content {
		switch r {
		case ' ':
			w++
		case '\t':
			w += tabSize
		default:
			return w
		}
	}
	return w
}

// leadingWhitespace returns the line's literal indentation characters.
func leadingWhitespace(content string) string {
	for i, r := range content {
		if r != ' ' && r != '\t' {
			return content[:i]
		}
	}
	return content
}
