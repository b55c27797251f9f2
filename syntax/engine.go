// Package syntax provides a stateful, line-oriented tokenizer for styling
// document text. A grammar is a set of named states, each carrying an ordered
// list of anchored regexp rules; tokenizing a line threads a state through it
// and yields styled segments plus the state the next line should start in.
package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StateID identifies a compiled grammar state. The grammar's initial state is
// always Initial.
type StateID int

// Initial is the state every document starts in at line 0.
const Initial StateID = 0

// DefaultTabSize is the tab expansion width used when none is configured.
const DefaultTabSize = 4

// Styles produced by the engine itself, independent of any grammar.
const (
	StylePlain      = "plain"
	StyleWhitespace = "whitespace"
)

// Segment is one styled run of a tokenized line. Start and Length are display
// columns: each rune counts one column and each tab expands to the engine's
// tab size. Segments for a line are contiguous, non-overlapping and ordered.
type Segment struct {
	Style  string
	Start  int
	Length int
	Text   string
}

// Match reports a successful rule application at a position: how many bytes
// the rule consumed, the style of the consumed text, and the state to
// continue in.
type Match struct {
	Length int
	Style  string
	Next   StateID
}

type compiledRule struct {
	name   string
	re     anchoredPattern
	style  string
	target StateID // -1 = stay in the current state
}

type compiledState struct {
	name  string
	style string
	rules []compiledRule
	eol   StateID // -1 = none
}

// Engine is a compiled grammar. It is immutable after Compile and safe for
// concurrent use.
type Engine struct {
	name    string
	exts    []string
	states  []compiledState
	ids     map[string]StateID
	tabSize int
}

// Name returns the grammar's language name.
func (e *Engine) Name() string { return e.name }

// Extensions returns the file-name extensions the grammar claims.
func (e *Engine) Extensions() []string { return e.exts }

// TabSize returns the tab expansion width in display columns.
func (e *Engine) TabSize() int { return e.tabSize }

// WithTabSize returns a copy of the engine using the given tab expansion
// width. The compiled states are shared with the receiver. Widths below 1
// fall back to DefaultTabSize.
func (e *Engine) WithTabSize(n int) *Engine {
	if n < 1 {
		n = DefaultTabSize
	}
	clone := *e
	clone.tabSize = n
	return &clone
}

// States returns the number of compiled states.
func (e *Engine) States() int { return len(e.states) }

// StateID resolves a state name to its compiled id.
func (e *Engine) StateID(name string) (StateID, bool) {
	id, ok := e.ids[name]
	return id, ok
}

// StateName returns the authored name of a state, or "" for an unknown id.
func (e *Engine) StateName(id StateID) string {
	if int(id) < 0 || int(id) >= len(e.states) {
		return ""
	}
	return e.states[id].name
}

// StateStyle returns the default style of a state, or "" when the state
// declares none.
func (e *Engine) StateStyle(id StateID) string {
	if int(id) < 0 || int(id) >= len(e.states) {
		return ""
	}
	return e.states[id].style
}

func (e *Engine) clamp(id StateID) StateID {
	if int(id) < 0 || int(id) >= len(e.states) {
		return Initial
	}
	return id
}

// MatchAt tries the state's rules in order against text at byte offset pos
// and returns the first successful match. Zero-length matches are skipped so
// the caller always makes progress. The match style resolves in order: the
// rule's own style, the target state's style, the current state's style, and
// finally StylePlain.
func (e *Engine) MatchAt(state StateID, text string, pos int) (Match, bool) {
	state = e.clamp(state)
	st := &e.states[state]
	for i := range st.rules {
		r := &st.rules[i]
		n := r.re.matchLen(text[pos:])
		if n <= 0 {
			continue
		}
		next := state
		if r.target >= 0 {
			next = r.target
		}
		style := r.style
		if style == "" {
			style = e.states[next].style
		}
		if style == "" {
			style = st.style
		}
		if style == "" {
			style = StylePlain
		}
		return Match{Length: n, Style: style, Next: next}, true
	}
	return Match{}, false
}

// HighlightLine tokenizes one line of text entering in the given state and
// returns its segments along with the state the following line starts in.
// Whitespace at the scan position is consumed as StyleWhitespace segments
// before rules are consulted; a position no rule matches consumes a single
// rune styled with the current state's style (StylePlain when it has none).
// The state's end-of-line transition, if any, is applied last, so an empty
// line yields no segments but may still change state.
func (e *Engine) HighlightLine(enter StateID, text string) ([]Segment, StateID) {
	state := e.clamp(enter)
	var segs []Segment
	col := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			j := i + size
			for j < len(text) {
				r2, sz := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += sz
			}
			col = e.emit(&segs, StyleWhitespace, text[i:j], col)
			i = j
			continue
		}
		if m, ok := e.MatchAt(state, text, i); ok {
			col = e.emit(&segs, m.Style, text[i:i+m.Length], col)
			i += m.Length
			state = m.Next
			continue
		}
		style := e.states[state].style
		if style == "" {
			style = StylePlain
		}
		col = e.emit(&segs, style, string(r), col)
		i += size
	}
	if eol := e.states[state].eol; eol >= 0 {
		state = eol
	}
	return coalesce(segs), state
}

// emit appends text as segments starting at display column col, expanding
// each tab into a StyleWhitespace segment of tabSize spaces, and returns the
// column after the appended text.
func (e *Engine) emit(segs *[]Segment, style, text string, col int) int {
	start := 0
	flush := func(end int) {
		if end <= start {
			return
		}
		chunk := text[start:end]
		n := utf8.RuneCountInString(chunk)
		*segs = append(*segs, Segment{Style: style, Start: col, Length: n, Text: chunk})
		col += n
	}
	for idx, r := range text {
		if r != '\t' {
			continue
		}
		flush(idx)
		*segs = append(*segs, Segment{
			Style:  StyleWhitespace,
			Start:  col,
			Length: e.tabSize,
			Text:   strings.Repeat(" ", e.tabSize),
		})
		col += e.tabSize
		start = idx + 1
	}
	flush(len(text))
	return col
}

// coalesce merges adjacent segments with the same style in place.
func coalesce(segs []Segment) []Segment {
	if len(segs) < 2 {
		return segs
	}
	out := segs[:1]
	for _, s := range segs[1:] {
		last := &out[len(out)-1]
		if s.Style == last.Style && s.Start == last.Start+last.Length {
			last.Length += s.Length
			last.Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

// PlainSegments segments text the way an engineless document renders it:
// whitespace runs as StyleWhitespace (tabs expanded to tabSize spaces) and
// everything else as StylePlain.
func PlainSegments(text string, tabSize int) []Segment {
	if tabSize < 1 {
		tabSize = DefaultTabSize
	}
	e := Engine{states: []compiledState{{eol: -1}}, tabSize: tabSize}
	var segs []Segment
	col := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		j := i + size
		space := unicode.IsSpace(r)
		for j < len(text) {
			r2, sz := utf8.DecodeRuneInString(text[j:])
			if unicode.IsSpace(r2) != space {
				break
			}
			j += sz
		}
		style := StylePlain
		if space {
			style = StyleWhitespace
		}
		col = e.emit(&segs, style, text[i:j], col)
		i = j
	}
	return coalesce(segs)
}
