package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testGrammar covers the moving parts most grammars need: a multi-line block
// comment state, a line comment state that resets at end of line, and a
// string state whose close rule inherits its style from the state it leaves.
func testGrammar() Config {
	return Config{
		Name:    "testlang",
		Initial: "code",
		States: map[string]State{
			"code": {
				Rules: []Rule{
					{Name: "line-comment", Pattern: `//`, Goto: "linecomment"},
					{Name: "comment-open", Pattern: `/\*`, Goto: "comment"},
					{Name: "string-open", Pattern: `"`, Goto: "string"},
					{Name: "keyword", Pattern: `(?:func|var|return)\b`, Style: "keyword"},
					{Name: "number", Pattern: `[0-9]+`, Style: "number"},
				},
			},
			"comment": {
				Style: "comment",
				Rules: []Rule{
					{Name: "close", Pattern: `\*/`, Goto: "code"},
					{Name: "run", Pattern: `[^*]+`},
				},
			},
			"linecomment": {
				Style: "comment",
				EOL:   "code",
			},
			"string": {
				Style: "string",
				Rules: []Rule{
					{Name: "escape", Pattern: `\\.`},
					{Name: "close", Pattern: `"`, Goto: "code"},
					{Name: "run", Pattern: `[^"\\]+`},
				},
			},
		},
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Compile(testGrammar())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return e
}

func stateID(t *testing.T, e *Engine, name string) StateID {
	t.Helper()
	id, ok := e.StateID(name)
	if !ok {
		t.Fatalf("StateID(%q) not found", name)
	}
	return id
}

func TestHighlightLineBasic(t *testing.T) {
	e := testEngine(t)
	segs, exit := e.HighlightLine(Initial, "x := 1")
	want := []Segment{
		{Style: "plain", Start: 0, Length: 1, Text: "x"},
		{Style: "whitespace", Start: 1, Length: 1, Text: " "},
		{Style: "plain", Start: 2, Length: 2, Text: ":="},
		{Style: "whitespace", Start: 4, Length: 1, Text: " "},
		{Style: "number", Start: 5, Length: 1, Text: "1"},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if exit != Initial {
		t.Errorf("exit state = %d, want %d", exit, Initial)
	}
}

func TestHighlightLineKeyword(t *testing.T) {
	e := testEngine(t)
	segs, _ := e.HighlightLine(Initial, "func f()")
	if len(segs) == 0 || segs[0].Style != "keyword" || segs[0].Text != "func" {
		t.Fatalf("first segment = %+v, want keyword %q", segs, "func")
	}
}

func TestHighlightLineCommentSpansLines(t *testing.T) {
	e := testEngine(t)
	comment := stateID(t, e, "comment")

	_, exit := e.HighlightLine(Initial, "a /* b")
	if exit != comment {
		t.Fatalf("exit after open = %d, want comment state %d", exit, comment)
	}

	segs, exit := e.HighlightLine(exit, "still inside")
	if exit != comment {
		t.Errorf("exit of interior line = %d, want %d", exit, comment)
	}
	for _, s := range segs {
		if s.Style != "comment" && s.Style != "whitespace" {
			t.Errorf("interior segment %+v, want style comment or whitespace", s)
		}
	}

	segs, exit = e.HighlightLine(exit, "*/ x")
	if exit != Initial {
		t.Errorf("exit after close = %d, want %d", exit, Initial)
	}
	if segs[0].Style != "comment" || segs[0].Text != "*/" {
		t.Errorf("close segment = %+v, want comment %q", segs[0], "*/")
	}
	last := segs[len(segs)-1]
	if last.Style != "plain" || last.Text != "x" {
		t.Errorf("segment after close = %+v, want plain %q", last, "x")
	}
}

func TestHighlightLineEOLTransition(t *testing.T) {
	e := testEngine(t)
	segs, exit := e.HighlightLine(Initial, "x // rest of line")
	if exit != Initial {
		t.Errorf("exit state = %d, want %d (line comment resets at EOL)", exit, Initial)
	}
	last := segs[len(segs)-1]
	if last.Style != "comment" {
		t.Errorf("trailing segment style = %q, want %q", last.Style, "comment")
	}
}

func TestHighlightLineEmptyAppliesEOL(t *testing.T) {
	e := testEngine(t)
	linecomment := stateID(t, e, "linecomment")
	segs, exit := e.HighlightLine(linecomment, "")
	if len(segs) != 0 {
		t.Errorf("segments for empty line = %v, want none", segs)
	}
	if exit != Initial {
		t.Errorf("exit state = %d, want %d", exit, Initial)
	}
}

func TestHighlightLineStringStyles(t *testing.T) {
	e := testEngine(t)
	segs, exit := e.HighlightLine(Initial, `"a\nb"`)
	if exit != Initial {
		t.Fatalf("exit state = %d, want %d", exit, Initial)
	}
	// Open quote, contents, escape and close quote all resolve to the string
	// state's style, so the whole literal coalesces into one segment.
	want := []Segment{{Style: "string", Start: 0, Length: 6, Text: `"a\nb"`}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlightLineTabExpansion(t *testing.T) {
	e := testEngine(t)
	segs, _ := e.HighlightLine(Initial, "\tx")
	want := []Segment{
		{Style: "whitespace", Start: 0, Length: 4, Text: "    "},
		{Style: "plain", Start: 4, Length: 1, Text: "x"},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestWithTabSize(t *testing.T) {
	e := testEngine(t)
	e2 := e.WithTabSize(2)
	segs, _ := e2.HighlightLine(Initial, "\t")
	if len(segs) != 1 || segs[0].Length != 2 {
		t.Errorf("tab segment with tab size 2 = %+v, want length 2", segs)
	}
	if e.TabSize() != DefaultTabSize {
		t.Errorf("original engine tab size = %d, want %d", e.TabSize(), DefaultTabSize)
	}
}

func TestHighlightLineIdempotent(t *testing.T) {
	e := testEngine(t)
	line := `func f() { return "/*" } // tail`
	first, exitFirst := e.HighlightLine(Initial, line)
	second, exitSecond := e.HighlightLine(Initial, line)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated tokenize differs (-first +second):\n%s", diff)
	}
	if exitFirst != exitSecond {
		t.Errorf("exit states differ: %d vs %d", exitFirst, exitSecond)
	}
}

func TestHighlightLineSegmentsContiguous(t *testing.T) {
	e := testEngine(t)
	lines := []string{
		"func main() {",
		"\treturn 42 /* answer",
		"   still comment\t*/",
		`"str with \" escape" 123`,
	}
	state := Initial
	for _, line := range lines {
		var segs []Segment
		segs, state = e.HighlightLine(state, line)
		col := 0
		for i, s := range segs {
			if s.Start != col {
				t.Errorf("line %q segment %d starts at %d, want %d", line, i, s.Start, col)
			}
			if s.Length <= 0 {
				t.Errorf("line %q segment %d has length %d", line, i, s.Length)
			}
			col = s.Start + s.Length
		}
	}
}

func TestMatchAtStylePrecedence(t *testing.T) {
	cfg := Config{
		Name:    "styles",
		Initial: "a",
		States: map[string]State{
			"a": {
				Style: "alpha",
				Rules: []Rule{
					{Name: "own", Pattern: `1`, Style: "one"},
					{Name: "target", Pattern: `2`, Goto: "b"},
					{Name: "bare", Pattern: `3`, Goto: "c"},
					{Name: "stay", Pattern: `4`},
				},
			},
			"b": {Style: "beta"},
			"c": {},
		},
	}
	e, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "rule style wins", text: "1", want: "one"},
		{name: "target state style", text: "2", want: "beta"},
		{name: "current state style", text: "3", want: "alpha"},
		{name: "stay inherits current via target", text: "4", want: "alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := e.MatchAt(Initial, tt.text, 0)
			if !ok {
				t.Fatalf("MatchAt(%q) did not match", tt.text)
			}
			if m.Style != tt.want {
				t.Errorf("MatchAt(%q).Style = %q, want %q", tt.text, m.Style, tt.want)
			}
		})
	}
}

func TestMatchAtSkipsZeroLength(t *testing.T) {
	cfg := Config{
		Name:    "zero",
		Initial: "s",
		States: map[string]State{
			"s": {
				Rules: []Rule{
					{Name: "maybe", Pattern: `a*`},
					{Name: "b", Pattern: `b`, Style: "bee"},
				},
			},
		},
	}
	e, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	m, ok := e.MatchAt(Initial, "b", 0)
	if !ok {
		t.Fatal("MatchAt did not match past the zero-length rule")
	}
	if m.Length != 1 || m.Style != "bee" {
		t.Errorf("MatchAt = %+v, want length 1 style bee", m)
	}
}

func TestHighlightLineUnknownStateClamps(t *testing.T) {
	e := testEngine(t)
	segs, exit := e.HighlightLine(StateID(99), "x")
	if exit != Initial {
		t.Errorf("exit state = %d, want clamp to %d", exit, Initial)
	}
	if len(segs) != 1 || segs[0].Style != "plain" {
		t.Errorf("segments = %+v, want one plain segment", segs)
	}
}

func TestPlainSegments(t *testing.T) {
	segs := PlainSegments(" a\tbc", 4)
	want := []Segment{
		{Style: "whitespace", Start: 0, Length: 1, Text: " "},
		{Style: "plain", Start: 1, Length: 1, Text: "a"},
		{Style: "whitespace", Start: 2, Length: 4, Text: "    "},
		{Style: "plain", Start: 6, Length: 2, Text: "bc"},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainSegmentsEmpty(t *testing.T) {
	if segs := PlainSegments("", 4); len(segs) != 0 {
		t.Errorf("PlainSegments(\"\") = %v, want none", segs)
	}
}
