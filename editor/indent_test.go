package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeIndent(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		tabSize int
		want    string
	}{
		{"no indent", "hello", 4, ""},
		{"preserve tab indent", "\thello", 4, "\t"},
		{"preserve space indent", "    hello", 4, "    "},
		{"increase after brace", "\tif x {", 4, "\t\t"},
		{"increase after paren with spaces", "    func(", 4, "        "},
		{"empty line", "", 4, ""},
		{"only whitespace", "    ", 4, "    "},
		{"increase after bracket", "items [", 4, "\t"},
		{"tab indent increase after bracket", "\tarr = [", 4, "\t\t"},
		{"no increase without bracket", "\treturn 1", 4, "\t"},
		{"space increase follows tab size", "  f(", 2, "    "},
		{"trailing spaces ignored", "f( \t", 4, "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeIndent(tt.line, tt.tabSize)
			if got != tt.want {
				t.Errorf("ComputeIndent(%q, %d) = %q, want %q", tt.line, tt.tabSize, got, tt.want)
			}
		})
	}
}

func TestDetectIndentStyle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"tabs", "func main() {\n\tfmt.Println()\n}", "\t"},
		{"spaces", "def main():\n    print()\n    print()\n", "    "},
		{"no indent defaults to tab", "a\nb\nc\n", "\t"},
		{"empty text defaults to tab", "", "\t"},
		{"two space indent", "if true:\n  pass\n  more\n", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectIndentStyle(tt.text)
			if got != tt.want {
				t.Errorf("DetectIndentStyle(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func indexFor(text string, tabSize int) *IndentRegionIndex {
	return NewLineCollection(text, nil, tabSize).IndentIndex()
}

func TestIndentIndexBlankLinesExtendBlocks(t *testing.T) {
	// The blank middle line stays inside the block around it.
	x := indexFor("  a\n\n  b", 2)

	want := [][]IndentBlock{{{Column: 0, StartLine: 0, EndLine: 2}}}
	if diff := cmp.Diff(want, x.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentIndexBlankLinesNeverOpen(t *testing.T) {
	// Blanks between two flat lines open nothing, whatever their own
	// whitespace looks like.
	x := indexFor("a\n    \nb", 4)
	if got := x.Columns(); got != 0 {
		t.Fatalf("Columns() = %d, want 0", got)
	}
}

func TestIndentIndexNestedBlocks(t *testing.T) {
	text := "fn {\n\tbody {\n\t\tdeep\n\t}\n\ttail\n}"
	x := indexFor(text, 4)

	want := [][]IndentBlock{
		{{Column: 0, StartLine: 1, EndLine: 4}},
		{{Column: 1, StartLine: 2, EndLine: 2}},
	}
	if diff := cmp.Diff(want, x.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentIndexSiblingBlocksShareColumn(t *testing.T) {
	text := "a\n\tone\nb\n\ttwo\n\tmore\nc"
	x := indexFor(text, 4)

	want := []IndentBlock{
		{Column: 0, StartLine: 1, EndLine: 1},
		{Column: 0, StartLine: 3, EndLine: 4},
	}
	if diff := cmp.Diff(want, x.BlocksAt(0)); diff != "" {
		t.Fatalf("column 0 blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentIndexPartialIndentOpensNothing(t *testing.T) {
	// Three spaces at tab size 4 is depth zero: no full stop reached.
	x := indexFor("a\n   b", 4)
	if got := x.Columns(); got != 0 {
		t.Fatalf("Columns() = %d, want 0", got)
	}
}

func TestIndentIndexTrailingBlanksStayInside(t *testing.T) {
	x := indexFor("a\n\tb\n\n", 4)

	want := [][]IndentBlock{{{Column: 0, StartLine: 1, EndLine: 3}}}
	if diff := cmp.Diff(want, x.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentIndexGuidesAt(t *testing.T) {
	text := "fn {\n\tbody {\n\t\tdeep\n\t}\n}"
	x := indexFor(text, 4)

	tests := []struct {
		line int
		want []int
	}{
		{line: 0, want: nil},
		{line: 1, want: []int{0}},
		{line: 2, want: []int{0, 1}},
		{line: 3, want: []int{0}},
		{line: 4, want: nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, x.GuidesAt(tt.line)); diff != "" {
			t.Errorf("GuidesAt(%d) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestIndentIndexNilSafe(t *testing.T) {
	var x *IndentRegionIndex
	if x.Columns() != 0 || x.BlocksAt(0) != nil || x.Blocks() != nil || x.GuidesAt(0) != nil {
		t.Fatalf("nil index leaked data")
	}
}

func TestIndentBlockContains(t *testing.T) {
	b := IndentBlock{Column: 0, StartLine: 2, EndLine: 4}
	for line, want := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		if got := b.Contains(line); got != want {
			t.Errorf("Contains(%d) = %v, want %v", line, got, want)
		}
	}
}
