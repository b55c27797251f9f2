package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInsertAdvancesCursor(t *testing.T) {
	doc := mustDocument(t, WithText("world"))

	doc.Insert("hé ")
	if got := doc.Text(); got != "hé world" {
		t.Fatalf("Text() = %q, want %q", got, "hé world")
	}
	// Columns count runes, not bytes.
	if got := doc.PrimaryPos(); got != (Position{0, 3}) {
		t.Fatalf("PrimaryPos() = %v, want {0 3}", got)
	}
}

func TestInsertAtEveryCursor(t *testing.T) {
	doc := mustDocument(t, WithText("abc"))
	doc.AddCursor(Position{0, 2})

	doc.Insert("X")
	if got := doc.Text(); got != "XabXc" {
		t.Fatalf("Text() = %q, want %q", got, "XabXc")
	}
	want := []Position{{0, 1}, {0, 4}}
	if diff := cmp.Diff(want, doc.CursorPositions()); diff != "" {
		t.Fatalf("cursor positions (-want +got):\n%s", diff)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	doc := mustDocument(t, WithText("hello world"))
	doc.MoveTo(Position{0, 5}, false)
	doc.MoveWordRight(true)

	doc.Insert("!")
	if got := doc.Text(); got != "hello!" {
		t.Fatalf("Text() = %q, want %q", got, "hello!")
	}
	if _, ok := doc.PrimarySelection(); ok {
		t.Fatalf("selection survived the insert")
	}
}

func TestInsertWithNewlines(t *testing.T) {
	doc := mustDocument(t, WithText("ab"))
	doc.MoveTo(Position{0, 1}, false)

	doc.Insert("1\n2")
	if got := doc.Text(); got != "a1\n2b" {
		t.Fatalf("Text() = %q, want %q", got, "a1\n2b")
	}
	if got := doc.PrimaryPos(); got != (Position{1, 1}) {
		t.Fatalf("PrimaryPos() = %v, want {1 1}", got)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	doc := mustDocument(t, WithText("abc"))

	doc.InsertNewline(false)
	if got := doc.Text(); got != "\nabc" {
		t.Fatalf("Text() = %q, want %q", got, "\nabc")
	}
	// The cursor rides the pushed-down original line.
	if got := doc.PrimaryPos(); got != (Position{1, 0}) {
		t.Fatalf("PrimaryPos() = %v, want {1 0}", got)
	}
}

func TestInsertNewlineAtLineEnd(t *testing.T) {
	doc := mustDocument(t, WithText("  abc"))
	doc.MoveLineEnd(false)

	doc.InsertNewline(true)
	if got := doc.Text(); got != "  abc\n  " {
		t.Fatalf("Text() = %q, want %q", got, "  abc\n  ")
	}
	if got := doc.PrimaryPos(); got != (Position{1, 2}) {
		t.Fatalf("PrimaryPos() = %v, want the indent column {1 2}", got)
	}
}

func TestInsertNewlineSplitsMidLine(t *testing.T) {
	doc := mustDocument(t, WithText("  foobar"))
	doc.MoveTo(Position{0, 5}, false)

	doc.InsertNewline(true)
	if got := doc.Text(); got != "  foo\n  bar" {
		t.Fatalf("Text() = %q, want %q", got, "  foo\n  bar")
	}
	if got := doc.PrimaryPos(); got != (Position{1, 2}) {
		t.Fatalf("PrimaryPos() = %v, want {1 2}", got)
	}
}

func TestInsertNewlineDeepensAfterBracket(t *testing.T) {
	doc := mustDocument(t, WithText("fn main() {"))
	doc.MoveLineEnd(false)

	doc.InsertNewline(true)
	if got := doc.Text(); got != "fn main() {\n\t" {
		t.Fatalf("Text() = %q, want %q", got, "fn main() {\n\t")
	}
	if got := doc.PrimaryPos(); got != (Position{1, 1}) {
		t.Fatalf("PrimaryPos() = %v, want {1 1}", got)
	}
}

func TestInsertNewlineWithoutAutoIndent(t *testing.T) {
	doc := mustDocument(t, WithText("  abc"))
	doc.MoveLineEnd(false)

	doc.InsertNewline(false)
	if got := doc.Text(); got != "  abc\n" {
		t.Fatalf("Text() = %q, want %q", got, "  abc\n")
	}
	if got := doc.PrimaryPos(); got != (Position{1, 0}) {
		t.Fatalf("PrimaryPos() = %v, want {1 0}", got)
	}
}

func TestDeleteBackwardsMergesAtColumnZero(t *testing.T) {
	doc := mustDocument(t, WithText("ab\ncd"))
	doc.MoveTo(Position{1, 0}, false)

	doc.DeleteBackwards(1)
	if got := doc.Text(); got != "abcd" {
		t.Fatalf("Text() = %q, want %q", got, "abcd")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 2}) {
		t.Fatalf("PrimaryPos() = %v, want the junction {0 2}", got)
	}
}

func TestDeleteBackwardsCountCrossesLines(t *testing.T) {
	doc := mustDocument(t, WithText("ab\ncd"))
	doc.MoveTo(Position{1, 1}, false)

	doc.DeleteBackwards(3)
	if got := doc.Text(); got != "ad" {
		t.Fatalf("Text() = %q, want %q", got, "ad")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 1}) {
		t.Fatalf("PrimaryPos() = %v, want {0 1}", got)
	}

	// Running out of document stops quietly.
	doc.DeleteBackwards(10)
	if got := doc.Text(); got != "d" {
		t.Fatalf("Text() = %q, want %q", got, "d")
	}
}

func TestDeleteBackwardsSelectionIgnoresCount(t *testing.T) {
	doc := mustDocument(t, WithText("hello world"))
	doc.MoveTo(Position{0, 5}, false)
	doc.MoveWordRight(true)

	doc.DeleteBackwards(99)
	if got := doc.Text(); got != "hello" {
		t.Fatalf("Text() = %q, want %q", got, "hello")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 5}) {
		t.Fatalf("PrimaryPos() = %v, want {0 5}", got)
	}
}

func TestDeleteForwardsMergesAtLineEnd(t *testing.T) {
	doc := mustDocument(t, WithText("ab\ncd"))
	doc.MoveTo(Position{0, 2}, false)

	doc.DeleteForwards(1)
	if got := doc.Text(); got != "abcd" {
		t.Fatalf("Text() = %q, want %q", got, "abcd")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 2}) {
		t.Fatalf("PrimaryPos() = %v, want {0 2}", got)
	}

	doc.DeleteForwards(2)
	if got := doc.Text(); got != "ab" {
		t.Fatalf("Text() = %q, want %q", got, "ab")
	}
}

func TestMultiCursorBackspaceConverges(t *testing.T) {
	doc := mustDocument(t, WithText("abc"))
	doc.MoveTo(Position{0, 1}, false)
	doc.AddCursor(Position{0, 2})
	doc.AddCursor(Position{0, 3})

	doc.DeleteBackwards(1)
	if got := doc.Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
	// All three cursors land on the origin and merge.
	if got := doc.Cursors().Count(); got != 1 {
		t.Fatalf("cursor count = %d, want 1", got)
	}
}

func TestMultiCursorTypingOnSeparateLines(t *testing.T) {
	doc := mustDocument(t, WithText("one\ntwo\nthree"))
	doc.MoveLineEnd(false)
	doc.AddCursor(Position{1, 3})
	doc.AddCursor(Position{2, 5})

	doc.Insert("!")
	if got := doc.Text(); got != "one!\ntwo!\nthree!" {
		t.Fatalf("Text() = %q, want %q", got, "one!\ntwo!\nthree!")
	}

	doc.DeleteBackwards(1)
	if got := doc.Text(); got != "one\ntwo\nthree" {
		t.Fatalf("Text() after backspace = %q", got)
	}
	if got := doc.Cursors().Count(); got != 3 {
		t.Fatalf("cursor count = %d, want 3", got)
	}
}

func TestMultiCursorNewlinePushesPeersDown(t *testing.T) {
	doc := mustDocument(t, WithText("ab\ncd"))
	doc.MoveTo(Position{0, 1}, false)
	doc.AddCursor(Position{1, 1})

	doc.InsertNewline(false)
	if got := doc.Text(); got != "a\nb\nc\nd" {
		t.Fatalf("Text() = %q, want %q", got, "a\nb\nc\nd")
	}
	want := []Position{{1, 0}, {3, 0}}
	if diff := cmp.Diff(want, doc.CursorPositions()); diff != "" {
		t.Fatalf("cursor positions (-want +got):\n%s", diff)
	}
}

func TestInsertReplacesEverySelection(t *testing.T) {
	doc := mustDocument(t, WithText("abc\ndef"))
	doc.MoveTo(Position{0, 2}, true) // primary selects "ab"
	doc.AddCursor(Position{1, 0})
	sec := doc.Cursors().All()[1]
	doc.setCursorPos(sec, Position{1, 2}, true) // secondary selects "de"

	doc.Insert("X")
	if got := doc.Text(); got != "Xc\nXf" {
		t.Fatalf("Text() = %q, want %q", got, "Xc\nXf")
	}
	if got := doc.SelectionRegions(); len(got) != 0 {
		t.Fatalf("selections survived the insert: %v", got)
	}
}

func TestCopySelectionJoinsFragments(t *testing.T) {
	doc := mustDocument(t, WithText("abcdef\nghijkl\nmnopqr"))
	doc.MoveTo(Position{0, 2}, false)
	doc.MoveTo(Position{2, 2}, true)

	doc.CopySelection(false)
	if got := doc.PrimaryClipboard(); got != "cdef\nghijkl\nmn" {
		t.Fatalf("clipboard = %q", got)
	}
	// Copy leaves the text and selection alone.
	if got := doc.Text(); got != "abcdef\nghijkl\nmnopqr" {
		t.Fatalf("copy modified the text: %q", got)
	}
	if _, ok := doc.PrimarySelection(); !ok {
		t.Fatalf("copy dropped the selection")
	}
}

func TestCutSelectionRemovesIt(t *testing.T) {
	doc := mustDocument(t, WithText("abcdef\nghijkl\nmnopqr"))
	doc.MoveTo(Position{0, 2}, false)
	doc.MoveTo(Position{2, 2}, true)

	doc.CopySelection(true)
	if got := doc.Text(); got != "abopqr" {
		t.Fatalf("Text() = %q, want %q", got, "abopqr")
	}
	if got := doc.PrimaryClipboard(); got != "cdef\nghijkl\nmn" {
		t.Fatalf("clipboard = %q", got)
	}
	if got := doc.PrimaryPos(); got != (Position{0, 2}) {
		t.Fatalf("PrimaryPos() = %v, want {0 2}", got)
	}
}

func TestCopyWholeLineWithoutSelection(t *testing.T) {
	doc := mustDocument(t, WithText("one\ntwo"))
	doc.MoveTo(Position{1, 1}, false)

	doc.CopySelection(false)
	if got := doc.PrimaryClipboard(); got != "two" {
		t.Fatalf("clipboard = %q, want %q", got, "two")
	}

	doc.CopySelection(true)
	if got := doc.Text(); got != "one" {
		t.Fatalf("cut line left %q, want %q", got, "one")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 0}) {
		t.Fatalf("PrimaryPos() = %v, want start of surviving line", got)
	}
}

func TestPasteSplitsOnNewlines(t *testing.T) {
	doc := mustDocument(t, WithText("abcdef\nghijkl\nmnopqr"))
	doc.MoveTo(Position{0, 2}, false)
	doc.MoveTo(Position{2, 2}, true)
	doc.CopySelection(true)

	doc.Paste()
	if got := doc.Text(); got != "abcdef\nghijkl\nmnopqr" {
		t.Fatalf("cut+paste did not restore the text: %q", got)
	}
	if got := doc.PrimaryPos(); got != (Position{2, 2}) {
		t.Fatalf("PrimaryPos() = %v, want {2 2}", got)
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	doc := mustDocument(t, WithText("abc"))
	doc.Paste()
	if got := doc.Text(); got != "abc" {
		t.Fatalf("Text() = %q, want unchanged", got)
	}
}

func TestClipboardsArePerCursor(t *testing.T) {
	doc := mustDocument(t, WithText("foo\nbar"))
	doc.AddCursor(Position{1, 0})

	// Each cursor copies its own line.
	doc.CopySelection(false)

	doc.MoveLineEnd(false)
	doc.Paste()
	if got := doc.Text(); got != "foofoo\nbarbar" {
		t.Fatalf("Text() = %q, want %q", got, "foofoo\nbarbar")
	}
}

func TestSetClipboards(t *testing.T) {
	doc := mustDocument(t, WithText("a\nb"))
	doc.AddCursor(Position{1, 0})

	doc.SetClipboards("External")
	doc.Paste()
	if got := doc.Text(); got != "Externala\nExternalb" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestDeleteLinesFloorKeepsCursorValid(t *testing.T) {
	doc := mustDocument(t, WithText("only"))
	doc.MoveLineEnd(false)

	doc.CopySelection(true) // cut the only line
	if doc.LineCount() != 1 || doc.Text() != "" {
		t.Fatalf("floor violated: %d lines, %q", doc.LineCount(), doc.Text())
	}
	if got := doc.PrimaryPos(); got != (Position{}) {
		t.Fatalf("PrimaryPos() = %v, want origin", got)
	}
}
