package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindReturnsMatchesInOrder(t *testing.T) {
	doc := mustDocument(t, WithText("cat catalog\nconcat"))

	got := doc.Find("cat")
	want := []Region{
		NewRegion(Position{0, 0}, Position{0, 3}),
		NewRegion(Position{0, 4}, Position{0, 7}),
		NewRegion(Position{1, 3}, Position{1, 6}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Find (-want +got):\n%s", diff)
	}
}

func TestFindCountsRuneColumns(t *testing.T) {
	doc := mustDocument(t, WithText("héllo hé"))

	got := doc.Find("hé")
	want := []Region{
		NewRegion(Position{0, 0}, Position{0, 2}),
		NewRegion(Position{0, 6}, Position{0, 8}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Find (-want +got):\n%s", diff)
	}
}

func TestFindMatchesNeverOverlap(t *testing.T) {
	doc := mustDocument(t, WithText("aaaa"))

	got := doc.Find("aa")
	want := []Region{
		NewRegion(Position{0, 0}, Position{0, 2}),
		NewRegion(Position{0, 2}, Position{0, 4}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Find (-want +got):\n%s", diff)
	}
}

func TestFindRejectsEmptyAndMultilineQueries(t *testing.T) {
	doc := mustDocument(t, WithText("a\nb"))
	if got := doc.Find(""); got != nil {
		t.Errorf("Find(%q) = %v, want nil", "", got)
	}
	if got := doc.Find("a\nb"); got != nil {
		t.Errorf("Find(%q) = %v, want nil", "a\nb", got)
	}
	if got := doc.Find("missing"); len(got) != 0 {
		t.Errorf("Find(%q) = %v, want none", "missing", got)
	}
}

func TestReplaceAll(t *testing.T) {
	doc := mustDocument(t, WithText("foo\nbar foo"))

	if got := doc.ReplaceAll("foo", "qux"); got != 2 {
		t.Fatalf("ReplaceAll count = %d, want 2", got)
	}
	if got := doc.Text(); got != "qux\nbar qux" {
		t.Fatalf("Text() = %q, want %q", got, "qux\nbar qux")
	}

	if got := doc.ReplaceAll("absent", "x"); got != 0 {
		t.Fatalf("ReplaceAll count = %d, want 0", got)
	}
}

func TestReplaceAllKeepsCursorOnItsText(t *testing.T) {
	doc := mustDocument(t, WithText("one two one"))
	doc.MoveTo(Position{0, 4}, false) // on the t of two

	doc.ReplaceAll("one", "1")
	if got := doc.Text(); got != "1 two 1" {
		t.Fatalf("Text() = %q, want %q", got, "1 two 1")
	}
	if got := doc.PrimaryPos(); got != (Position{0, 2}) {
		t.Fatalf("PrimaryPos() = %v, want {0 2}", got)
	}
}

func TestReplaceAllWithMultilineReplacement(t *testing.T) {
	doc := mustDocument(t, WithText("a<>b"))

	if got := doc.ReplaceAll("<>", "X\nY"); got != 1 {
		t.Fatalf("ReplaceAll count = %d, want 1", got)
	}
	if got := doc.Text(); got != "aX\nYb" {
		t.Fatalf("Text() = %q, want %q", got, "aX\nYb")
	}
}

func TestReplaceAllWithEmptyReplacement(t *testing.T) {
	doc := mustDocument(t, WithText("a-b-c"))

	if got := doc.ReplaceAll("-", ""); got != 2 {
		t.Fatalf("ReplaceAll count = %d, want 2", got)
	}
	if got := doc.Text(); got != "abc" {
		t.Fatalf("Text() = %q, want %q", got, "abc")
	}
}
