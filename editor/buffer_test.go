package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewBufferIsUntitled(t *testing.T) {
	b := NewBuffer(mustDocument(t))
	if b.Path() != "" {
		t.Errorf("new buffer path = %q, want empty", b.Path())
	}
	if b.Dirty() {
		t.Error("new buffer should not be dirty")
	}
	if !b.Untitled() {
		t.Error("new buffer should be untitled")
	}
	if b.Title() != "untitled" {
		t.Errorf("new buffer title = %q, want %q", b.Title(), "untitled")
	}
}

func TestBufferOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	content := "hello, world\nsecond line\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	b := NewBuffer(mustDocument(t))
	if err := b.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if got := b.Document().Text(); got != content {
		t.Errorf("text = %q, want %q", got, content)
	}
	if !filepath.IsAbs(b.Path()) {
		t.Errorf("path %q is not absolute", b.Path())
	}
	if b.Dirty() {
		t.Error("buffer should not be dirty after Open")
	}
	if b.Untitled() {
		t.Error("buffer should not be untitled after Open")
	}
	if b.Title() != "hello.txt" {
		t.Errorf("title = %q, want %q", b.Title(), "hello.txt")
	}
}

func TestBufferOpenMissingFile(t *testing.T) {
	b := NewBuffer(mustDocument(t))
	if err := b.Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Open succeeded on a missing file")
	}
	if !b.Untitled() {
		t.Error("failed Open set a path")
	}
}

func TestBufferDirtyTracking(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	b := NewBuffer(mustDocument(t))
	if err := b.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	b.Document().Insert("x")
	if !b.Dirty() {
		t.Fatal("edit did not mark the buffer dirty")
	}

	// Undoing the edit by hand makes the text match the saved text again.
	b.Document().DeleteBackwards(1)
	if b.Dirty() {
		t.Fatal("buffer dirty although text matches disk")
	}
}

func TestBufferSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	b := NewBuffer(mustDocument(t))
	if err := b.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	b.Document().SetText("new content")
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new content" {
		t.Errorf("saved %q, want %q", data, "new content")
	}
	if b.Dirty() {
		t.Error("buffer still dirty after Save")
	}
}

func TestBufferSaveUntitledFails(t *testing.T) {
	b := NewBuffer(mustDocument(t))
	if err := b.Save(); err == nil {
		t.Fatal("Save succeeded on an untitled buffer")
	}
}

func TestBufferSaveAs(t *testing.T) {
	b := NewBuffer(mustDocument(t, WithText("data")))
	path := filepath.Join(t.TempDir(), "new.txt")

	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("saved %q, want %q", data, "data")
	}
	if b.Untitled() {
		t.Error("buffer still untitled after SaveAs")
	}
	if b.Title() != "new.txt" {
		t.Errorf("title = %q, want %q", b.Title(), "new.txt")
	}
	if b.Dirty() {
		t.Error("buffer dirty after SaveAs")
	}
}
