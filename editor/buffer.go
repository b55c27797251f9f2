package editor

import (
	"errors"
	"os"
	"path/filepath"
)

// Buffer ties a Document to a file on disk: path bookkeeping, dirty
// tracking, open and save. The document itself stays the editing surface;
// the buffer only remembers where its text came from.
type Buffer struct {
	doc       *Document
	path      string // absolute path, or "" if untitled
	savedText string // text at last save/open (for dirty comparison)
}

// NewBuffer wraps an existing document in an untitled buffer.
func NewBuffer(doc *Document) *Buffer {
	return &Buffer{doc: doc, savedText: doc.Text()}
}

// Document returns the buffer's document.
func (b *Buffer) Document() *Document {
	return b.doc
}

// Open reads the file at path into the document, replacing any existing
// content. The stored path is converted to an absolute path.
func (b *Buffer) Open(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}

	b.path = absPath
	b.doc.SetText(string(data))
	b.savedText = b.doc.Text()
	return nil
}

// Save writes the current text to the stored path.
// Returns an error if the buffer has no path (untitled).
func (b *Buffer) Save() error {
	if b.path == "" {
		return errors.New("buffer has no path; use SaveAs")
	}
	text := b.doc.Text()
	if err := os.WriteFile(b.path, []byte(text), 0644); err != nil {
		return err
	}
	b.savedText = text
	return nil
}

// SaveAs writes the current text to the given path, updates the stored
// path, and marks the buffer as clean.
func (b *Buffer) SaveAs(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	text := b.doc.Text()
	if err := os.WriteFile(absPath, []byte(text), 0644); err != nil {
		return err
	}

	b.path = absPath
	b.savedText = text
	return nil
}

// Path returns the absolute file path, or "" if the buffer is untitled.
func (b *Buffer) Path() string {
	return b.path
}

// Dirty reports whether the document's text differs from the last
// saved/opened text.
func (b *Buffer) Dirty() bool {
	return b.doc.Text() != b.savedText
}

// Untitled reports whether the buffer has no associated file path.
func (b *Buffer) Untitled() bool {
	return b.path == ""
}

// Title returns the base filename, or "untitled" if the buffer has no path.
func (b *Buffer) Title() string {
	if b.path == "" {
		return "untitled"
	}
	return filepath.Base(b.path)
}
