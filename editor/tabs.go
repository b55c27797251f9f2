package editor

import "path/filepath"

// DocumentFactory builds the document for a freshly opened file. The path
// lets the factory pick a grammar by extension; it is "" for untitled
// buffers.
type DocumentFactory func(path string) *Document

// Workspace tracks open buffers and which one is active. It is pure data
// management with no UI dependency; the factory decides how documents are
// configured.
type Workspace struct {
	buffers []*Buffer
	active  int // index of the active buffer, or -1 if none
	newDoc  DocumentFactory
}

// NewWorkspace creates a workspace with no open buffers. A nil factory
// falls back to plain default documents.
func NewWorkspace(factory DocumentFactory) *Workspace {
	if factory == nil {
		factory = func(string) *Document {
			doc, _ := NewDocument()
			return doc
		}
	}
	return &Workspace{
		active: -1,
		newDoc: factory,
	}
}

// Count returns the number of open buffers.
func (ws *Workspace) Count() int {
	return len(ws.buffers)
}

// Active returns the index of the active buffer, or -1 if none is open.
func (ws *Workspace) Active() int {
	return ws.active
}

// ActiveBuffer returns the currently active buffer, or nil if none is open.
func (ws *Workspace) ActiveBuffer() *Buffer {
	if ws.active < 0 || ws.active >= len(ws.buffers) {
		return nil
	}
	return ws.buffers[ws.active]
}

// ActiveDocument returns the active buffer's document, or nil.
func (ws *Workspace) ActiveDocument() *Document {
	if buf := ws.ActiveBuffer(); buf != nil {
		return buf.Document()
	}
	return nil
}

// Buffer returns the buffer at the given index, or nil when out of range.
func (ws *Workspace) Buffer(index int) *Buffer {
	if index < 0 || index >= len(ws.buffers) {
		return nil
	}
	return ws.buffers[index]
}

// Buffers returns all open buffers in tab order.
func (ws *Workspace) Buffers() []*Buffer {
	return ws.buffers
}

// ByPath returns the open buffer with the given absolute path, or nil.
func (ws *Workspace) ByPath(absPath string) *Buffer {
	for _, buf := range ws.buffers {
		if buf.Path() == absPath {
			return buf
		}
	}
	return nil
}

// NewUntitled creates a fresh untitled buffer, appends it, makes it active
// and returns its index.
func (ws *Workspace) NewUntitled() int {
	buf := NewBuffer(ws.newDoc(""))
	ws.buffers = append(ws.buffers, buf)
	ws.active = len(ws.buffers) - 1
	return ws.active
}

// OpenFile opens the file at path. When a buffer with the same absolute
// path already exists it becomes active instead of opening a duplicate.
// Returns the buffer index and any error from reading the file.
func (ws *Workspace) OpenFile(path string) (int, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return -1, err
	}

	for i, buf := range ws.buffers {
		if buf.Path() == absPath {
			ws.active = i
			return i, nil
		}
	}

	buf := NewBuffer(ws.newDoc(absPath))
	if err := buf.Open(absPath); err != nil {
		return -1, err
	}

	ws.buffers = append(ws.buffers, buf)
	ws.active = len(ws.buffers) - 1
	return ws.active, nil
}

// SetActive switches the active buffer. Out-of-range indices are ignored.
func (ws *Workspace) SetActive(index int) {
	if index < 0 || index >= len(ws.buffers) {
		return
	}
	ws.active = index
}

// Close removes the buffer at the given index; out-of-range indices are
// ignored. The active index follows the surviving buffers: closing a buffer
// before the active one shifts it down, closing the active one clamps it to
// the last valid index, and closing the last buffer leaves -1.
func (ws *Workspace) Close(index int) {
	if index < 0 || index >= len(ws.buffers) {
		return
	}

	ws.buffers = append(ws.buffers[:index], ws.buffers[index+1:]...)

	if len(ws.buffers) == 0 {
		ws.active = -1
		return
	}

	if index < ws.active {
		ws.active--
	} else if index == ws.active && ws.active >= len(ws.buffers) {
		ws.active = len(ws.buffers) - 1
	}
}

// SaveActive saves the active buffer. Untitled buffers report the
// buffer's own error; with no open buffer this is a no-op.
func (ws *Workspace) SaveActive() error {
	if buf := ws.ActiveBuffer(); buf != nil {
		return buf.Save()
	}
	return nil
}
