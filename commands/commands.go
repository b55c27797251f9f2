// Package commands defines the editor's command set: stable ids, shortcut
// labels, and the callbacks the app wires in. The keymap resolves terminal
// key events against it.
package commands

// Command is a single editor action.
type Command struct {
	ID       string
	Label    string
	Shortcut string
	Category string
	Run      func()
}

// Actions holds callbacks for all editor commands.
type Actions struct {
	SaveFile      func()
	NewFile       func()
	OpenFile      func()
	CloseTab      func()
	NextTab       func()
	PrevTab       func()
	Quit          func()
	Help          func()
	Find          func()
	FindNext      func()
	Replace       func()
	GotoLine      func()
	Copy          func()
	Cut           func()
	Paste         func()
	SelectAll     func()
	DuplicateLine func()
	DeleteLine    func()
	MoveLineUp    func()
	MoveLineDown  func()
	FoldBlock     func()
	UnfoldBlock   func()
	CursorAbove   func()
	CursorBelow   func()
	DropCursor    func()
}

// All returns the full command list for the keymap and the help overlay.
// Ctrl+H, Ctrl+I and Ctrl+M are never bound: terminals deliver them as
// Backspace, Tab and Enter.
func All(a Actions) []Command {
	return []Command{
		{ID: "file.save", Label: "Save File", Shortcut: "Ctrl+S", Category: "File", Run: a.SaveFile},
		{ID: "file.new", Label: "New File", Shortcut: "Ctrl+N", Category: "File", Run: a.NewFile},
		{ID: "file.open", Label: "Open File", Shortcut: "Ctrl+P", Category: "File", Run: a.OpenFile},
		{ID: "file.close", Label: "Close Tab", Shortcut: "Ctrl+W", Category: "File", Run: a.CloseTab},
		{ID: "file.next", Label: "Next Tab", Shortcut: "Alt+Right", Category: "File", Run: a.NextTab},
		{ID: "file.prev", Label: "Previous Tab", Shortcut: "Alt+Left", Category: "File", Run: a.PrevTab},
		{ID: "edit.find", Label: "Find", Shortcut: "Ctrl+F", Category: "Edit", Run: a.Find},
		{ID: "edit.findNext", Label: "Find Next", Shortcut: "F3", Category: "Edit", Run: a.FindNext},
		{ID: "edit.replace", Label: "Replace All", Shortcut: "Ctrl+R", Category: "Edit", Run: a.Replace},
		{ID: "edit.goto", Label: "Go To Line", Shortcut: "Ctrl+G", Category: "Edit", Run: a.GotoLine},
		{ID: "edit.copy", Label: "Copy", Shortcut: "Ctrl+C", Category: "Edit", Run: a.Copy},
		{ID: "edit.cut", Label: "Cut", Shortcut: "Ctrl+X", Category: "Edit", Run: a.Cut},
		{ID: "edit.paste", Label: "Paste", Shortcut: "Ctrl+V", Category: "Edit", Run: a.Paste},
		{ID: "edit.selectAll", Label: "Select All", Shortcut: "Ctrl+A", Category: "Edit", Run: a.SelectAll},
		{ID: "line.duplicate", Label: "Duplicate Line", Shortcut: "Ctrl+D", Category: "Line", Run: a.DuplicateLine},
		{ID: "line.delete", Label: "Delete Line", Shortcut: "Ctrl+K", Category: "Line", Run: a.DeleteLine},
		{ID: "line.moveUp", Label: "Move Line Up", Shortcut: "Alt+Up", Category: "Line", Run: a.MoveLineUp},
		{ID: "line.moveDown", Label: "Move Line Down", Shortcut: "Alt+Down", Category: "Line", Run: a.MoveLineDown},
		{ID: "line.fold", Label: "Fold Block", Shortcut: "F9", Category: "Line", Run: a.FoldBlock},
		{ID: "line.unfold", Label: "Unfold Block", Shortcut: "F10", Category: "Line", Run: a.UnfoldBlock},
		{ID: "cursor.above", Label: "Add Cursor Above", Shortcut: "Ctrl+Up", Category: "Cursor", Run: a.CursorAbove},
		{ID: "cursor.below", Label: "Add Cursor Below", Shortcut: "Ctrl+Down", Category: "Cursor", Run: a.CursorBelow},
		{ID: "cursor.drop", Label: "Drop Last Cursor", Shortcut: "Ctrl+U", Category: "Cursor", Run: a.DropCursor},
		{ID: "app.help", Label: "Help", Shortcut: "F1", Category: "App", Run: a.Help},
		{ID: "app.quit", Label: "Quit", Shortcut: "Ctrl+Q", Category: "App", Run: a.Quit},
	}
}
