package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/inkwell/commands"
	"github.com/odvcencio/inkwell/editor"
	"github.com/odvcencio/inkwell/grammars"
	"github.com/odvcencio/inkwell/syntax"
)

const doubleClickWindow = 400 * time.Millisecond

// inkwellApp owns a terminal editing session: the workspace, the screen,
// the theme, and the transient UI state layered over the document engine.
type inkwellApp struct {
	screen tcell.Screen
	ws     *editor.Workspace
	theme  *Theme
	logger *slog.Logger
	keymap *commands.Keymap
	cmds   []commands.Command
	cfg    Config

	viewTop  int // first visible text row, counted after folding
	viewLeft int // first visible screen column of the text area

	folds map[*editor.Document]*editor.FoldState

	message   string          // transient status message, cleared on next key
	prompt    *prompt         // active minibuffer, nil when closed
	finder    *fileFinder     // fuzzy file-open overlay, nil when closed
	matches   []editor.Region // live search results
	lastQuery string
	showHelp  bool
	quitArmed bool // Ctrl+Q pressed once with unsaved changes
	quit      bool

	dragging     bool // Button1 held, drag extends the selection
	lastClick    time.Time
	lastClickPos editor.Position
}

// prompt is the one-line minibuffer replacing the status bar while open.
type prompt struct {
	label    string
	input    []rune
	onEnter  func(string)
	onChange func(string)
	onCancel func()
}

// documentFactory builds documents wired with the detected grammar, the
// configured tab size, and the app logger.
func documentFactory(cfg Config, logger *slog.Logger) editor.DocumentFactory {
	return func(path string) *editor.Document {
		opts := []editor.Option{
			editor.WithTabSize(cfg.TabSize),
			editor.WithLogger(logger),
		}
		if lang := grammars.DetectLanguage(path); lang != nil {
			opts = append(opts, editor.WithSyntax(lang.Engine))
		}
		doc, err := editor.NewDocument(opts...)
		if err != nil {
			logger.Error("document construction failed", "path", path, "error", err)
			doc, _ = editor.NewDocument()
		}
		return doc
	}
}

func newApp(cfg Config, logger *slog.Logger) *inkwellApp {
	a := &inkwellApp{
		ws:     editor.NewWorkspace(documentFactory(cfg, logger)),
		theme:  loadTheme(cfg.Theme),
		logger: logger,
		cfg:    cfg,
		folds:  make(map[*editor.Document]*editor.FoldState),
	}
	a.cmds = commands.All(commands.Actions{
		SaveFile:      a.cmdSave,
		NewFile:       func() { a.ws.NewUntitled() },
		OpenFile:      a.cmdOpenFile,
		CloseTab:      a.cmdCloseTab,
		NextTab:       func() { a.cycleTab(1) },
		PrevTab:       func() { a.cycleTab(-1) },
		Quit:          a.cmdQuit,
		Help:          func() { a.showHelp = !a.showHelp },
		Find:          a.cmdFind,
		FindNext:      a.cmdFindNext,
		Replace:       a.cmdReplace,
		GotoLine:      a.cmdGotoLine,
		Copy:          func() { a.copySelection(false) },
		Cut:           func() { a.copySelection(true) },
		Paste:         a.cmdPaste,
		SelectAll:     a.cmdSelectAll,
		DuplicateLine: a.cmdDuplicateLine,
		DeleteLine:    a.cmdDeleteLine,
		MoveLineUp:    func() { a.moveCurrentLine(-1) },
		MoveLineDown:  func() { a.moveCurrentLine(1) },
		FoldBlock:     a.cmdFold,
		UnfoldBlock:   a.cmdUnfold,
		CursorAbove:   func() { a.withDoc((*editor.Document).AddCursorAbove) },
		CursorBelow:   func() { a.withDoc((*editor.Document).AddCursorBelow) },
		DropCursor:    func() { a.withDoc((*editor.Document).RemoveLastAddedCursor) },
	})
	a.keymap = commands.NewKeymap(a.cmds)
	return a
}

// run opens the given files and drives the terminal UI until quit.
func run(ctx context.Context, paths []string, cfg Config, logger *slog.Logger) error {
	app := newApp(cfg, logger)
	for _, p := range paths {
		if _, err := app.ws.OpenFile(p); err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
	}
	if app.ws.Count() == 0 {
		app.ws.NewUntitled()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(app.theme.Base())
	screen.EnableMouse()
	app.screen = screen

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for !app.quit {
		app.draw()
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			app.quit = true
		case *tcell.EventKey:
			app.handleKey(ev)
		case *tcell.EventMouse:
			app.handleMouse(ev)
		}
	}
	return nil
}

func (a *inkwellApp) withDoc(fn func(*editor.Document)) {
	if doc := a.ws.ActiveDocument(); doc != nil {
		fn(doc)
	}
}

// Input handling.

func (a *inkwellApp) handleKey(ev *tcell.EventKey) {
	a.message = ""
	if a.showHelp {
		a.showHelp = false
		return
	}
	if a.finder != nil {
		a.finderKey(ev)
		return
	}
	if a.prompt != nil {
		a.promptKey(ev)
		return
	}
	if cmd := a.keymap.Lookup(ev); cmd != nil && cmd.Run != nil {
		if cmd.ID != "app.quit" {
			a.quitArmed = false
		}
		cmd.Run()
		return
	}
	a.quitArmed = false

	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	extend := ev.Modifiers()&tcell.ModShift != 0
	word := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyLeft:
		if word {
			doc.MoveWordLeft(extend)
		} else {
			doc.MoveLeft(extend)
		}
	case tcell.KeyRight:
		if word {
			doc.MoveWordRight(extend)
		} else {
			doc.MoveRight(extend)
		}
	case tcell.KeyUp:
		doc.MoveUp(1, extend)
	case tcell.KeyDown:
		doc.MoveDown(1, extend)
	case tcell.KeyHome:
		doc.MoveLineStart(true, extend)
	case tcell.KeyEnd:
		doc.MoveLineEnd(extend)
	case tcell.KeyPgUp:
		doc.MoveUp(a.pageSize(), extend)
	case tcell.KeyPgDn:
		doc.MoveDown(a.pageSize(), extend)
	case tcell.KeyEnter:
		doc.InsertNewline(a.cfg.AutoIndent)
	case tcell.KeyTab:
		doc.Insert("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		doc.DeleteBackwards(1)
	case tcell.KeyDelete:
		doc.DeleteForwards(1)
	case tcell.KeyEscape:
		a.dismiss(doc)
	case tcell.KeyRune:
		if ev.Modifiers()&^tcell.ModShift == 0 {
			doc.Insert(string(ev.Rune()))
		}
	}
}

// dismiss peels back UI state one layer per press: selection, then extra
// cursors, then search highlights.
func (a *inkwellApp) dismiss(doc *editor.Document) {
	if _, ok := doc.PrimarySelection(); ok {
		doc.MoveTo(doc.PrimaryPos(), false)
		return
	}
	if doc.Cursors().Count() > 1 {
		doc.ClearSecondaryCursors()
		return
	}
	a.matches = nil
}

func (a *inkwellApp) promptKey(ev *tcell.EventKey) {
	p := a.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		a.prompt = nil
		if p.onCancel != nil {
			p.onCancel()
		}
	case tcell.KeyEnter:
		a.prompt = nil
		if p.onEnter != nil {
			p.onEnter(string(p.input))
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
			if p.onChange != nil {
				p.onChange(string(p.input))
			}
		}
	case tcell.KeyRune:
		p.input = append(p.input, ev.Rune())
		if p.onChange != nil {
			p.onChange(string(p.input))
		}
	}
}

func (a *inkwellApp) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		if y == 0 && !a.dragging {
			if idx := a.tabAtX(x); idx >= 0 {
				a.ws.SetActive(idx)
			}
			return
		}
		a.clickText(x, y, ev.Modifiers(), a.dragging)
		a.dragging = true
	case ev.Buttons()&tcell.WheelUp != 0:
		a.withDoc(func(d *editor.Document) { d.MoveUp(3, false) })
	case ev.Buttons()&tcell.WheelDown != 0:
		a.withDoc(func(d *editor.Document) { d.MoveDown(3, false) })
	default:
		a.dragging = false
	}
}

func (a *inkwellApp) clickText(x, y int, mods tcell.ModMask, drag bool) {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	visible := a.refreshFolds(doc).VisibleLines(doc.LineCount())
	vr := a.viewTop + y - 1
	if vr < 0 || vr >= len(visible) {
		return
	}
	line := visible[vr]
	col := colAtWidth(doc.LineContent(line), x-a.gutterWidth(doc)+a.viewLeft, a.cfg.TabSize)
	pos := editor.Position{Line: line, Col: col}

	if drag {
		doc.MoveTo(pos, true)
		return
	}

	now := time.Now()
	double := now.Sub(a.lastClick) < doubleClickWindow && pos == a.lastClickPos
	a.lastClick, a.lastClickPos = now, pos

	switch {
	case mods&tcell.ModAlt != 0 && mods&tcell.ModShift != 0:
		doc.AddCursorColumn(doc.PrimaryPos().Line, line, col)
	case mods&tcell.ModAlt != 0:
		doc.AddCursor(pos)
	case double:
		doc.ClearSecondaryCursors()
		doc.MoveTo(pos, false)
		doc.SelectWord()
	default:
		if mods&tcell.ModShift == 0 {
			doc.ClearSecondaryCursors()
		}
		doc.MoveTo(pos, mods&tcell.ModShift != 0)
	}
}

func (a *inkwellApp) pageSize() int {
	_, h := a.screen.Size()
	if h <= 3 {
		return 1
	}
	return h - 3
}

func (a *inkwellApp) cycleTab(delta int) {
	if n := a.ws.Count(); n > 0 {
		a.ws.SetActive(((a.ws.Active()+delta)%n + n) % n)
	}
}

// Commands.

func (a *inkwellApp) cmdSave() {
	buf := a.ws.ActiveBuffer()
	if buf == nil {
		return
	}
	if buf.Path() == "" {
		a.promptSaveAs(buf)
		return
	}
	if err := buf.Save(); err != nil {
		a.message = err.Error()
		return
	}
	a.message = "saved " + buf.Title()
}

func (a *inkwellApp) promptSaveAs(buf *editor.Buffer) {
	a.prompt = &prompt{
		label: "Save as: ",
		onEnter: func(path string) {
			path = strings.TrimSpace(path)
			if path == "" {
				return
			}
			if err := buf.SaveAs(path); err != nil {
				a.message = err.Error()
				return
			}
			a.message = "saved " + buf.Title()
		},
	}
}

func (a *inkwellApp) cmdCloseTab() {
	buf := a.ws.ActiveBuffer()
	if buf == nil {
		a.quit = true
		return
	}
	if buf.Dirty() {
		a.message = "unsaved changes in " + buf.Title()
		return
	}
	a.ws.Close(a.ws.Active())
	if a.ws.Count() == 0 {
		a.quit = true
	}
}

func (a *inkwellApp) cmdQuit() {
	if !a.quitArmed {
		for _, buf := range a.ws.Buffers() {
			if buf.Dirty() {
				a.quitArmed = true
				a.message = "unsaved changes, press Ctrl+Q again to quit"
				return
			}
		}
	}
	a.quit = true
}

func (a *inkwellApp) cmdFind() {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	a.prompt = &prompt{
		label:    "Find: ",
		input:    []rune(a.lastQuery),
		onChange: func(q string) { a.search(doc, q, false) },
		onEnter:  func(q string) { a.search(doc, q, true) },
		onCancel: func() { a.matches = nil },
	}
	if a.lastQuery != "" {
		a.search(doc, a.lastQuery, false)
	}
}

func (a *inkwellApp) cmdFindNext() {
	doc := a.ws.ActiveDocument()
	if doc == nil || a.lastQuery == "" {
		return
	}
	a.search(doc, a.lastQuery, true)
}

// search refreshes the match set; with jump it also selects the first match
// after the primary cursor, wrapping to the top.
func (a *inkwellApp) search(doc *editor.Document, query string, jump bool) {
	a.lastQuery = query
	a.matches = doc.Find(query)
	if !jump {
		return
	}
	if len(a.matches) == 0 {
		a.message = "no matches"
		return
	}
	pos := doc.PrimaryPos()
	next := a.matches[0]
	for _, m := range a.matches {
		if pos.Before(m.Start) {
			next = m
			break
		}
	}
	doc.MoveTo(next.Start, false)
	doc.MoveTo(next.End, true)
}

func (a *inkwellApp) cmdReplace() {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	a.prompt = &prompt{
		label: "Replace: ",
		input: []rune(a.lastQuery),
		onEnter: func(query string) {
			if query == "" {
				return
			}
			a.lastQuery = query
			a.prompt = &prompt{
				label: "With: ",
				onEnter: func(repl string) {
					n := doc.ReplaceAll(query, repl)
					a.message = fmt.Sprintf("replaced %d occurrences", n)
					a.matches = nil
				},
			}
		},
	}
}

func (a *inkwellApp) cmdGotoLine() {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	a.prompt = &prompt{
		label: "Line: ",
		onEnter: func(s string) {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 1 {
				a.message = "not a line number"
				return
			}
			doc.ClearSecondaryCursors()
			doc.MoveTo(editor.Position{Line: n - 1}, false)
		},
	}
}

// copySelection routes the primary engine clipboard to the OS clipboard so
// copied text survives outside the editor. Per-cursor snippets stay inside
// the engine.
func (a *inkwellApp) copySelection(cut bool) {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	doc.CopySelection(cut)
	if text := doc.PrimaryClipboard(); text != "" {
		if err := clipboard.WriteAll(text); err != nil {
			a.logger.Debug("system clipboard write failed", "error", err)
		}
	}
}

func (a *inkwellApp) cmdPaste() {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	// A single cursor prefers the system clipboard; multiple cursors keep
	// their per-cursor snippets.
	if doc.Cursors().Count() == 1 {
		if text, err := clipboard.ReadAll(); err == nil && text != "" {
			doc.SetClipboards(text)
		}
	}
	doc.Paste()
}

func (a *inkwellApp) cmdSelectAll() {
	a.withDoc((*editor.Document).SelectAll)
}

func (a *inkwellApp) cmdDuplicateLine() {
	a.withDoc(func(d *editor.Document) { d.DuplicateLine(d.PrimaryPos().Line) })
}

func (a *inkwellApp) cmdDeleteLine() {
	a.withDoc(func(d *editor.Document) { d.DeleteLine(d.PrimaryPos().Line) })
}

func (a *inkwellApp) moveCurrentLine(delta int) {
	a.withDoc(func(d *editor.Document) { d.MoveLine(d.PrimaryPos().Line, delta) })
}

// refreshFolds returns the document's fold state with its regions rebuilt
// from the current indent index.
func (a *inkwellApp) refreshFolds(doc *editor.Document) *editor.FoldState {
	fs, ok := a.folds[doc]
	if !ok {
		fs = editor.NewFoldState()
		a.folds[doc] = fs
	}
	fs.SetRegions(editor.RegionsFromIndent(doc.IndentRegions()))
	return fs
}

func (a *inkwellApp) cmdFold() {
	a.withDoc(func(d *editor.Document) {
		fs := a.refreshFolds(d)
		line := d.PrimaryPos().Line
		if !fs.FoldAtLine(line) {
			return
		}
		// A cursor swallowed by the fold climbs to the nearest visible
		// header, otherwise the next draw would pop the fold right open.
		for fs.IsLineHidden(line) {
			for _, r := range fs.Regions() {
				if r.Folded && line > r.StartLine && line <= r.EndLine {
					line = r.StartLine
					break
				}
			}
		}
		if line != d.PrimaryPos().Line {
			d.MoveTo(editor.Position{Line: line}, false)
		}
	})
}

func (a *inkwellApp) cmdUnfold() {
	a.withDoc(func(d *editor.Document) {
		a.refreshFolds(d).UnfoldAtLine(d.PrimaryPos().Line)
	})
}

// Drawing.

func (a *inkwellApp) draw() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		a.screen.Show()
		return
	}
	a.drawTabBar(0, w)
	if h > 2 {
		a.drawText(1, w, h-2)
	}
	if a.prompt != nil {
		a.drawPrompt(h-1, w)
	} else {
		a.drawStatus(h-1, w)
	}
	if a.showHelp {
		a.drawHelp(w, h)
	}
	if a.finder != nil {
		a.drawFinder(w, h)
	}
	a.screen.Show()
}

func (a *inkwellApp) gutterWidth(doc *editor.Document) int {
	return len(strconv.Itoa(doc.LineCount())) + 1
}

func (a *inkwellApp) drawText(top, w, h int) {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		for row := 0; row < h; row++ {
			a.fillRow(top+row, 0, w, a.theme.Base())
		}
		a.screen.HideCursor()
		return
	}

	fs := a.refreshFolds(doc)
	primary := doc.PrimaryPos()
	// Search, goto and paging can land the cursor inside a fold; pop the
	// fold open rather than hide the cursor.
	for fs.IsLineHidden(primary.Line) {
		if !fs.UnfoldAtLine(primary.Line) {
			break
		}
	}
	visible := fs.VisibleLines(doc.LineCount())

	gutterW := a.gutterWidth(doc)
	textW := w - gutterW

	cursorRow := rowOf(visible, primary.Line)
	a.viewTop = scrollTo(a.viewTop, cursorRow, h)
	cursorX := displayWidth(doc.LineContent(primary.Line), primary.Col, a.cfg.TabSize)
	a.viewLeft = scrollTo(a.viewLeft, cursorX, textW)

	brackets := make(map[editor.Position]bool)
	if at, match, ok := doc.BracketMatch(); ok {
		brackets[at] = true
		brackets[match] = true
	}

	numStyle := a.theme.Style("lineNumber")
	numActive := a.theme.Style("lineNumberActive")

	for row := 0; row < h; row++ {
		y := top + row
		a.fillRow(y, 0, w, a.theme.Base())
		vr := a.viewTop + row
		if vr >= len(visible) {
			continue
		}
		line := visible[vr]

		st := numStyle
		if line == primary.Line {
			st = numActive
		}
		a.drawString(0, y, fmt.Sprintf("%*d", gutterW-1, line+1), st, gutterW)
		if fs.FoldedAt(line) {
			a.screen.SetContent(gutterW-1, y, '+', nil, numActive)
		}

		a.drawLine(doc, line, y, gutterW, w, brackets)
		a.drawGuides(doc, line, y, gutterW, w)
	}

	if a.prompt == nil && a.finder == nil && !a.showHelp {
		a.screen.ShowCursor(gutterW+cursorX-a.viewLeft, top+cursorRow-a.viewTop)
	}
}

// rowOf locates a document line in the visible list.
func rowOf(visible []int, line int) int {
	i := sort.SearchInts(visible, line)
	if i >= len(visible) {
		return len(visible) - 1
	}
	return i
}

// lineSpans collects the rune column spans of regions touching one line.
func lineSpans(regions []editor.Region, line, lineLen int) [][2]int {
	var spans [][2]int
	for _, r := range regions {
		if start, end, ok := r.ColumnsOn(line, lineLen); ok && start < end {
			spans = append(spans, [2]int{start, end})
		}
	}
	return spans
}

func inSpans(spans [][2]int, col int) bool {
	for _, s := range spans {
		if col >= s[0] && col < s[1] {
			return true
		}
	}
	return false
}

func (a *inkwellApp) drawLine(doc *editor.Document, line, y, gutterW, w int, brackets map[editor.Position]bool) {
	content := doc.LineContent(line)
	segs := doc.RenderElements(line)
	lineLen := len([]rune(content))

	var selections []editor.Region
	secondaries := make(map[editor.Position]bool)
	cursors := doc.Cursors()
	for _, c := range cursors.All() {
		if sel := c.Selection(); sel.Active() {
			selections = append(selections, sel.Region)
		}
		if c != cursors.Primary() {
			secondaries[c.Pos()] = true
		}
	}
	selSpans := lineSpans(selections, line, lineLen)
	matchSpans := lineSpans(a.matches, line, lineLen)

	selStyle := a.theme.Style("selection")
	matchStyle := a.theme.Style("match")
	bracketStyle := a.theme.Style("bracket")
	curStyle := a.theme.Style("secondaryCursor")

	col := 0    // engine display column, tabs count tabSize
	x := 0      // screen column from line start, wide runes count double
	runeIdx := 0
	segIdx := 0
	for _, r := range content {
		st := a.styleAt(segs, &segIdx, col)
		if brackets[editor.Position{Line: line, Col: runeIdx}] {
			st = bracketStyle
		}
		if inSpans(matchSpans, runeIdx) {
			st = matchStyle
		}
		if inSpans(selSpans, runeIdx) {
			st = selStyle
		}
		if secondaries[editor.Position{Line: line, Col: runeIdx}] {
			st = curStyle
		}

		if r == '\t' {
			for k := 0; k < a.cfg.TabSize; k++ {
				a.setCell(x+k, y, ' ', st, gutterW, w)
			}
			x += a.cfg.TabSize
			col += a.cfg.TabSize
		} else {
			cw := runewidth.RuneWidth(r)
			a.setCell(x, y, r, st, gutterW, w)
			for k := 1; k < cw; k++ {
				a.setCell(x+k, y, ' ', st, gutterW, w)
			}
			x += cw
			col++
		}
		runeIdx++
		if x-a.viewLeft >= w-gutterW {
			return
		}
	}
	// A secondary cursor parked at the end of the line still needs a cell.
	if secondaries[editor.Position{Line: line, Col: lineLen}] {
		a.setCell(x, y, ' ', curStyle, gutterW, w)
	}
}

// styleAt resolves the theme style of one engine display column, advancing
// the segment index as the caller walks the line left to right.
func (a *inkwellApp) styleAt(segs []syntax.Segment, segIdx *int, col int) tcell.Style {
	for *segIdx < len(segs) && col >= segs[*segIdx].Start+segs[*segIdx].Length {
		*segIdx++
	}
	if *segIdx < len(segs) && col >= segs[*segIdx].Start {
		return a.theme.Style(segs[*segIdx].Style)
	}
	return a.theme.Base()
}

func (a *inkwellApp) drawGuides(doc *editor.Document, line, y, gutterW, w int) {
	guides := doc.IndentGuides(line)
	if len(guides) == 0 {
		return
	}
	blank := strings.TrimSpace(doc.LineContent(line)) == ""
	indent := doc.LineIndent(line)
	st := a.theme.Style("indentGuide")
	for _, g := range guides {
		gx := g * a.cfg.TabSize
		if !blank && gx >= indent {
			continue
		}
		a.setCell(gx, y, tcell.RuneVLine, st, gutterW, w)
	}
}

// setCell places one rune at text-area column x (before viewport shift),
// clipping against the gutter edge and the screen width.
func (a *inkwellApp) setCell(x, y int, r rune, st tcell.Style, gutterW, w int) {
	sx := gutterW + x - a.viewLeft
	if sx < gutterW || sx >= w {
		return
	}
	a.screen.SetContent(sx, y, r, nil, st)
}

func (a *inkwellApp) fillRow(y, from, to int, st tcell.Style) {
	for x := from; x < to; x++ {
		a.screen.SetContent(x, y, ' ', nil, st)
	}
}

func (a *inkwellApp) drawString(x, y int, s string, st tcell.Style, max int) int {
	for _, r := range s {
		if x >= max {
			break
		}
		a.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (a *inkwellApp) drawStatus(y, w int) {
	st := a.theme.Style("statusBar")
	a.fillRow(y, 0, w, st)
	buf := a.ws.ActiveBuffer()
	if buf == nil {
		return
	}
	doc := buf.Document()

	left := " " + buf.Title()
	if buf.Dirty() {
		st = a.theme.Style("statusBarDirty")
		left += " [+]"
	}
	if lang := doc.Language(); lang != "" {
		left += "  " + lang
	}
	if a.message != "" {
		left += "  " + a.message
	}

	p := doc.PrimaryPos()
	right := fmt.Sprintf("%d:%d ", p.Line+1, p.Col+1)
	if n := doc.Cursors().Count(); n > 1 {
		right = fmt.Sprintf("%d cursors  %s", n, right)
	}
	if len(a.matches) > 0 {
		right = fmt.Sprintf("%d matches  %s", len(a.matches), right)
	}

	a.drawString(0, y, left, st, w)
	a.drawString(w-runewidth.StringWidth(right), y, right, st, w)
}

func (a *inkwellApp) drawPrompt(y, w int) {
	st := a.theme.Style("statusBar")
	a.fillRow(y, 0, w, st)
	x := a.drawString(0, y, a.prompt.label, st, w)
	x = a.drawString(x, y, string(a.prompt.input), st, w)
	a.screen.ShowCursor(x, y)
}

func (a *inkwellApp) drawHelp(w, h int) {
	a.screen.HideCursor()
	st := a.theme.Style("statusBar")

	lines := []string{"Inkwell", ""}
	category := ""
	for _, c := range a.cmds {
		if c.Category != category {
			if category != "" {
				lines = append(lines, "")
			}
			category = c.Category
			lines = append(lines, c.Category)
		}
		lines = append(lines, fmt.Sprintf("  %-11s %s", c.Shortcut, c.Label))
	}

	boxW := 0
	for _, l := range lines {
		if n := runewidth.StringWidth(l); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	boxH := len(lines) + 2
	if boxW > w {
		boxW = w
	}
	if boxH > h {
		boxH = h
	}
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	for y := y0; y < y0+boxH; y++ {
		a.fillRow(y, x0, x0+boxW, st)
	}
	for i, l := range lines {
		if y0+1+i >= y0+boxH-1 {
			break
		}
		a.drawString(x0+2, y0+1+i, l, st, x0+boxW-2)
	}
}

// scrollTo slides a viewport origin so target falls inside
// [origin, origin+span).
func scrollTo(origin, target, span int) int {
	if span <= 0 {
		return origin
	}
	if target < origin {
		return target
	}
	if target >= origin+span {
		return target - span + 1
	}
	return origin
}

// displayWidth returns the on-screen width of the first col runes of s,
// with tabs expanded to tabSize and wide runes counted by cell.
func displayWidth(s string, col, tabSize int) int {
	w := 0
	n := 0
	for _, r := range s {
		if n >= col {
			break
		}
		if r == '\t' {
			w += tabSize
		} else {
			w += runewidth.RuneWidth(r)
		}
		n++
	}
	return w
}

// colAtWidth returns the rune column in s whose cell covers display width w,
// clamping past the end of the line.
func colAtWidth(s string, w, tabSize int) int {
	if w < 0 {
		return 0
	}
	col := 0
	acc := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if r == '\t' {
			rw = tabSize
		}
		if acc+rw > w {
			return col
		}
		acc += rw
		col++
	}
	return col
}
