package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type finderFile struct {
	Rel string
	Abs string
}

// fileFinder is the Ctrl+P overlay: a fuzzy filter over the files below the
// working directory.
type fileFinder struct {
	files    []finderFile
	filtered []finderFile
	input    []rune
	sel      int
}

func shouldSkipFinderDir(name string) bool {
	switch name {
	case ".git", "node_modules", "vendor":
		return true
	default:
		return false
	}
}

func collectFinderFiles(root string) ([]finderFile, error) {
	clean := filepath.Clean(root)
	var out []finderFile
	err := filepath.WalkDir(clean, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if shouldSkipFinderDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(clean, path)
		if err != nil {
			rel = path
		}

		out = append(out, finderFile{
			Rel: filepath.ToSlash(rel),
			Abs: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Rel) < strings.ToLower(out[j].Rel)
	})
	return out, nil
}

// matchFinder keeps the files whose relative path contains the query as a
// case-insensitive subsequence, tightest match spans first.
func matchFinder(files []finderFile, query string) []finderFile {
	if query == "" {
		return files
	}
	q := strings.ToLower(query)
	type scored struct {
		file finderFile
		span int
	}
	var hits []scored
	for _, f := range files {
		if span, ok := subseqSpan(strings.ToLower(f.Rel), q); ok {
			hits = append(hits, scored{file: f, span: span})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].span != hits[j].span {
			return hits[i].span < hits[j].span
		}
		return len(hits[i].file.Rel) < len(hits[j].file.Rel)
	})
	out := make([]finderFile, len(hits))
	for i, h := range hits {
		out[i] = h.file
	}
	return out
}

// subseqSpan reports whether needle occurs in haystack as a subsequence and
// how many runes the match covers. A forward scan finds the earliest end, a
// backward scan from there tightens the start, so "tabs" scores the literal
// run in "editor/tabs.go" rather than a stretch from the first 't'.
func subseqSpan(haystack, needle string) (int, bool) {
	if needle == "" {
		return 0, true
	}
	hr := []rune(haystack)
	nr := []rune(needle)

	i := 0
	end := -1
	for pos, r := range hr {
		if r == nr[i] {
			i++
			if i == len(nr) {
				end = pos
				break
			}
		}
	}
	if end < 0 {
		return 0, false
	}

	start := end
	for pos, j := end, len(nr)-1; pos >= 0; pos-- {
		if hr[pos] == nr[j] {
			start = pos
			j--
			if j < 0 {
				break
			}
		}
	}
	return end - start + 1, true
}

func (a *inkwellApp) cmdOpenFile() {
	files, err := collectFinderFiles(".")
	if err != nil {
		a.message = err.Error()
		return
	}
	a.finder = &fileFinder{files: files, filtered: files}
}

func (a *inkwellApp) finderKey(ev *tcell.EventKey) {
	f := a.finder
	switch ev.Key() {
	case tcell.KeyEscape:
		a.finder = nil
	case tcell.KeyEnter:
		a.finder = nil
		if f.sel < len(f.filtered) {
			if _, err := a.ws.OpenFile(f.filtered[f.sel].Abs); err != nil {
				a.message = err.Error()
			}
		}
	case tcell.KeyUp:
		if f.sel > 0 {
			f.sel--
		}
	case tcell.KeyDown:
		if f.sel < len(f.filtered)-1 {
			f.sel++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.input) == 0 {
			a.finder = nil
			return
		}
		f.input = f.input[:len(f.input)-1]
		f.refilter()
	case tcell.KeyRune:
		f.input = append(f.input, ev.Rune())
		f.refilter()
	}
}

func (f *fileFinder) refilter() {
	f.filtered = matchFinder(f.files, string(f.input))
	f.sel = 0
}

func (a *inkwellApp) drawFinder(w, h int) {
	st := a.theme.Style("statusBar")
	selSt := a.theme.Style("tabActive")

	boxW := w * 3 / 4
	if boxW < 20 {
		boxW = w
	}
	rows := len(a.finder.filtered)
	if rows > 12 {
		rows = 12
	}
	boxH := rows + 3
	if boxH > h {
		boxH = h
	}
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 3

	for y := y0; y < y0+boxH; y++ {
		a.fillRow(y, x0, x0+boxW, st)
	}
	x := a.drawString(x0+1, y0+1, "Open: "+string(a.finder.input), st, x0+boxW-1)
	for i := 0; i < rows; i++ {
		rowSt := st
		if i == a.finder.sel {
			rowSt = selSt
		}
		a.fillRow(y0+2+i, x0+1, x0+boxW-1, rowSt)
		a.drawString(x0+2, y0+2+i, a.finder.filtered[i].Rel, rowSt, x0+boxW-1)
	}
	a.screen.ShowCursor(x, y0+1)
}
