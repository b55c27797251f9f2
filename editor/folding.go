package editor

// FoldRegion is one collapsible span of lines. StartLine stays visible as
// the header; the lines after it through EndLine hide when folded.
type FoldRegion struct {
	StartLine int
	EndLine   int
	Folded    bool
}

// FoldState tracks which regions of a document are collapsed. It is view
// state: documents know nothing about folding. The UI keeps one FoldState
// per document and refreshes its regions after edits.
type FoldState struct {
	regions []FoldRegion
}

// NewFoldState creates an empty fold state.
func NewFoldState() *FoldState {
	return &FoldState{}
}

// SetRegions replaces the fold regions, carrying the collapsed flag over to
// regions that still start on the same line.
func (fs *FoldState) SetRegions(regions []FoldRegion) {
	oldFolded := make(map[int]bool)
	for _, r := range fs.regions {
		if r.Folded {
			oldFolded[r.StartLine] = true
		}
	}
	for i := range regions {
		if oldFolded[regions[i].StartLine] {
			regions[i].Folded = true
		}
	}
	fs.regions = regions
}

// Toggle collapses or expands the region whose header is the given line.
func (fs *FoldState) Toggle(line int) bool {
	for i, r := range fs.regions {
		if r.StartLine == line {
			fs.regions[i].Folded = !fs.regions[i].Folded
			return true
		}
	}
	return false
}

// FoldAll collapses every region.
func (fs *FoldState) FoldAll() {
	for i := range fs.regions {
		fs.regions[i].Folded = true
	}
}

// UnfoldAll expands every region.
func (fs *FoldState) UnfoldAll() {
	for i := range fs.regions {
		fs.regions[i].Folded = false
	}
}

// IsLineHidden reports whether the line sits inside a collapsed region. The
// header line itself stays visible.
func (fs *FoldState) IsLineHidden(line int) bool {
	for _, r := range fs.regions {
		if r.Folded && line > r.StartLine && line <= r.EndLine {
			return true
		}
	}
	return false
}

// Regions returns all fold regions.
func (fs *FoldState) Regions() []FoldRegion {
	return fs.regions
}

// FoldedAt reports whether a collapsed region starts exactly at line.
func (fs *FoldState) FoldedAt(line int) bool {
	for _, r := range fs.regions {
		if r.Folded && r.StartLine == line {
			return true
		}
	}
	return false
}

// FoldAtLine collapses the region headed by the given line, or failing that
// the innermost expanded region containing it.
func (fs *FoldState) FoldAtLine(line int) bool {
	best := -1
	for i, r := range fs.regions {
		if r.Folded {
			continue
		}
		if r.StartLine == line {
			fs.regions[i].Folded = true
			return true
		}
		if line >= r.StartLine && line <= r.EndLine {
			if best < 0 || (r.EndLine-r.StartLine) < (fs.regions[best].EndLine-fs.regions[best].StartLine) {
				best = i
			}
		}
	}
	if best >= 0 {
		fs.regions[best].Folded = true
		return true
	}
	return false
}

// UnfoldAtLine expands the collapsed region at or containing the given line.
func (fs *FoldState) UnfoldAtLine(line int) bool {
	for i, r := range fs.regions {
		if !r.Folded {
			continue
		}
		if line >= r.StartLine && line <= r.EndLine {
			fs.regions[i].Folded = false
			return true
		}
	}
	return false
}

// VisibleLines returns the line indices still visible after folding, in
// order.
func (fs *FoldState) VisibleLines(totalLines int) []int {
	visible := make([]int, 0, totalLines)
	for i := 0; i < totalLines; i++ {
		if !fs.IsLineHidden(i) {
			visible = append(visible, i)
		}
	}
	return visible
}

// RegionsFromIndent derives fold regions from an indent-region index, one
// region per block. A block folds behind its header, the shallower line
// just above it. Blocks opening on the first line have no header and are
// skipped; when nested blocks share a header only the outermost one counts.
func RegionsFromIndent(columns [][]IndentBlock) []FoldRegion {
	var regions []FoldRegion
	seen := make(map[int]bool)
	for _, blocks := range columns {
		for _, b := range blocks {
			if b.StartLine == 0 || seen[b.StartLine-1] {
				continue
			}
			seen[b.StartLine-1] = true
			regions = append(regions, FoldRegion{
				StartLine: b.StartLine - 1,
				EndLine:   b.EndLine,
			})
		}
	}
	return regions
}
