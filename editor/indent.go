package editor

import "strings"

// DetectIndentStyle looks at the text to determine whether tabs or spaces
// are used for indentation and returns the indent unit string (e.g. "\t" or
// "    "). Defaults to "\t" if no indentation is found.
func DetectIndentStyle(text string) string {
	tabCount := 0
	spaceCount := 0
	minSpaceWidth := 0

	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		if line[0] == '\t' {
			tabCount++
		} else if line[0] == ' ' {
			spaceCount++
			w := 0
			for _, ch := range line {
				if ch == ' ' {
					w++
				} else {
					break
				}
			}
			if w > 0 && (minSpaceWidth == 0 || w < minSpaceWidth) {
				minSpaceWidth = w
			}
		}
	}

	if spaceCount > tabCount && minSpaceWidth > 0 {
		return strings.Repeat(" ", minSpaceWidth)
	}
	return "\t"
}

// ComputeIndent returns the indentation string for a line inserted after the
// given line. It copies the existing indent and deepens it by one step when
// the line ends with an opening bracket after trimming trailing whitespace.
// Space-indented lines deepen by tabSize spaces, tab-indented ones by a tab.
func ComputeIndent(line string, tabSize int) string {
	indent := leadingWhitespace(line)

	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) > 0 {
		last := trimmed[len(trimmed)-1]
		if last == '{' || last == '(' || last == '[' {
			if strings.Contains(indent, "\t") || indent == "" {
				indent += "\t"
			} else {
				if tabSize < 1 {
					tabSize = 1
				}
				indent += strings.Repeat(" ", tabSize)
			}
		}
	}

	return indent
}

// IndentBlock is one indentation region: the run of lines a guide at the
// given column spans. Start and End are inclusive line indices. A block
// contains at least one non-blank line; blank lines extend a block but
// never open one.
type IndentBlock struct {
	Column    int
	StartLine int
	EndLine   int
}

// Contains reports whether the block spans the given line.
func (b IndentBlock) Contains(line int) bool {
	return line >= b.StartLine && line <= b.EndLine
}

// IndentRegionIndex holds every indent block of a document, bucketed by
// guide column. It is rebuilt by a full forward scan after each mutation;
// it is a derived cache, never edited incrementally.
type IndentRegionIndex struct {
	columns [][]IndentBlock
}

// Columns returns how many guide columns the document reaches.
func (x *IndentRegionIndex) Columns() int {
	if x == nil {
		return 0
	}
	return len(x.columns)
}

// BlocksAt returns the blocks of one guide column, ordered by start line.
func (x *IndentRegionIndex) BlocksAt(column int) []IndentBlock {
	if x == nil || column < 0 || column >= len(x.columns) {
		return nil
	}
	return x.columns[column]
}

// Blocks returns all blocks, one slice per guide column.
func (x *IndentRegionIndex) Blocks() [][]IndentBlock {
	if x == nil {
		return nil
	}
	return x.columns
}

// GuidesAt returns the guide columns that cross the given line, ascending.
func (x *IndentRegionIndex) GuidesAt(line int) []int {
	if x == nil {
		return nil
	}
	var cols []int
	for c, blocks := range x.columns {
		for _, b := range blocks {
			if b.Contains(line) {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

type openIndent struct {
	column int
	start  int
}

// buildIndentIndex scans the lines front to back. A non-blank line with
// indent width w opens a block in every guide column below w / tabSize
// (integer division: only full tab stops open a guide). A block stays open
// across blank lines and closes just before the next non-blank line with a
// shallower indent, keeping any interior or trailing blanks inside it.
func buildIndentIndex(lines []*Line, tabSize int) *IndentRegionIndex {
	x := &IndentRegionIndex{}
	var open []openIndent

	closeDownTo := func(depth, endLine int) {
		for len(open) > depth {
			b := open[len(open)-1]
			open = open[:len(open)-1]
			for len(x.columns) <= b.column {
				x.columns = append(x.columns, nil)
			}
			x.columns[b.column] = append(x.columns[b.column], IndentBlock{
				Column:    b.column,
				StartLine: b.start,
				EndLine:   endLine,
			})
		}
	}

	for i, l := range lines {
		if l.Blank() {
			continue
		}
		depth := l.indent / tabSize
		closeDownTo(depth, i-1)
		for len(open) < depth {
			open = append(open, openIndent{column: len(open), start: i})
		}
	}
	closeDownTo(0, len(lines)-1)
	return x
}
