package editor

import "unicode"

// isWordRune reports whether r belongs to a word: letters, digits and the
// underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordEndAfter finds the end of the next word at or after p: any run of
// non-word characters is skipped, then one word run is consumed. The scan
// continues onto following lines when the rest of the current line holds no
// word. Returns false when no word exists before the document end.
func (lc *LineCollection) WordEndAfter(p Position) (Position, bool) {
	p = lc.ClampPosition(p)
	for line := p.Line; line < lc.Count(); line++ {
		runes := runeSlice(lc.Content(line))
		col := 0
		if line == p.Line {
			col = p.Col
		}
		for col < len(runes) && !isWordRune(runes[col]) {
			col++
		}
		if col < len(runes) {
			for col < len(runes) && isWordRune(runes[col]) {
				col++
			}
			return Position{Line: line, Col: col}, true
		}
	}
	return Position{}, false
}

// WordStartBefore finds the start of the nearest word before p, the mirror
// of WordEndAfter: non-word characters left of p are skipped, then one word
// run is consumed backward, continuing onto earlier lines when needed.
// Returns false when no word exists before p.
func (lc *LineCollection) WordStartBefore(p Position) (Position, bool) {
	p = lc.ClampPosition(p)
	for line := p.Line; line >= 0; line-- {
		runes := runeSlice(lc.Content(line))
		col := len(runes)
		if line == p.Line {
			col = p.Col
		}
		for col > 0 && !isWordRune(runes[col-1]) {
			col--
		}
		if col > 0 {
			for col > 0 && isWordRune(runes[col-1]) {
				col--
			}
			return Position{Line: line, Col: col}, true
		}
	}
	return Position{}, false
}

// WordRangeAt returns the span of the word under p, preferring the word the
// cursor sits on and falling back to a word ending exactly at p. Returns
// false when p touches no word.
func (lc *LineCollection) WordRangeAt(p Position) (Region, bool) {
	p = lc.ClampPosition(p)
	runes := runeSlice(lc.Content(p.Line))
	start, end := p.Col, p.Col
	switch {
	case end < len(runes) && isWordRune(runes[end]):
		for end < len(runes) && isWordRune(runes[end]) {
			end++
		}
		for start > 0 && isWordRune(runes[start-1]) {
			start--
		}
	case start > 0 && isWordRune(runes[start-1]):
		for start > 0 && isWordRune(runes[start-1]) {
			start--
		}
	default:
		return Region{}, false
	}
	return NewRegion(Position{Line: p.Line, Col: start}, Position{Line: p.Line, Col: end}), true
}
