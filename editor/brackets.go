package editor

// bracketPairs maps each bracket character to its matching partner.
var bracketPairs = map[rune]rune{
	'(': ')',
	')': '(',
	'{': '}',
	'}': '{',
	'[': ']',
	']': '[',
}

// openBrackets is the set of opening bracket characters.
var openBrackets = map[rune]bool{
	'(': true,
	'{': true,
	'[': true,
}

// BracketAt returns the bracket character at p, or false when p is out of
// range or not on a bracket.
func (lc *LineCollection) BracketAt(p Position) (rune, bool) {
	if p.Line < 0 || p.Line >= lc.Count() {
		return 0, false
	}
	runes := runeSlice(lc.Content(p.Line))
	if p.Col < 0 || p.Col >= len(runes) {
		return 0, false
	}
	r := runes[p.Col]
	if _, ok := bracketPairs[r]; !ok {
		return 0, false
	}
	return r, true
}

// MatchingBracket finds the partner of the bracket at p, scanning forward
// for an opener and backward for a closer, across line boundaries, with
// nesting of the same pair respected. Only the pair's own characters count
// toward nesting; other bracket kinds are passed over. Returns false when p
// is not on a bracket or the pair is unbalanced.
func (lc *LineCollection) MatchingBracket(p Position) (Position, bool) {
	ch, ok := lc.BracketAt(p)
	if !ok {
		return Position{}, false
	}
	partner := bracketPairs[ch]

	if openBrackets[ch] {
		depth := 1
		line := p.Line
		col := p.Col + 1
		for line < lc.Count() {
			runes := runeSlice(lc.Content(line))
			for ; col < len(runes); col++ {
				switch runes[col] {
				case ch:
					depth++
				case partner:
					depth--
					if depth == 0 {
						return Position{Line: line, Col: col}, true
					}
				}
			}
			line++
			col = 0
		}
		return Position{}, false
	}

	depth := 1
	line := p.Line
	col := p.Col - 1
	for line >= 0 {
		runes := runeSlice(lc.Content(line))
		if col >= len(runes) {
			col = len(runes) - 1
		}
		for ; col >= 0; col-- {
			switch runes[col] {
			case ch:
				depth++
			case partner:
				depth--
				if depth == 0 {
					return Position{Line: line, Col: col}, true
				}
			}
		}
		line--
		if line >= 0 {
			col = lc.LineLen(line) - 1
		}
	}
	return Position{}, false
}
