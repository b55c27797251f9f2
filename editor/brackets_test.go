package editor

import "testing"

func TestBracketAt(t *testing.T) {
	lc := NewLineCollection("a(b)", nil, 4)

	if r, ok := lc.BracketAt(Position{0, 1}); !ok || r != '(' {
		t.Fatalf("BracketAt(0,1) = (%q, %v), want ('(', true)", r, ok)
	}
	if _, ok := lc.BracketAt(Position{0, 0}); ok {
		t.Fatalf("BracketAt on a letter = true, want false")
	}
	if _, ok := lc.BracketAt(Position{0, 4}); ok {
		t.Fatalf("BracketAt on the end slot = true, want false")
	}
	if _, ok := lc.BracketAt(Position{5, 0}); ok {
		t.Fatalf("BracketAt past the last line = true, want false")
	}
}

func TestMatchingBracket(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		pos    Position
		want   Position
		wantOK bool
	}{
		{
			name:   "open paren with mixed nesting",
			text:   "a(b[c]d)e",
			pos:    Position{0, 1},
			want:   Position{0, 7},
			wantOK: true,
		},
		{
			name:   "close paren with mixed nesting",
			text:   "a(b[c]d)e",
			pos:    Position{0, 7},
			want:   Position{0, 1},
			wantOK: true,
		},
		{
			name:   "inner bracket pair",
			text:   "a(b[c]d)e",
			pos:    Position{0, 3},
			want:   Position{0, 5},
			wantOK: true,
		},
		{
			name:   "nested same pair",
			text:   "((a))",
			pos:    Position{0, 0},
			want:   Position{0, 4},
			wantOK: true,
		},
		{
			name:   "across lines forward",
			text:   "fn {\n\tbody\n}",
			pos:    Position{0, 3},
			want:   Position{2, 0},
			wantOK: true,
		},
		{
			name:   "across lines backward",
			text:   "fn {\n\tbody\n}",
			pos:    Position{2, 0},
			want:   Position{0, 3},
			wantOK: true,
		},
		{
			name:   "other kinds do not nest",
			text:   "(a[)",
			pos:    Position{0, 0},
			want:   Position{0, 3},
			wantOK: true,
		},
		{
			name:   "unbalanced open",
			text:   "a(b",
			pos:    Position{0, 1},
			wantOK: false,
		},
		{
			name:   "unbalanced close",
			text:   ")b",
			pos:    Position{0, 0},
			wantOK: false,
		},
		{
			name:   "not a bracket",
			text:   "abc",
			pos:    Position{0, 1},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := NewLineCollection(tt.text, nil, 4)
			got, ok := lc.MatchingBracket(tt.pos)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("MatchingBracket(%v) = (%v, %v), want (%v, %v)",
					tt.pos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
