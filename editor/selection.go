package editor

// Selection is a cursor's selected span. The pivot is the position where the
// selection started; the region is re-derived from the pivot and the live
// cursor position on every adjustment, so it stays normalized no matter
// which direction the cursor extends.
type Selection struct {
	Pivot  Position
	Region Region
}

// NewSelection starts an empty selection pivoted at p.
func NewSelection(p Position) *Selection {
	return &Selection{Pivot: p, Region: NewRegion(p, p)}
}

// Adjust re-derives the selected region from the pivot and the cursor's
// current position.
func (s *Selection) Adjust(live Position) {
	s.Region = NewRegion(s.Pivot, live)
}

// Active reports whether the selection covers a non-empty span.
func (s *Selection) Active() bool {
	return s != nil && !s.Region.IsEmpty()
}
