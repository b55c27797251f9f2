package editor

import "sort"

// CursorCollection stores a document's cursors: exactly one primary, which
// exists from construction and can never be removed, plus any number of
// secondary cursors kept sorted ascending by position. The index of the
// most recently added secondary is tracked so the newest cursor can be
// dropped again.
type CursorCollection struct {
	primary   *Cursor
	secondary []*Cursor
	nextID    int
	lastAdded int // index into secondary, -1 when unknown
}

// NewCursorCollection returns a collection holding a single primary cursor
// at the document origin.
func NewCursorCollection() *CursorCollection {
	return &CursorCollection{
		primary:   &Cursor{id: 0},
		nextID:    1,
		lastAdded: -1,
	}
}

// Primary returns the primary cursor.
func (cc *CursorCollection) Primary() *Cursor {
	return cc.primary
}

// Count reports how many cursors are active, the primary included.
func (cc *CursorCollection) Count() int {
	if cc == nil {
		return 0
	}
	return 1 + len(cc.secondary)
}

// IsMulti reports whether more than one cursor exists.
func (cc *CursorCollection) IsMulti() bool {
	return cc.Count() > 1
}

// All returns the cursors in visit order: the primary first, then the
// secondaries ascending by position.
func (cc *CursorCollection) All() []*Cursor {
	out := make([]*Cursor, 0, 1+len(cc.secondary))
	out = append(out, cc.primary)
	out = append(out, cc.secondary...)
	return out
}

// ForEach visits the primary cursor first, then the sorted secondaries.
func (cc *CursorCollection) ForEach(fn func(*Cursor)) {
	for _, c := range cc.All() {
		fn(c)
	}
}

// ByID returns the cursor with the given id, or nil.
func (cc *CursorCollection) ByID(id int) *Cursor {
	if cc.primary.id == id {
		return cc.primary
	}
	for _, c := range cc.secondary {
		if c.id == id {
			return c
		}
	}
	return nil
}

// Add creates a secondary cursor at pos, inserts it in sorted order and
// records its index as the last added. When a cursor already sits exactly
// at pos, that cursor is returned instead of creating an overlap.
func (cc *CursorCollection) Add(pos Position) *Cursor {
	if cc.primary.pos == pos {
		return cc.primary
	}
	for _, c := range cc.secondary {
		if c.pos == pos {
			return c
		}
	}
	c := &Cursor{id: cc.nextID, pos: pos}
	cc.nextID++
	idx := sort.Search(len(cc.secondary), func(i int) bool {
		return cc.secondary[i].pos.After(pos)
	})
	cc.secondary = append(cc.secondary, nil)
	copy(cc.secondary[idx+1:], cc.secondary[idx:])
	cc.secondary[idx] = c
	cc.lastAdded = idx
	return c
}

// Remove drops the cursor with the given id. Removing the primary is
// refused.
func (cc *CursorCollection) Remove(id int) bool {
	if id == cc.primary.id {
		return false
	}
	for i, c := range cc.secondary {
		if c.id == id {
			cc.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveLastAdded drops the most recently added secondary cursor.
func (cc *CursorCollection) RemoveLastAdded() bool {
	if cc.lastAdded < 0 || cc.lastAdded >= len(cc.secondary) {
		return false
	}
	cc.removeAt(cc.lastAdded)
	return true
}

// removeAt drops secondary i, shifting the last-added index down when the
// removal happened at or before it.
func (cc *CursorCollection) removeAt(i int) {
	cc.secondary = append(cc.secondary[:i], cc.secondary[i+1:]...)
	if i <= cc.lastAdded {
		cc.lastAdded--
	}
}

// Clear drops every secondary cursor, keeping only the primary.
func (cc *CursorCollection) Clear() {
	cc.secondary = nil
	cc.lastAdded = -1
}

// Lowest returns the cursor closest to the document start, the primary
// included.
func (cc *CursorCollection) Lowest() *Cursor {
	low := cc.primary
	if len(cc.secondary) > 0 && cc.secondary[0].pos.Before(low.pos) {
		low = cc.secondary[0]
	}
	return low
}

// Highest returns the cursor closest to the document end, the primary
// included.
func (cc *CursorCollection) Highest() *Cursor {
	high := cc.primary
	if n := len(cc.secondary); n > 0 && cc.secondary[n-1].pos.After(high.pos) {
		high = cc.secondary[n-1]
	}
	return high
}

// resort restores the sorted-secondary invariant after cursors moved.
func (cc *CursorCollection) resort() {
	sort.SliceStable(cc.secondary, func(i, j int) bool {
		return cc.secondary[i].pos.Before(cc.secondary[j].pos)
	})
}

// dedupe merges cursors that ended up on the same position, keeping the
// longest-lived (smallest id). Reports whether anything was removed.
func (cc *CursorCollection) dedupe() bool {
	changed := false
	for i := 0; i < len(cc.secondary); {
		c := cc.secondary[i]
		if c.pos == cc.primary.pos {
			cc.removeAt(i)
			changed = true
			continue
		}
		if i > 0 && c.pos == cc.secondary[i-1].pos {
			if c.id < cc.secondary[i-1].id {
				cc.secondary[i-1], cc.secondary[i] = c, cc.secondary[i-1]
			}
			cc.removeAt(i)
			changed = true
			continue
		}
		i++
	}
	return changed
}
