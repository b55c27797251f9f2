package main

import (
	"github.com/mattn/go-runewidth"
)

// tabLabel renders one tab as " title " with a dirty marker, matching the
// width math in tabAtX.
func tabLabel(title string, dirty bool) string {
	label := " " + title
	if dirty {
		label += "*"
	}
	return label + " "
}

// drawTabBar paints the buffer tabs across row y. The active tab uses the
// tabActive style; tabs are separated by a thin vertical bar.
func (a *inkwellApp) drawTabBar(y, w int) {
	normal := a.theme.Style("tabBar")
	active := a.theme.Style("tabActive")
	a.fillRow(y, 0, w, normal)

	x := 0
	for i, buf := range a.ws.Buffers() {
		if i > 0 {
			x = a.drawString(x, y, "│", normal, w)
		}
		st := normal
		if i == a.ws.Active() {
			st = active
		}
		x = a.drawString(x, y, tabLabel(buf.Title(), buf.Dirty()), st, w)
		if x >= w {
			break
		}
	}
}

// tabAtX maps a tab-bar screen column to a buffer index, or -1 when the
// click lands past the last tab.
func (a *inkwellApp) tabAtX(px int) int {
	x := 0
	for i, buf := range a.ws.Buffers() {
		if i > 0 {
			x += runewidth.StringWidth("│")
		}
		x += runewidth.StringWidth(tabLabel(buf.Title(), buf.Dirty()))
		if px < x {
			return i
		}
	}
	return -1
}
