package tui

// viewport decides which slice of the todo list is on screen. The bottom of
// the terminal holds the instruction panel and one blank separator row,
// unless the terminal is too short to leave a list row above them.
type viewport struct {
	height      int
	panelHeight int
	scroll      int
}

func (v viewport) showPanel() bool {
	return v.height-v.panelHeight-1 >= 1
}

func (v viewport) availableRows() int {
	rows := v.height
	if v.showPanel() {
		rows -= v.panelHeight + 1
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v viewport) scrollable(n int) bool {
	return n > v.availableRows()
}

// showIndicators reports whether the first and last available rows hold the
// "more above" and "more below" indicators. They need at least one item row
// between them.
func (v viewport) showIndicators(n int) bool {
	return v.scrollable(n) && v.availableRows() >= 3
}

func (v viewport) itemRows(n int) int {
	rows := v.availableRows()
	if v.showIndicators(n) {
		rows -= 2
	}
	return rows
}

// firstRow is the screen row of the first displayed item.
func (v viewport) firstRow(n int) int {
	if v.showIndicators(n) {
		return 1
	}
	return 0
}

func (v viewport) lastDisplayed(n int) int {
	return v.scroll + v.itemRows(n) - 1
}

func (v viewport) pageSize(n int) int {
	size := v.itemRows(n) - 1
	if size < 1 {
		size = 1
	}
	return size
}

func (v viewport) visibleRange(n int) (int, int) {
	start := v.scroll
	end := start + v.itemRows(n)
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

func (v viewport) hiddenAbove() int {
	return v.scroll
}

func (v viewport) hiddenBelow(n int) int {
	below := n - v.lastDisplayed(n) - 1
	if below < 0 {
		return 0
	}
	return below
}

// screenRow returns the terminal row of item i, if it is displayed.
func (v viewport) screenRow(i, n int) (int, bool) {
	start, end := v.visibleRange(n)
	if i < start || i >= end {
		return 0, false
	}
	return v.firstRow(n) + i - start, true
}

// ensureVisible shifts the window by the minimum needed to keep cursor on
// screen and the window inside the list.
func (v *viewport) ensureVisible(cursor, n int) {
	if n == 0 {
		v.scroll = 0
		return
	}
	if over := v.lastDisplayed(n) - (n - 1); over > 0 {
		v.scroll -= min(v.scroll, over)
	}
	if cursor > v.lastDisplayed(n) {
		v.scroll = cursor - v.itemRows(n) + 1
	}
	if v.scroll > cursor {
		v.scroll = cursor
	} else if v.scroll < 0 {
		v.scroll = 0
	}
}
