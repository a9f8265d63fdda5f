package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"git-visual-rebase/internal/todo"
)

const actionColumnWidth = 6

// rowCache holds rendered item rows keyed by item index. It is shared by
// pointer between copies of the model.
type rowCache struct {
	rows map[int]string
}

func newRowCache() *rowCache {
	return &rowCache{rows: map[int]string{}}
}

func (c *rowCache) invalidate(indexes ...int) {
	for _, i := range indexes {
		delete(c.rows, i)
	}
}

func (c *rowCache) invalidateAll() {
	clear(c.rows)
}

func (c *rowCache) get(i int) (string, bool) {
	row, ok := c.rows[i]
	return row, ok
}

func (c *rowCache) put(i int, row string) {
	c.rows[i] = row
}

func (c *rowCache) len() int {
	return len(c.rows)
}

// renderRow draws one item. The highlighted row is framed with "<" and ">";
// a selected highlighted row uses the selection colors.
func renderRow(it todo.Item, highlighted, selected bool, width int, st styles) string {
	action := fmt.Sprintf("%-*s", actionColumnWidth, it.Action.String())
	var row string
	switch {
	case highlighted && selected:
		row = st.selected.Render(" < " + action + " " + it.Content + " > ")
	case highlighted:
		row = st.highlight.Render(" < " + action + " " + it.Content + " > ")
	default:
		row = "   " + st.actions[it.Action].Render(action) + " " + st.text.Render(it.Content)
	}
	return truncateRow(row, width)
}

// renderEditRow draws the row under edit without highlight decoration.
func renderEditRow(it todo.Item, field string, width int, st styles) string {
	action := fmt.Sprintf("%-*s", actionColumnWidth, it.Action.String())
	return truncateRow("   "+st.actions[it.Action].Render(action)+" "+field, width)
}

func truncateRow(row string, width int) string {
	if width <= 0 {
		return row
	}
	return ansi.Truncate(row, width, "")
}

func moreAbove(n int) string {
	return fmt.Sprintf("   ↑ %d more", n)
}

func moreBelow(n int) string {
	return fmt.Sprintf("   ↓ %d more", n)
}
