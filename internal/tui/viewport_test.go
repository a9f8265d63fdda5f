package tui

import (
	"fmt"
	"math/rand"
	"testing"

	"git-visual-rebase/internal/todo"
)

func numberedItems(n int) []todo.Item {
	items := make([]todo.Item, n)
	for i := range items {
		items[i] = todo.Item{Action: todo.ActionPick, Content: fmt.Sprintf("%03d commit", i)}
	}
	return items
}

func TestViewportRows(t *testing.T) {
	v := viewport{height: 24, panelHeight: 15}
	if v.availableRows() != 8 {
		t.Fatalf("expected 8 available rows, got %d", v.availableRows())
	}
	if v.scrollable(8) || v.itemRows(8) != 8 || v.firstRow(8) != 0 {
		t.Fatalf("list that fits should not scroll")
	}
	if !v.scrollable(9) || v.itemRows(9) != 6 || v.firstRow(9) != 1 {
		t.Fatalf("list longer than window should reserve indicator rows")
	}
	if v.pageSize(20) != 5 {
		t.Fatalf("expected page of 5, got %d", v.pageSize(20))
	}
	if row, ok := v.screenRow(0, 20); !ok || row != 1 {
		t.Fatalf("first item should sit below the top indicator, got %d %v", row, ok)
	}
	if _, ok := v.screenRow(6, 20); ok {
		t.Fatalf("item 6 should be off screen")
	}

	short := viewport{height: 17, panelHeight: 15}
	if !short.showPanel() || short.availableRows() != 1 {
		t.Fatalf("17 rows should fit the panel and one list row")
	}
	if short.showIndicators(5) || short.itemRows(5) != 1 || short.firstRow(5) != 0 {
		t.Fatalf("one list row has no room for indicators")
	}

	tiny := viewport{height: 3, panelHeight: 15}
	if tiny.showPanel() || tiny.availableRows() != 3 {
		t.Fatalf("panel should be hidden on a 3-row terminal, got %d rows", tiny.availableRows())
	}
	if !tiny.showIndicators(5) || tiny.itemRows(5) != 1 {
		t.Fatalf("three rows fit one item between the indicators")
	}
}

func TestEnsureVisibleMinimalMotion(t *testing.T) {
	v := viewport{height: 24, panelHeight: 15}
	v.ensureVisible(7, 20)
	if v.scroll != 2 {
		t.Fatalf("expected scroll 2, got %d", v.scroll)
	}
	v.ensureVisible(3, 20)
	if v.scroll != 2 {
		t.Fatalf("cursor inside window must not scroll, got %d", v.scroll)
	}
	v.ensureVisible(1, 20)
	if v.scroll != 1 {
		t.Fatalf("expected scroll up by the deficit, got %d", v.scroll)
	}
	v.scroll = 18
	v.ensureVisible(19, 20)
	if v.scroll != 14 || v.hiddenBelow(20) != 0 {
		t.Fatalf("window must not run past the list end, scroll=%d", v.scroll)
	}
	if v.hiddenAbove() != 14 {
		t.Fatalf("expected 14 hidden above, got %d", v.hiddenAbove())
	}
}

func checkViewport(t *testing.T, step int, l todoList) {
	t.Helper()
	n := len(l.items)
	v := l.view
	rows := v.itemRows(n)
	if l.cursor < 0 || l.cursor >= n {
		t.Fatalf("step %d: cursor %d out of range [0,%d)", step, l.cursor, n)
	}
	if v.scroll < 0 || v.scroll > l.cursor || l.cursor > v.scroll+rows-1 {
		t.Fatalf("step %d: cursor %d outside window scroll=%d rows=%d", step, l.cursor, v.scroll, rows)
	}
	if n >= rows && v.scroll+rows > n {
		t.Fatalf("step %d: window past end scroll=%d rows=%d n=%d", step, v.scroll, rows, n)
	}
}

func TestViewportInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := newTodoList(numberedItems(40), 24, 15)
	for step := 0; step < 2000; step++ {
		switch rng.Intn(10) {
		case 0:
			l.moveCursor(-1)
		case 1:
			l.moveCursor(1)
		case 2:
			l.pageMove(-1)
		case 3:
			l.pageMove(1)
		case 4:
			l.moveTo(0)
		case 5:
			l.moveTo(l.lastIndex())
		case 6:
			l.toggleSelection()
		case 7:
			l.insertBlank()
		case 8:
			if len(l.items) > 1 {
				l.remove()
			}
		case 9:
			l.duplicate()
		}
		if step%250 == 0 {
			l.setHeight(10 + rng.Intn(30))
		}
		checkViewport(t, step, l)
	}
}
