package tui

import (
	"git-visual-rebase/internal/todo"
)

type todoList struct {
	items    []todo.Item
	cursor   int
	selected bool
	view     viewport
}

func newTodoList(items []todo.Item, height, panelHeight int) todoList {
	l := todoList{
		items: append([]todo.Item(nil), items...),
		view:  viewport{height: height, panelHeight: panelHeight},
	}
	l.view.ensureVisible(l.cursor, len(l.items))
	return l
}

func (l *todoList) setHeight(h int) {
	l.view.height = h
	l.view.ensureVisible(l.cursor, len(l.items))
}

func (l todoList) lastIndex() int {
	return len(l.items) - 1
}

func (l todoList) current() (todo.Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return todo.Item{}, false
	}
	return l.items[l.cursor], true
}

// moveTo moves the highlight to target, clamped to the list. While an item
// is selected it travels with the highlight: old and new positions swap in
// one step, whatever the distance.
func (l *todoList) moveTo(target int) (from int, moved bool) {
	from = l.cursor
	if len(l.items) == 0 {
		return from, false
	}
	if target < 0 {
		target = 0
	}
	if target > l.lastIndex() {
		target = l.lastIndex()
	}
	if target != l.cursor {
		l.cursor = target
		if l.selected {
			l.items[from], l.items[target] = l.items[target], l.items[from]
		}
		moved = true
	}
	l.view.ensureVisible(l.cursor, len(l.items))
	return from, moved
}

func (l *todoList) moveCursor(delta int) (int, bool) {
	return l.moveTo(l.cursor + delta)
}

// pageMove shifts the window and the highlight together by one page.
func (l *todoList) pageMove(dir int) (int, bool) {
	delta := dir * l.view.pageSize(len(l.items))
	l.view.scroll += delta
	return l.moveTo(l.cursor + delta)
}

func (l *todoList) toggleSelection() {
	l.selected = !l.selected
}

func (l *todoList) setAction(a todo.Action) bool {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return false
	}
	l.items[l.cursor].Action = a
	return true
}

func (l *todoList) setContent(i int, content string) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items[i].Content = content
}

// insertBlank puts an empty pick before the highlight; the highlight stays
// on the new item.
func (l *todoList) insertBlank() {
	l.insertAt(l.cursor, todo.Item{Action: todo.ActionPick})
}

// duplicate inserts a copy before the highlight and keeps the highlight on
// the copied item, now one row further down.
func (l *todoList) duplicate() bool {
	it, ok := l.current()
	if !ok {
		return false
	}
	l.insertAt(l.cursor, it)
	l.cursor++
	l.view.ensureVisible(l.cursor, len(l.items))
	return true
}

func (l *todoList) insertAt(i int, it todo.Item) {
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	l.items = append(l.items, todo.Item{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = it
	l.view.ensureVisible(l.cursor, len(l.items))
}

// remove deletes the highlighted item. It reports false when the list was
// already empty.
func (l *todoList) remove() bool {
	return l.removeAt(l.cursor)
}

func (l *todoList) removeAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.view.ensureVisible(l.cursor, len(l.items))
	return true
}

func (l todoList) snapshot() []todo.Item {
	return append([]todo.Item(nil), l.items...)
}
