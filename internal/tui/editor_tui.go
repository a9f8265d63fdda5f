package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"git-visual-rebase/internal/logging"
	"git-visual-rebase/internal/todo"
)

const defaultHeight = 24

type Outcome int

const (
	OutcomeCancel Outcome = iota
	OutcomeSave
)

func (o Outcome) String() string {
	if o == OutcomeSave {
		return "save"
	}
	return "cancel"
}

// Result is what the session ended with. Items is only set for OutcomeSave.
type Result struct {
	Outcome Outcome
	Items   []todo.Item
}

type Options struct {
	Theme  UITheme
	Logger *slog.Logger
	// Height is used until the terminal reports its size.
	Height         int
	ProgramOptions []tea.ProgramOption
}

type editorModel struct {
	list    todoList
	keys    keyMap
	mode    editorMode
	editor  inlineEditor
	rows    *rowCache
	panel   []string
	width   int
	outcome Outcome
	done    bool
	theme   UITheme
	styles  styles
	log     *slog.Logger
}

// EditTodo runs the interactive editor over items until the user confirms
// or cancels. An empty list is cancelled without showing anything.
func EditTodo(items []todo.Item, opts Options) (Result, error) {
	if len(items) == 0 {
		return Result{Outcome: OutcomeCancel}, nil
	}
	m := newEditorModel(items, opts)
	progOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	p := tea.NewProgram(m, progOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := finalModel.(editorModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type")
	}
	fm.log.Info("session finished", "outcome", fm.outcome.String(), "items", len(fm.list.items))
	if fm.outcome != OutcomeSave {
		return Result{Outcome: OutcomeCancel}, nil
	}
	return Result{Outcome: OutcomeSave, Items: fm.list.snapshot()}, nil
}

func newEditorModel(items []todo.Item, opts Options) editorModel {
	th := opts.Theme.withDefaults()
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}
	keys := defaultKeyMap()
	panel := keys.instructions()
	for i, line := range panel {
		panel[i] = colorizeHelpLine(line, th)
	}
	return editorModel{
		list:   newTodoList(items, height, len(panel)),
		keys:   keys,
		rows:   newRowCache(),
		panel:  panel,
		theme:  th,
		styles: newStyles(th),
		log:    log,
	}
}

func (m editorModel) Init() tea.Cmd { return nil }

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.setHeight(msg.Height)
		m.rows.invalidateAll()
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeEditing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m editorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.finish(OutcomeCancel)
	case key.Matches(msg, m.keys.Confirm):
		return m.finish(OutcomeSave)
	case key.Matches(msg, m.keys.Up):
		m.afterMove(m.list.moveCursor(-1))
	case key.Matches(msg, m.keys.Down):
		m.afterMove(m.list.moveCursor(1))
	case key.Matches(msg, m.keys.PageUp):
		m.afterMove(m.list.pageMove(-1))
	case key.Matches(msg, m.keys.PageDown):
		m.afterMove(m.list.pageMove(1))
	case key.Matches(msg, m.keys.Home):
		m.afterMove(m.list.moveTo(0))
	case key.Matches(msg, m.keys.End):
		m.afterMove(m.list.moveTo(m.list.lastIndex()))
	case key.Matches(msg, m.keys.Select):
		m.list.toggleSelection()
		m.rows.invalidate(m.list.cursor)
	case key.Matches(msg, m.keys.SetAction):
		a, ok := todo.ActionForLetter(msg.Runes[0])
		if ok && m.list.setAction(a) {
			m.rows.invalidate(m.list.cursor)
			m.log.Debug("action set", "index", m.list.cursor, "action", a.String())
		}
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit(editIntentUpdate)
	case key.Matches(msg, m.keys.Insert):
		m.list.insertBlank()
		m.rows.invalidateAll()
		m.log.Debug("item inserted", "index", m.list.cursor)
		return m.startEdit(editIntentInsert)
	case key.Matches(msg, m.keys.Remove):
		if len(m.list.items) == 1 {
			m.log.Debug("last item removed")
			return m.finish(OutcomeCancel)
		}
		if m.list.remove() {
			m.rows.invalidateAll()
			m.log.Debug("item removed", "cursor", m.list.cursor)
		}
	case key.Matches(msg, m.keys.Duplicate):
		if m.list.duplicate() {
			m.rows.invalidateAll()
			m.log.Debug("item duplicated", "cursor", m.list.cursor)
		}
	}
	return m, nil
}

func (m *editorModel) afterMove(from int, moved bool) {
	if !moved {
		return
	}
	m.rows.invalidate(from, m.list.cursor)
	if m.list.selected {
		m.log.Debug("item moved", "from", from, "to", m.list.cursor)
	}
}

func (m editorModel) startEdit(intent editIntent) (tea.Model, tea.Cmd) {
	it, ok := m.list.current()
	if !ok {
		return m, nil
	}
	m.editor = newInlineEditor(it.Content, m.list.cursor, intent, m.styles.edit)
	m.mode = modeEditing
	m.rows.invalidate(m.list.cursor)
	m.log.Debug("mode changed", "mode", modeLabel(m.mode), "index", m.list.cursor)
	return m, nil
}

func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editor, res, cmd := m.editor.update(msg)
	m.editor = editor
	if res == nil {
		return m, cmd
	}
	m.mode = modeNormal
	m.log.Debug("mode changed", "mode", modeLabel(m.mode), "confirmed", res.Confirmed)
	// An empty confirmed text is treated as a cancel so no bare action is saved.
	switch {
	case res.Confirmed && strings.TrimSpace(res.Text) != "":
		m.list.setContent(editor.index, res.Text)
		m.rows.invalidate(editor.index)
		m.log.Debug("item edited", "index", editor.index)
	case editor.intent == editIntentInsert:
		m.list.removeAt(editor.index)
		m.rows.invalidateAll()
		m.log.Debug("insert cancelled", "index", editor.index)
	default:
		m.rows.invalidate(editor.index)
	}
	return m, cmd
}

func (m editorModel) finish(o Outcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	m.done = true
	return m, tea.Quit
}

// View returns exactly height lines for any height of at least one.
func (m editorModel) View() string {
	if m.done {
		return ""
	}
	n := len(m.list.items)
	v := m.list.view
	lines := make([]string, v.availableRows(), v.availableRows()+1+len(m.panel))
	start, end := v.visibleRange(n)
	for i := start; i < end; i++ {
		if row, ok := v.screenRow(i, n); ok {
			lines[row] = m.row(i)
		}
	}
	if v.showIndicators(n) {
		lines[0] = m.indicator(v.hiddenAbove(), moreAbove)
		lines[v.itemRows(n)+1] = m.indicator(v.hiddenBelow(n), moreBelow)
	}
	if v.showPanel() {
		lines = append(lines, "")
		lines = append(lines, m.panel...)
	}
	return strings.Join(lines, "\n")
}

func (m editorModel) indicator(hidden int, format func(int) string) string {
	if hidden <= 0 {
		return ""
	}
	return m.styles.muted.Render(format(hidden))
}

func (m editorModel) row(i int) string {
	it := m.list.items[i]
	if m.mode == modeEditing && i == m.editor.index {
		return renderEditRow(it, m.editor.View(), m.width, m.styles)
	}
	if row, ok := m.rows.get(i); ok {
		return row
	}
	row := renderRow(it, i == m.list.cursor, m.list.selected, m.width, m.styles)
	m.rows.put(i, row)
	return row
}
