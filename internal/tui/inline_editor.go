package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxEditSize counts the trailing cursor cell, so content holds one less.
const maxEditSize = 60

type editIntent int

const (
	editIntentUpdate editIntent = iota
	editIntentInsert
)

type editResult struct {
	Text      string
	Confirmed bool
}

// inlineEditor edits the content of one item. While it is open it receives
// every key; it finishes with an editResult.
type inlineEditor struct {
	input  textinput.Model
	index  int
	intent editIntent
}

func newInlineEditor(content string, index int, intent editIntent, style lipgloss.Style) inlineEditor {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxEditSize - 1
	ti.Width = maxEditSize - 1
	ti.TextStyle = style
	ti.PlaceholderStyle = style
	ti.Cursor.Style = style
	ti.Cursor.TextStyle = style
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(truncateRunes(content, maxEditSize-1))
	ti.CursorStart()
	ti.Focus()
	return inlineEditor{input: ti, index: index, intent: intent}
}

// translateEditKey maps navigation keys onto the line editor's control
// codes. Escape and ctrl+c cancel the edit.
func translateEditKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch msg.Type {
	case tea.KeyHome:
		return tea.KeyMsg{Type: tea.KeyCtrlA}, false
	case tea.KeyEnd:
		return tea.KeyMsg{Type: tea.KeyCtrlE}, false
	case tea.KeyDelete:
		return tea.KeyMsg{Type: tea.KeyCtrlD}, false
	case tea.KeyEsc, tea.KeyCtrlC:
		return msg, true
	}
	return msg, false
}

func (e inlineEditor) update(msg tea.Msg) (inlineEditor, *editResult, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if km.Type == tea.KeyEnter {
			e.input.Blur()
			return e, &editResult{Text: strings.TrimSpace(e.input.Value()), Confirmed: true}, nil
		}
		translated, cancel := translateEditKey(km)
		if cancel {
			e.input.Blur()
			return e, &editResult{}, nil
		}
		msg = translated
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, nil, cmd
}

func (e inlineEditor) value() string {
	return e.input.Value()
}

func (e inlineEditor) View() string {
	return e.input.View()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
