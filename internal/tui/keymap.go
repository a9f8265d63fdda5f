package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"git-visual-rebase/internal/todo"
)

type editorMode int

const (
	modeNormal editorMode = iota
	modeEditing
)

func modeLabel(m editorMode) string {
	if m == modeEditing {
		return "Editing"
	}
	return "Normal"
}

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Navigate  key.Binding // display-only: one help line for every move key
	Select    key.Binding
	Edit      key.Binding
	Insert    key.Binding
	Remove    key.Binding
	Duplicate key.Binding
	SetAction key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

var actionDescriptions = [...]string{
	todo.ActionPick:   "use commit",
	todo.ActionReword: "use commit, but edit the commit message",
	todo.ActionEdit:   "use commit, but stop for amending",
	todo.ActionSquash: "use commit, but meld into previous commit",
	todo.ActionFixup:  `like "squash", but discard this commit's log message`,
	todo.ActionExec:   "run command (the rest of the line) using shell",
	todo.ActionDrop:   "remove commit",
}

func defaultKeyMap() keyMap {
	actionKeys := make([]string, 0, 2*len(todo.Actions))
	for _, a := range todo.Actions {
		l := a.Letter()
		actionKeys = append(actionKeys, string(l), string(unicode.ToUpper(l)))
	}
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("UP", "move up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("DOWN", "move down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PGUP", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PGDN", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("HOME", "first item")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("END", "last item")),
		Navigate:  key.NewBinding(key.WithHelp("UP/DOWN/PGUP/PGDN/HOME/END", "move highlighter. If an item is selected, also move it")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("SPACE", "select/deselect highlighted item")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("ENTER", "edit highlighted item (then ENTER to confirm, ESC to cancel)")),
		Insert:    key.NewBinding(key.WithKeys("+", "insert"), key.WithHelp("+", "insert an item")),
		Remove:    key.NewBinding(key.WithKeys("-", "delete"), key.WithHelp("-", "remove highlighted item")),
		Duplicate: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "duplicate highlighted item")),
		SetAction: key.NewBinding(key.WithKeys(actionKeys...), key.WithHelp("P/R/E/S/F/X/D", "set action")),
		Confirm:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("CTRL-X", "quit and proceed with rebase")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("ESC", "cancel and quit")),
	}
}

// helpLine joins bindings into "KEY/KEY: desc/desc".
func helpLine(bindings ...key.Binding) string {
	keys := make([]string, 0, len(bindings))
	descs := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		keys = append(keys, h.Key)
		descs = append(descs, h.Desc)
	}
	return strings.Join(keys, "/") + ": " + strings.Join(descs, "/")
}

// instructions is the fixed panel shown under the list.
func (k keyMap) instructions() []string {
	lines := []string{"Set action for highlighted item:"}
	for _, a := range todo.Actions {
		lines = append(lines, fmt.Sprintf("  %c: %s (%s)", unicode.ToUpper(a.Letter()), a, actionDescriptions[a]))
	}
	return append(lines,
		helpLine(k.Select),
		helpLine(k.Navigate),
		helpLine(k.Edit),
		helpLine(k.Insert, k.Remove),
		helpLine(k.Duplicate),
		helpLine(k.Confirm),
		helpLine(k.Cancel),
	)
}
