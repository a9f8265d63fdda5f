package todo

import (
	"fmt"
	"unicode"
)

type Action int

const (
	ActionPick Action = iota
	ActionReword
	ActionEdit
	ActionSquash
	ActionFixup
	ActionExec
	ActionDrop
)

// Actions lists every action in key-help order.
var Actions = []Action{
	ActionPick,
	ActionReword,
	ActionEdit,
	ActionSquash,
	ActionFixup,
	ActionExec,
	ActionDrop,
}

var actionKeywords = [...]string{
	ActionPick:   "pick",
	ActionReword: "reword",
	ActionEdit:   "edit",
	ActionSquash: "squash",
	ActionFixup:  "fixup",
	ActionExec:   "exec",
	ActionDrop:   "drop",
}

var actionLetters = [...]rune{
	ActionPick:   'p',
	ActionReword: 'r',
	ActionEdit:   'e',
	ActionSquash: 's',
	ActionFixup:  'f',
	ActionExec:   'x',
	ActionDrop:   'd',
}

var actionsByKeyword = map[string]Action{
	"pick":   ActionPick,
	"reword": ActionReword,
	"edit":   ActionEdit,
	"squash": ActionSquash,
	"fixup":  ActionFixup,
	"exec":   ActionExec,
	"drop":   ActionDrop,
}

var actionsByLetter = map[rune]Action{
	'p': ActionPick,
	'r': ActionReword,
	'e': ActionEdit,
	's': ActionSquash,
	'f': ActionFixup,
	'x': ActionExec,
	'd': ActionDrop,
}

func (a Action) Valid() bool {
	return a >= ActionPick && a <= ActionDrop
}

// String returns the keyword git expects in the todo file.
func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionKeywords[a]
}

// Letter is the key that assigns the action in the editor.
func (a Action) Letter() rune {
	if !a.Valid() {
		return 0
	}
	return actionLetters[a]
}

// ParseAction accepts full keywords and the one-letter forms git writes
// when rebase.abbreviateCommands is set.
func ParseAction(keyword string) (Action, bool) {
	if a, ok := actionsByKeyword[keyword]; ok {
		return a, true
	}
	if len(keyword) == 1 {
		a, ok := actionsByLetter[rune(keyword[0])]
		return a, ok
	}
	return 0, false
}

// ActionForLetter maps an action key to its action, ignoring case.
func ActionForLetter(r rune) (Action, bool) {
	a, ok := actionsByLetter[unicode.ToLower(r)]
	return a, ok
}

type Item struct {
	Action  Action
	Content string
}

func (it Item) String() string {
	return it.Action.String() + " " + it.Content
}
