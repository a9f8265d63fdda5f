package tui

import (
	"github.com/charmbracelet/lipgloss"

	"git-visual-rebase/internal/theme"
	"git-visual-rebase/internal/todo"
)

type UITheme struct {
	HighlightBg  string
	HighlightFg  string
	SelectedBg   string
	SelectedFg   string
	EditBg       string
	EditFg       string
	TextPrimary  string
	TextMuted    string
	HelpKey      string
	HelpText     string
	ActionPick   string
	ActionReword string
	ActionEdit   string
	ActionSquash string
	ActionFixup  string
	ActionExec   string
	ActionDrop   string
}

func defaultUITheme() UITheme {
	resolved := theme.ResolveForTerminal(theme.DefaultPaletteHex(), theme.DetectTrueColor())
	return UIThemeFromResolved(resolved)
}

func UIThemeFromResolved(r theme.PaletteResolved) UITheme {
	return UITheme{
		HighlightBg:  r.HighlightBg,
		HighlightFg:  r.HighlightFg,
		SelectedBg:   r.SelectedBg,
		SelectedFg:   r.SelectedFg,
		EditBg:       r.EditBg,
		EditFg:       r.EditFg,
		TextPrimary:  r.TextPrimary,
		TextMuted:    r.TextMuted,
		HelpKey:      r.HelpKey,
		HelpText:     r.HelpText,
		ActionPick:   r.ActionPick,
		ActionReword: r.ActionReword,
		ActionEdit:   r.ActionEdit,
		ActionSquash: r.ActionSquash,
		ActionFixup:  r.ActionFixup,
		ActionExec:   r.ActionExec,
		ActionDrop:   r.ActionDrop,
	}
}

func (t UITheme) withDefaults() UITheme {
	d := defaultUITheme()
	if t.HighlightBg == "" {
		t.HighlightBg = d.HighlightBg
	}
	if t.HighlightFg == "" {
		t.HighlightFg = d.HighlightFg
	}
	if t.SelectedBg == "" {
		t.SelectedBg = d.SelectedBg
	}
	if t.SelectedFg == "" {
		t.SelectedFg = d.SelectedFg
	}
	if t.EditBg == "" {
		t.EditBg = d.EditBg
	}
	if t.EditFg == "" {
		t.EditFg = d.EditFg
	}
	if t.TextPrimary == "" {
		t.TextPrimary = d.TextPrimary
	}
	if t.TextMuted == "" {
		t.TextMuted = d.TextMuted
	}
	if t.HelpKey == "" {
		t.HelpKey = d.HelpKey
	}
	if t.HelpText == "" {
		t.HelpText = d.HelpText
	}
	if t.ActionPick == "" {
		t.ActionPick = d.ActionPick
	}
	if t.ActionReword == "" {
		t.ActionReword = d.ActionReword
	}
	if t.ActionEdit == "" {
		t.ActionEdit = d.ActionEdit
	}
	if t.ActionSquash == "" {
		t.ActionSquash = d.ActionSquash
	}
	if t.ActionFixup == "" {
		t.ActionFixup = d.ActionFixup
	}
	if t.ActionExec == "" {
		t.ActionExec = d.ActionExec
	}
	if t.ActionDrop == "" {
		t.ActionDrop = d.ActionDrop
	}
	return t
}

func (t UITheme) actionColor(a todo.Action) string {
	switch a {
	case todo.ActionReword:
		return t.ActionReword
	case todo.ActionEdit:
		return t.ActionEdit
	case todo.ActionSquash:
		return t.ActionSquash
	case todo.ActionFixup:
		return t.ActionFixup
	case todo.ActionExec:
		return t.ActionExec
	case todo.ActionDrop:
		return t.ActionDrop
	default:
		return t.ActionPick
	}
}

type styles struct {
	text      lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style
	selected  lipgloss.Style
	edit      lipgloss.Style
	actions   map[todo.Action]lipgloss.Style
}

func newStyles(t UITheme) styles {
	s := styles{
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextPrimary)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted)),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.HighlightFg)).Background(lipgloss.Color(t.HighlightBg)),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.SelectedFg)).Background(lipgloss.Color(t.SelectedBg)),
		edit:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.EditFg)).Background(lipgloss.Color(t.EditBg)),
		actions:   make(map[todo.Action]lipgloss.Style, len(todo.Actions)),
	}
	for _, a := range todo.Actions {
		s.actions[a] = lipgloss.NewStyle().Foreground(lipgloss.Color(t.actionColor(a)))
	}
	return s
}
