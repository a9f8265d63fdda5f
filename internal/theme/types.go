package theme

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type Hex string

type PaletteHex struct {
	HighlightBg  Hex `json:"highlight_bg"`
	HighlightFg  Hex `json:"highlight_fg"`
	SelectedBg   Hex `json:"selected_bg"`
	SelectedFg   Hex `json:"selected_fg"`
	EditBg       Hex `json:"edit_bg"`
	EditFg       Hex `json:"edit_fg"`
	TextPrimary  Hex `json:"text_primary"`
	TextMuted    Hex `json:"text_muted"`
	HelpKey      Hex `json:"help_key"`
	HelpText     Hex `json:"help_text"`
	ActionPick   Hex `json:"action_pick"`
	ActionReword Hex `json:"action_reword"`
	ActionEdit   Hex `json:"action_edit"`
	ActionSquash Hex `json:"action_squash"`
	ActionFixup  Hex `json:"action_fixup"`
	ActionExec   Hex `json:"action_exec"`
	ActionDrop   Hex `json:"action_drop"`
}

type ThemeFile struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Version int        `json:"version"`
	Colors  PaletteHex `json:"colors"`
}

// PaletteResolved holds lipgloss color strings: hex on truecolor
// terminals, xterm-256 indexes elsewhere.
type PaletteResolved struct {
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

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme ids name files in the themes directory.
var idRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

const DefaultID = "default"

// ValidateID rejects ids that are not a plain file stem.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("theme id is required")
	}
	if !idRe.MatchString(id) || strings.Contains(id, "..") {
		return fmt.Errorf("invalid theme id %q: use lowercase letters, digits, '.', '_' or '-'", id)
	}
	return nil
}

func (p PaletteHex) fields() map[string]Hex {
	return map[string]Hex{
		"highlight_bg":  p.HighlightBg,
		"highlight_fg":  p.HighlightFg,
		"selected_bg":   p.SelectedBg,
		"selected_fg":   p.SelectedFg,
		"edit_bg":       p.EditBg,
		"edit_fg":       p.EditFg,
		"text_primary":  p.TextPrimary,
		"text_muted":    p.TextMuted,
		"help_key":      p.HelpKey,
		"help_text":     p.HelpText,
		"action_pick":   p.ActionPick,
		"action_reword": p.ActionReword,
		"action_edit":   p.ActionEdit,
		"action_squash": p.ActionSquash,
		"action_fixup":  p.ActionFixup,
		"action_exec":   p.ActionExec,
		"action_drop":   p.ActionDrop,
	}
}

func (p PaletteHex) Validate() error {
	for key, val := range p.fields() {
		if !hexRe.MatchString(string(val)) {
			return fmt.Errorf("invalid hex color for %s: %q", key, string(val))
		}
	}
	return nil
}

// ParseThemeFile decodes a theme; colors it leaves out keep their defaults.
func ParseThemeFile(b []byte) (ThemeFile, error) {
	t := ThemeFile{
		Version: 1,
		Colors:  DefaultPaletteHex(),
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return ThemeFile{}, err
	}
	if err := ValidateID(t.ID); err != nil {
		return ThemeFile{}, err
	}
	if t.ID == DefaultID {
		return ThemeFile{}, fmt.Errorf("theme id %q is reserved", t.ID)
	}
	if t.Version == 0 {
		t.Version = 1
	}
	if err := t.Colors.Validate(); err != nil {
		return ThemeFile{}, err
	}
	return t, nil
}

func DefaultPaletteHex() PaletteHex {
	return PaletteHex{
		HighlightBg:  "#c0392b",
		HighlightFg:  "#ffffff",
		SelectedBg:   "#d4a017",
		SelectedFg:   "#ffffff",
		EditBg:       "#2e5cb8",
		EditFg:       "#ffffff",
		TextPrimary:  "#ddd7c1",
		TextMuted:    "#9e9987",
		HelpKey:      "#fff67d",
		HelpText:     "#d8cfaa",
		ActionPick:   "#ddd7c1",
		ActionReword: "#9fd0d0",
		ActionEdit:   "#c7b3e6",
		ActionSquash: "#f0b86e",
		ActionFixup:  "#e7d896",
		ActionExec:   "#8fc98f",
		ActionDrop:   "#d75f5f",
	}
}
