package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git-visual-rebase/internal/config"
)

func TestPaletteHexValidate(t *testing.T) {
	p := DefaultPaletteHex()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid default palette: %v", err)
	}
	p.ActionDrop = "red"
	err := p.Validate()
	if err == nil {
		t.Fatalf("expected invalid hex error")
	}
	if !strings.Contains(err.Error(), "action_drop") {
		t.Fatalf("expected field name in error: %v", err)
	}
}

func TestResolveForTerminal(t *testing.T) {
	p := DefaultPaletteHex()
	resolvedTrue := ResolveForTerminal(p, true)
	if resolvedTrue.HighlightBg != string(p.HighlightBg) {
		t.Fatalf("expected truecolor to keep hex")
	}
	resolved256 := ResolveForTerminal(p, false)
	if resolved256.HighlightBg == "" || resolved256.HighlightBg[0] == '#' {
		t.Fatalf("expected numeric terminal color for 256 fallback, got %q", resolved256.HighlightBg)
	}
	if resolved256.ActionExec == "" || resolved256.HelpKey == "" {
		t.Fatalf("expected all fields to resolve")
	}
}

func TestNearestXterm256(t *testing.T) {
	if got := nearestXterm256(rgb{255, 0, 0}); got != 9 {
		t.Fatalf("pure red should map to 9, got %d", got)
	}
	if got := nearestXterm256(rgb{0, 0, 0}); got != 0 {
		t.Fatalf("black should map to 0, got %d", got)
	}
}

func TestParseThemeFileFillsMissingColors(t *testing.T) {
	raw := []byte(`{
		"id":"partial",
		"name":"Partial",
		"colors":{"highlight_bg":"#89b4fa"}
	}`)
	tf, err := ParseThemeFile(raw)
	if err != nil {
		t.Fatalf("expected partial theme to parse: %v", err)
	}
	if tf.Colors.HighlightBg != "#89b4fa" {
		t.Fatalf("override lost: %s", tf.Colors.HighlightBg)
	}
	if tf.Colors.EditBg != DefaultPaletteHex().EditBg || tf.Version != 1 {
		t.Fatalf("expected missing fields to be default-filled")
	}
}

func TestParseThemeFileRejectsReservedAndMissingID(t *testing.T) {
	if _, err := ParseThemeFile([]byte(`{"name":"x"}`)); err == nil {
		t.Fatalf("expected missing id error")
	}
	if _, err := ParseThemeFile([]byte(`{"id":"default"}`)); err == nil {
		t.Fatalf("expected reserved id error")
	}
}

func TestInstallApplyAndRemoveLocalTheme(t *testing.T) {
	t.Setenv("GIT_VISUAL_REBASE_CONFIG_DIR", t.TempDir())
	src := filepath.Join(t.TempDir(), "mine.json")
	if err := os.WriteFile(src, []byte(`{"id":"mine","name":"Mine","colors":{"edit_bg":"#112233"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InstallFromFile(src); err != nil {
		t.Fatalf("install: %v", err)
	}
	ids, err := ListLocalThemeIDs()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 1 || ids[0] != "mine" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	cfg := config.Default()
	cfg.Theme.Active = "mine"
	palette, id, err := LoadActivePaletteHex(cfg)
	if err != nil {
		t.Fatalf("load active: %v", err)
	}
	if id != "mine" || palette.EditBg != "#112233" {
		t.Fatalf("unexpected palette %q %s", id, palette.EditBg)
	}

	if err := RemoveLocalTheme("mine"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := RemoveLocalTheme("mine"); err == nil {
		t.Fatalf("expected not-installed error")
	}
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"mine", "dusk-2", "solarized.dark", "a_b"} {
		if err := ValidateID(id); err != nil {
			t.Fatalf("%q: unexpected error %v", id, err)
		}
	}
	for _, id := range []string{"", "../config", "a/b", `a\b`, "..", "x..y", ".hidden", "Upper"} {
		if err := ValidateID(id); err == nil {
			t.Fatalf("%q: expected invalid id", id)
		}
	}
}

func TestThemeIDsCannotLeaveThemesDir(t *testing.T) {
	t.Setenv("GIT_VISUAL_REBASE_CONFIG_DIR", t.TempDir())
	if _, err := config.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfgPath, err := config.Path()
	if err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatal(err)
	}

	if err := RemoveLocalTheme("../config"); err == nil {
		t.Fatalf("expected traversal id to be rejected on remove")
	}
	if _, err := LoadInstalled("../config"); err == nil {
		t.Fatalf("expected traversal id to be rejected on load")
	}
	src := filepath.Join(t.TempDir(), "evil.json")
	if err := os.WriteFile(src, []byte(`{"id":"../config","name":"Evil"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InstallFromFile(src); err == nil {
		t.Fatalf("expected traversal id to be rejected on install")
	}

	after, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("config must survive: %v", err)
	}
	if string(after) != string(before) {
		t.Fatalf("config was modified")
	}
}

func TestLoadInstalledRejectsMismatchedID(t *testing.T) {
	t.Setenv("GIT_VISUAL_REBASE_CONFIG_DIR", t.TempDir())
	dir, err := config.ThemesDir()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "one.json"), []byte(`{"id":"two"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInstalled("one"); err == nil {
		t.Fatalf("expected id mismatch error")
	}
	if _, err := LoadInstalled("absent"); err == nil || !strings.Contains(err.Error(), "not installed") {
		t.Fatalf("expected not-installed error, got %v", err)
	}
}
