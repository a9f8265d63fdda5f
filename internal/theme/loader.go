package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git-visual-rebase/internal/config"
)

const themeExt = ".json"

// themePath maps an installed theme id to its file. Every access to the
// themes directory goes through it.
func themePath(id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}
	dir, err := config.ThemesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, id+themeExt), nil
}

// LoadInstalled reads and validates an installed theme.
func LoadInstalled(id string) (ThemeFile, error) {
	path, err := themePath(id)
	if err != nil {
		return ThemeFile{}, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ThemeFile{}, fmt.Errorf("theme not installed: %s", id)
	}
	if err != nil {
		return ThemeFile{}, err
	}
	tf, err := ParseThemeFile(b)
	if err != nil {
		return ThemeFile{}, fmt.Errorf("invalid installed theme %s: %w", id, err)
	}
	if tf.ID != id {
		return ThemeFile{}, fmt.Errorf("theme file %s declares id %q", filepath.Base(path), tf.ID)
	}
	return tf, nil
}

// LoadActivePaletteHex returns the palette of the configured theme. On error
// the default palette is returned alongside it so callers can fall back.
func LoadActivePaletteHex(cfg config.Config) (PaletteHex, string, error) {
	id := strings.TrimSpace(cfg.Theme.Active)
	if id == "" || id == DefaultID {
		return DefaultPaletteHex(), DefaultID, nil
	}
	tf, err := LoadInstalled(id)
	if err != nil {
		return DefaultPaletteHex(), DefaultID, err
	}
	return tf.Colors, tf.ID, nil
}

func SaveThemeFile(tf ThemeFile) error {
	if tf.ID == DefaultID {
		return fmt.Errorf("theme id %q is reserved", tf.ID)
	}
	if err := tf.Colors.Validate(); err != nil {
		return err
	}
	path, err := themePath(tf.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(out, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// InstallFromFile validates a theme file from disk and copies it into the
// themes directory under its declared id.
func InstallFromFile(path string) (ThemeFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ThemeFile{}, err
	}
	tf, err := ParseThemeFile(b)
	if err != nil {
		return ThemeFile{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := SaveThemeFile(tf); err != nil {
		return ThemeFile{}, err
	}
	return tf, nil
}

// ListLocalThemeIDs lists installed theme ids, skipping files whose name
// is not a valid id.
func ListLocalThemeIDs() ([]string, error) {
	dir, err := config.ThemesDir()
	if err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(ents))
	for _, ent := range ents {
		id, ok := strings.CutSuffix(ent.Name(), themeExt)
		if ent.IsDir() || !ok || ValidateID(id) != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func RemoveLocalTheme(id string) error {
	if id == DefaultID {
		return fmt.Errorf("cannot uninstall built-in theme: %s", DefaultID)
	}
	path, err := themePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("theme not installed: %s", id)
		}
		return err
	}
	return nil
}
