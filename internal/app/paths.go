package app

import (
	"os"
	"path/filepath"
)

const Name = "git-visual-rebase"

func ConfigDir() (string, error) {
	if dir := os.Getenv("GIT_VISUAL_REBASE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", Name), nil
}

// Executable returns the absolute path of the running binary, used when
// registering it as git's sequence editor.
func Executable() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return filepath.Abs(p)
}
