package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"git-visual-rebase/internal/app"
)

// Check verifies that git is reachable and returns its version line.
func Check(ctx context.Context, runner app.CommandRunner) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", fmt.Errorf("missing dependency %q in PATH", "git")
	}
	out, err := runner.Run(ctx, "git", "--version")
	if err != nil {
		return "", fmt.Errorf("git --version failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
