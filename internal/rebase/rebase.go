package rebase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git-visual-rebase/internal/app"
	"git-visual-rebase/internal/logging"
)

// incompatibleOptions either drive an in-progress rebase or conflict with
// an interactive one.
var incompatibleOptions = map[string]bool{
	"--continue":                      true,
	"--abort":                         true,
	"--quit":                          true,
	"--skip":                          true,
	"--edit-todo":                     true,
	"--ignore-whitespace":             true,
	"--whitespace":                    true,
	"--committer-date-is-author-date": true,
	"--ignore-date":                   true,
	"--signoff":                       true,
	"-i":                              true,
	"--interactive":                   true,
}

type IncompatibleOptionError struct {
	Option string
}

func (e *IncompatibleOptionError) Error() string {
	return fmt.Sprintf("rebase option %q cannot be used", e.Option)
}

// ValidateOptions rejects options that cannot be combined with the visual
// editor. "--whitespace=<action>" is reported as "--whitespace".
func ValidateOptions(opts []string) error {
	for _, opt := range opts {
		name := opt
		if strings.HasPrefix(opt, "--whitespace=") {
			name = "--whitespace"
		}
		if incompatibleOptions[name] {
			return &IncompatibleOptionError{Option: name}
		}
	}
	return nil
}

// shellQuote quotes s for the POSIX shell git uses to run editors.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:=+@%,", r)
}

// SequenceEditor is the sequence.editor value that runs self as the todo
// editor.
func SequenceEditor(self string) string {
	return shellQuote(self) + " edit"
}

// Args builds the git command line for an interactive rebase.
func Args(self string, opts []string) []string {
	args := []string{"-c", "sequence.editor=" + SequenceEditor(self), "rebase", "-i"}
	return append(args, opts...)
}

type Wrapper struct {
	Runner app.InteractiveRunner
	Logger *slog.Logger
}

// Run validates opts and runs git with the terminal attached. The returned
// status is git's exit status.
func (w Wrapper) Run(ctx context.Context, self string, opts []string) (int, error) {
	log := w.Logger
	if log == nil {
		log = logging.Discard()
	}
	if err := ValidateOptions(opts); err != nil {
		return 2, err
	}
	args := Args(self, opts)
	log.Info("starting rebase", "args", args)
	status, err := w.Runner.Attach(ctx, "git", args...)
	if err != nil {
		return status, fmt.Errorf("run git: %w", err)
	}
	log.Info("rebase finished", "status", status)
	return status, nil
}
