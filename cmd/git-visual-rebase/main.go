package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"git-visual-rebase/internal/app"
	configpkg "git-visual-rebase/internal/config"
	"git-visual-rebase/internal/logging"
	"git-visual-rebase/internal/rebase"
)

// exitStatus carries a child exit status through cobra without a message.
type exitStatus struct {
	code int
}

func (e *exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return exitCode(cmd.ExecuteContext(ctx), errOut)
}

func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return 0
	}
	var status *exitStatus
	if errors.As(err, &status) {
		return status.code
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	var optErr *rebase.IncompatibleOptionError
	if errors.As(err, &optErr) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-visual-rebase [git rebase options]",
		Short: "Interactive rebase with a full-screen todo editor",
		Example: strings.TrimSpace(`
  # Reorder, squash or drop the last five commits
  git-visual-rebase HEAD~5

  # Rebase onto main, running the tests after every commit
  git-visual-rebase -x "make test" main
`),
		// Everything after the program name goes to git rebase untouched.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := app.Executable()
			if err != nil {
				return err
			}
			logger, closer := sessionLogger(loadConfig(cmd.ErrOrStderr()), cmd.ErrOrStderr())
			defer closer.Close()
			w := rebase.Wrapper{
				Runner: app.ExecRunner{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
				Logger: logger,
			}
			status, err := w.Run(cmd.Context(), self, args)
			if err != nil {
				return err
			}
			if status != 0 {
				return &exitStatus{code: status}
			}
			return nil
		},
	}
	cmd.AddCommand(
		newEditCmd(),
		newDoctorCmd(),
		newVersionCmd(),
		newThemeCmd(),
	)
	return cmd
}

// loadConfig never fails: a broken config falls back to defaults.
func loadConfig(w io.Writer) configpkg.Config {
	cfg, err := configpkg.Load()
	if err != nil {
		fmt.Fprintf(w, "warning: loading config failed, using defaults: %v\n", err)
		cfg = configpkg.Default()
		configpkg.ApplyEnv(&cfg)
	}
	return cfg
}

func sessionLogger(cfg configpkg.Config, w io.Writer) (*slog.Logger, io.Closer) {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(w, "warning: opening log failed, logging disabled: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}
