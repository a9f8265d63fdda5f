package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"git-visual-rebase/internal/app"
	configpkg "git-visual-rebase/internal/config"
	"git-visual-rebase/internal/doctor"
	themepkg "git-visual-rebase/internal/theme"
	"git-visual-rebase/internal/todo"
	"git-visual-rebase/internal/tui"
	"git-visual-rebase/internal/version"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <todo-file>",
		Short: "Edit a rebase todo file (used as git's sequence.editor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args[0], cmd.ErrOrStderr())
		},
	}
}

// runEdit leaves the file untouched when it cannot be parsed. Otherwise it
// always ends with either the edited list or the abort sentinel on disk.
func runEdit(path string, errOut io.Writer, progOpts ...tea.ProgramOption) error {
	cfg := loadConfig(errOut)
	logger, closer := sessionLogger(cfg, errOut)
	defer closer.Close()

	items, err := todo.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Info("todo loaded", "path", path, "items", len(items))
	if len(items) == 0 {
		logger.Info("nothing to edit, aborting")
		return todo.WriteAbort(path)
	}

	res, err := tui.EditTodo(items, tui.Options{
		Theme:          resolveUITheme(cfg, errOut),
		Logger:         logger,
		ProgramOptions: progOpts,
	})
	if err != nil {
		return err
	}
	if res.Outcome == tui.OutcomeSave {
		logger.Info("todo saved", "path", path, "items", len(res.Items))
		return todo.WriteFile(path, res.Items)
	}
	logger.Info("rebase cancelled", "path", path)
	return todo.WriteAbort(path)
}

func resolveUITheme(cfg configpkg.Config, w io.Writer) tui.UITheme {
	palette, _, err := themepkg.LoadActivePaletteHex(cfg)
	if err != nil {
		fmt.Fprintf(w, "warning: loading theme %q failed, using default: %v\n", cfg.Theme.Active, err)
		palette = themepkg.DefaultPaletteHex()
	}
	resolved := themepkg.ResolveForTerminal(palette, themepkg.DetectTrueColor())
	return tui.UIThemeFromResolved(resolved)
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gitVersion, err := doctor.Check(cmd.Context(), app.ExecRunner{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "doctor: ok (%s)\n", gitVersion)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Value)
		},
	}
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage color themes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List installed themes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, active, err := themeListLocal()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "local themes (active: %s):\n", active)
				fmt.Fprintln(out, themeListLine("default", active))
				for _, id := range ids {
					fmt.Fprintln(out, themeListLine(id, active))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "current",
			Short: "Print the active theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				label, err := themeCurrentLabel()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), label)
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply <theme-id|default>",
			Short: "Make an installed theme active",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg, err := themeApply(strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			},
		},
		&cobra.Command{
			Use:   "install <theme-file>",
			Short: "Install a theme from a JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tf, err := themepkg.InstallFromFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "installed theme: %s\n", tf.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "uninstall <theme-id>",
			Short: "Remove an installed theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg, err := themeUninstall(strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			},
		},
	)
	return cmd
}

func themeListLine(id, active string) string {
	if id == active {
		return "* " + id
	}
	return "- " + id
}

func themeCurrentLabel() (string, error) {
	cfg, err := configpkg.Load()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("active theme: %s", cfg.Theme.Active), nil
}

func themeListLocal() ([]string, string, error) {
	cfg, err := configpkg.Load()
	if err != nil {
		return nil, "", err
	}
	ids, err := themepkg.ListLocalThemeIDs()
	if err != nil {
		return nil, "", err
	}
	return ids, cfg.Theme.Active, nil
}

func themeApply(id string) (string, error) {
	if id == "" {
		return "", errors.New("theme id is required")
	}
	cfg, err := configpkg.Load()
	if err != nil {
		return "", err
	}
	if id != themepkg.DefaultID {
		if _, err := themepkg.LoadInstalled(id); err != nil {
			return "", err
		}
	}
	cfg.Theme.Active = id
	if err := configpkg.Save(cfg); err != nil {
		return "", err
	}
	return fmt.Sprintf("applied theme: %s", id), nil
}

func themeUninstall(id string) (string, error) {
	cfg, err := configpkg.Load()
	if err != nil {
		return "", err
	}
	if err := themepkg.RemoveLocalTheme(id); err != nil {
		return "", err
	}
	msg := fmt.Sprintf("uninstalled theme: %s", id)
	if cfg.Theme.Active == id {
		appliedMsg, err := themeApply(themepkg.DefaultID)
		if err != nil {
			return "", err
		}
		return msg + "; " + appliedMsg, nil
	}
	return msg, nil
}
