package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colorizeHelpLine styles "KEY: description" lines of the instruction panel.
func colorizeHelpLine(line string, theme UITheme) string {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HelpText)).Render(line)
	}
	label := line[:idx+1]
	value := strings.TrimSpace(line[idx+1:])
	labelStyled := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HelpKey)).Bold(true).Render(label)
	valueStyled := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HelpText)).Render(value)
	if value == "" {
		return labelStyled
	}
	return labelStyled + " " + valueStyled
}
