package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette, kept close to the log level colors
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	nodeStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// styled applies a style unless color output is disabled
func styled(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// styleTree colorizes an indented tree dump line by line: node names in
// the accent color, attached values (after the colon) untouched.
func styleTree(tree string) string {
	if noColor {
		return tree
	}

	var b strings.Builder
	for _, line := range strings.Split(tree, "\n") {
		if line == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		name, rest, found := strings.Cut(trimmed, ":")
		b.WriteString(indent)
		b.WriteString(nodeStyle.Render(name))
		if found {
			b.WriteString(":")
			b.WriteString(rest)
		}
		b.WriteString("\n")
	}
	return b.String()
}
