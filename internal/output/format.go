package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var statusStyles = map[string]lipgloss.Style{
	"untracked": lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251")),
	"modified":  lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800")),
	"added":     lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")),
	"deleted":   lipgloss.NewStyle().Foreground(lipgloss.Color("#f89048")),
	"renamed":   lipgloss.NewStyle().Foreground(lipgloss.Color("#5084f3")),
	"copied":    lipgloss.NewStyle().Foreground(lipgloss.Color("#9f83e4")),
	"unmerged":  lipgloss.NewStyle().Foreground(lipgloss.Color("#eb82bc")),
}

var hashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1"))

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsInputTerminal reports whether stdin is attached to a terminal. Prompts
// gate on this rather than IsTerminal, so piped input is never prompted for.
func IsInputTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// StatusTag renders a change status tag, colored when stdout is a terminal.
func StatusTag(tag string) string {
	if !IsTerminal() {
		return tag
	}
	style, ok := statusStyles[tag]
	if !ok {
		return tag
	}
	return style.Render(tag)
}

// ShortHash renders an abbreviated commit hash.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		hash = hash[:8]
	}
	if !IsTerminal() {
		return hash
	}
	return hashStyle.Render(hash)
}
