// Package style holds the lipgloss styles for the few places textops
// writes to a terminal rather than a pipe.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}
)

// Styles for the operation listing
var (
	OpNameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	OpGroupStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	OpSummaryStyle = lipgloss.NewStyle()
)

// Terminal reports whether styled output should be used: stdout is a
// terminal and color has not been disabled via NO_COLOR.
func Terminal() bool {
	if termenv.EnvNoColor() {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
