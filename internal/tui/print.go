// Package tui provides terminal output helpers and user-interaction
// callbacks for devkit.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// colorEnabled is computed once at startup. Piped output gets plain text.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("TERM") != "dumb"

// ColorEnabled reports whether stdout is a color-capable terminal.
func ColorEnabled() bool {
	return colorEnabled
}

// SetColorEnabled overrides terminal detection (used by tests and --quiet).
func SetColorEnabled(on bool) {
	colorEnabled = on
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// PrintError prints a styled error title and message.
func PrintError(title, msg string) {
	fmt.Println(render(styleErr, "✖ "+title))
	fmt.Println(msg)
}

// PrintSuccess prints a styled success message.
func PrintSuccess(msg string) { fmt.Println(render(styleSuccess, "✔ "+msg)) }

// PrintInfo prints a dimmed informational message.
func PrintInfo(msg string) { fmt.Println(render(styleDim, msg)) }

// PrintWarning prints a styled warning title and message.
func PrintWarning(title, msg string) {
	fmt.Println(render(styleWarn, "! "+title))
	fmt.Println(msg)
}

// StyleTitle returns a styled title string for terminal output.
func StyleTitle(text string) string { return render(styleTitle, text) }
