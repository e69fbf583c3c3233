package report

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	// MinBoxWidth is the narrowest usable report box.
	MinBoxWidth = 80
	// TerminalMargin keeps the box clear of the terminal's right edge.
	TerminalMargin = 5
	// FallbackColumns is assumed when the terminal width cannot be probed.
	FallbackColumns = 80
	// narrowestBoxWidth is the hard floor on very narrow terminals; below
	// this the borders and padding would need negative widths.
	narrowestBoxWidth = 20
)

// Metrics holds the pass-1 layout measurements, computed once over all
// retained records and immutable during rendering.
type Metrics struct {
	PathColumnWidth int // widest "path:line" cell
	ContentWidth    int // widest one-line rendering, color codes excluded
	BoxWidth        int // final box width after clamping
}

// TerminalColumns returns the current terminal width, or FallbackColumns
// when stdout is not a terminal or the probe fails.
func TerminalColumns() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return FallbackColumns
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return FallbackColumns
	}
	return cols
}

// ComputeMetrics runs layout pass 1: measure every record, then clamp the
// box width between MinBoxWidth and the terminal width minus the margin,
// never dropping below the narrow-terminal floor.
// Widths are measured on the unstyled rendering; lipgloss.Width strips any
// escape sequences before counting.
func ComputeMetrics(records []Record, terminalColumns int) Metrics {
	var m Metrics
	for _, rec := range records {
		pathCell := lipgloss.Width(pathLineCell(rec))
		if pathCell > m.PathColumnWidth {
			m.PathColumnWidth = pathCell
		}

		content := pathCell + 2 + lipgloss.Width(rec.Code)
		if rec.Description != "" {
			content += lipgloss.Width(" [" + rec.Description + "]")
		}
		if content > m.ContentWidth {
			m.ContentWidth = content
		}
	}

	m.BoxWidth = m.ContentWidth
	if m.BoxWidth < MinBoxWidth {
		m.BoxWidth = MinBoxWidth
	}
	if limit := terminalColumns - TerminalMargin; m.BoxWidth > limit {
		m.BoxWidth = limit
	}
	if m.BoxWidth < narrowestBoxWidth {
		m.BoxWidth = narrowestBoxWidth
	}
	return m
}

// pathLineCell renders the left column for one record.
func pathLineCell(rec Record) string {
	return fmt.Sprintf("%s:%d", rec.Path, rec.Line)
}
