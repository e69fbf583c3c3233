package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleMajor  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleMinor  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	styleInfo   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF"))
	styleDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const ellipsis = "…"

// Summary counts rendered records per severity.
type Summary struct {
	Major int
	Minor int
	Info  int
	Other int
	Total int
}

func (s *Summary) count(sev Severity) {
	switch sev {
	case SeverityMajor:
		s.Major++
	case SeverityMinor:
		s.Minor++
	case SeverityInfo:
		s.Info++
	default:
		s.Other++
	}
	s.Total++
}

// Renderer is layout pass 2: it walks resolved records in order and emits
// bordered file groups. Group state is an explicit three-state machine:
// no file open, a file open, closed at stream end.
type Renderer struct {
	w       io.Writer
	metrics Metrics
	colored bool

	openPath string
	open     bool
}

// NewRenderer creates a Renderer writing to w with the pass-1 metrics.
// When colored is false every style collapses to plain text.
func NewRenderer(w io.Writer, metrics Metrics, colored bool) *Renderer {
	return &Renderer{w: w, metrics: metrics, colored: colored}
}

// Render emits the full report and returns the severity summary.
// Records must already be filtered and resolved; groups appear in
// first-seen-file order and records keep input order within a group.
func (r *Renderer) Render(records []Record) Summary {
	var summary Summary

	for _, rec := range records {
		if !r.open || rec.Path != r.openPath {
			if r.open {
				r.closeGroup()
			}
			r.openGroup(rec.Path)
		}
		r.renderLine(rec)
		summary.count(rec.Severity)
	}
	if r.open {
		r.closeGroup()
	}
	return summary
}

// openGroup draws the top border with the base filename.
func (r *Renderer) openGroup(path string) {
	name := filepath.Base(path)

	// "╭─ " + name + " " + fill + "╮" must come to exactly BoxWidth.
	fill := r.metrics.BoxWidth - lipgloss.Width(name) - 5
	if fill < 0 {
		name = truncate(name, lipgloss.Width(name)+fill)
		fill = 0
	}
	line := "╭─ " + name + " " + strings.Repeat("─", fill) + "╮"
	fmt.Fprintln(r.w, r.border(line))

	r.open = true
	r.openPath = path
}

// closeGroup draws the bottom border of the open group.
func (r *Renderer) closeGroup() {
	fmt.Fprintln(r.w, r.border("╰"+strings.Repeat("─", r.metrics.BoxWidth-2)+"╯"))
	r.open = false
	r.openPath = ""
}

// renderLine emits one record row, truncating to the content budget.
// All width decisions are made on unstyled text; color is applied after.
func (r *Renderer) renderLine(rec Record) {
	budget := r.metrics.BoxWidth - 3

	pathCell := pathLineCell(rec)
	padded := pad(pathCell, r.metrics.PathColumnWidth)

	code := rec.Code
	desc := ""
	if rec.Description != "" {
		desc = " [" + rec.Description + "]"
	}

	visible := lipgloss.Width(padded) + 2 + lipgloss.Width(code) + lipgloss.Width(desc)
	if visible > budget {
		// Overflow: the description goes first.
		desc = ""
		visible = lipgloss.Width(padded) + 2 + lipgloss.Width(code)
	}
	if visible > budget {
		// Still over: truncate the code itself.
		codeBudget := budget - lipgloss.Width(padded) - 2
		code = truncate(code, codeBudget)
		visible = lipgloss.Width(padded) + 2 + lipgloss.Width(code)
	}
	if visible > budget {
		// Pathological path column wider than the box; keep the invariant.
		padded = truncate(padded, budget-2-lipgloss.Width(code))
		visible = lipgloss.Width(padded) + 2 + lipgloss.Width(code)
	}

	content := padded + "  " + r.styleCode(code, rec.Severity)
	if desc != "" {
		content += r.styleDescription(desc)
	}
	if fill := budget - visible; fill > 0 {
		content += strings.Repeat(" ", fill)
	}

	fmt.Fprintln(r.w, r.border("│ ")+content+r.border("│"))
}

func (r *Renderer) styleCode(code string, sev Severity) string {
	if !r.colored {
		return code
	}
	switch sev {
	case SeverityMajor:
		return styleMajor.Render(code)
	case SeverityMinor:
		return styleMinor.Render(code)
	case SeverityInfo:
		return styleInfo.Render(code)
	default:
		return code
	}
}

func (r *Renderer) styleDescription(desc string) string {
	if !r.colored {
		return desc
	}
	return styleDesc.Render(desc)
}

func (r *Renderer) border(s string) string {
	if !r.colored {
		return s
	}
	return styleBorder.Render(s)
}

// pad right-pads s with spaces to the given visible width.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// truncate cuts s to the given visible width, ending in an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
