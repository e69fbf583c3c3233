package report

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func renderToLines(t *testing.T, records []Record, columns int, colored bool) ([]string, Summary, Metrics) {
	t.Helper()
	m := ComputeMetrics(records, columns)
	var sb strings.Builder
	summary := NewRenderer(&sb, m, colored).Render(records)
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return nil, summary, m
	}
	return strings.Split(out, "\n"), summary, m
}

func TestRender_GroupsInFirstSeenOrder(t *testing.T) {
	records := ResolveAll([]Record{
		{Path: "src/a.c", Line: 1, Severity: SeverityMajor, RawCode: "MAJOR-C-F4", Message: "MAJOR-C-F4: too long"},
		{Path: "src/a.c", Line: 9, Severity: SeverityMinor, RawCode: "MINOR-C-L2", Message: "MINOR-C-L2: indent"},
		{Path: "src/b.c", Line: 3, Severity: SeverityInfo, RawCode: "INFO-C-G7", Message: "INFO-C-G7: space"},
	})

	lines, summary, _ := renderToLines(t, records, 200, false)

	// top, row, row, bottom, top, row, bottom
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], "a.c") {
		t.Errorf("first border %q does not name a.c", lines[0])
	}
	if !strings.HasPrefix(lines[3], "╰") {
		t.Errorf("a.c group not closed before b.c opens: %q", lines[3])
	}
	if !strings.Contains(lines[4], "b.c") {
		t.Errorf("second border %q does not name b.c", lines[4])
	}
	if summary.Total != 3 || summary.Major != 1 || summary.Minor != 1 || summary.Info != 1 {
		t.Errorf("summary = %+v, want 1/1/1 of 3", summary)
	}
}

func TestRender_RecordsKeepInputOrderWithinGroup(t *testing.T) {
	records := ResolveAll([]Record{
		{Path: "src/a.c", Line: 30, RawCode: "C-F4", Message: "C-F4: x"},
		{Path: "src/a.c", Line: 2, RawCode: "C-G7", Message: "C-G7: x"},
	})

	lines, _, _ := renderToLines(t, records, 200, false)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[1], "src/a.c:30") || !strings.Contains(lines[2], "src/a.c:2") {
		t.Errorf("rows reordered:\n%s", strings.Join(lines, "\n"))
	}
}

func TestRender_EveryLineFitsBoxWidth(t *testing.T) {
	records := ResolveAll([]Record{
		{Path: "src/a.c", Line: 1, Severity: SeverityMajor, RawCode: "MAJOR-C-F4", Message: "MAJOR-C-F4: too long"},
		{Path: "src/deeply/nested/directory/structure/file.c", Line: 4242, Severity: SeverityMinor, RawCode: "MINOR-C-L3", Message: "MINOR-C-L3: space"},
	})

	for _, colored := range []bool{false, true} {
		lines, _, m := renderToLines(t, records, 60, colored)
		for i, line := range lines {
			if w := lipgloss.Width(line); w != m.BoxWidth {
				t.Errorf("colored=%v line %d visible width = %d, want %d: %q", colored, i, w, m.BoxWidth, line)
			}
		}
	}
}

func TestRender_OverflowDropsDescriptionFirst(t *testing.T) {
	long := Record{
		Path: "src/" + strings.Repeat("n", 40) + ".c", Line: 1,
		Severity: SeverityMajor, RawCode: "MAJOR-C-F4", Message: "MAJOR-C-F4: too long",
	}
	records := ResolveAll([]Record{long})

	// Terminal of 60 columns caps the box at 55; the path column plus the
	// description cannot fit, so the bracket segment must be gone.
	lines, _, m := renderToLines(t, records, 60, false)
	if m.BoxWidth != 55 {
		t.Fatalf("BoxWidth = %d, want 55", m.BoxWidth)
	}
	for _, line := range lines {
		if strings.Contains(line, "[") {
			t.Errorf("description survived overflow: %q", line)
		}
		if w := lipgloss.Width(line); w != m.BoxWidth {
			t.Errorf("line width = %d, want %d: %q", w, m.BoxWidth, line)
		}
	}
}

func TestRender_OverflowTruncatesCodeWithEllipsis(t *testing.T) {
	rec := Record{
		Path: "src/" + strings.Repeat("n", 45) + ".c", Line: 1,
		Severity: SeverityOther, RawCode: "C-VERYLONGCODE", Message: "C-VERYLONGCODE: x",
	}
	records := ResolveAll([]Record{rec})

	lines, _, m := renderToLines(t, records, 60, false)
	foundEllipsis := false
	for _, line := range lines {
		if w := lipgloss.Width(line); w != m.BoxWidth {
			t.Errorf("line width = %d, want %d: %q", w, m.BoxWidth, line)
		}
		if strings.Contains(line, ellipsis) {
			foundEllipsis = true
		}
	}
	if !foundEllipsis {
		t.Error("expected a truncated code ending in an ellipsis")
	}
}

func TestRender_NarrowTerminalFloorsBoxWidth(t *testing.T) {
	records := ResolveAll([]Record{
		{Path: "src/main.c", Line: 42, Severity: SeverityMajor, RawCode: "MAJOR-C-F4", Message: "MAJOR-C-F4: too long"},
		{Path: "src/main.c", Line: 50, Severity: SeverityMinor, RawCode: "MINOR-C-L2", Message: "MINOR-C-L2: indent"},
	})

	// A 9-column terminal would drive the margin clamp to 4; the floor
	// must win and every line must still come out at exactly BoxWidth.
	lines, summary, m := renderToLines(t, records, 9, false)
	if m.BoxWidth != narrowestBoxWidth {
		t.Fatalf("BoxWidth = %d, want %d", m.BoxWidth, narrowestBoxWidth)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != m.BoxWidth {
			t.Errorf("line %d visible width = %d, want %d: %q", i, w, m.BoxWidth, line)
		}
	}
	if summary.Total != 2 {
		t.Errorf("summary.Total = %d, want 2", summary.Total)
	}
}

func TestRender_EmptyInputProducesNoOutput(t *testing.T) {
	lines, summary, _ := renderToLines(t, nil, 80, false)
	if lines != nil {
		t.Errorf("got output for zero records:\n%s", strings.Join(lines, "\n"))
	}
	if summary.Total != 0 {
		t.Errorf("summary.Total = %d, want 0", summary.Total)
	}
}
