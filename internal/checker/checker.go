// Package checker orchestrates a coding-style run: acquire the checker
// image, run it against a project, and render the report.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"devkit/internal/image"
	"devkit/internal/report"
	"devkit/internal/tui"
)

// Container-side mount points and the fixed report filename the checker
// image writes.
const (
	deliveryMount  = "/mnt/delivery"
	reportsMount   = "/mnt/reports"
	ReportFileName = "coding-style-reports.log"
)

// Service wires the image policy, the container runtime, and the report
// pipeline together. One Service handles one invocation at a time.
type Service struct {
	Runtime image.Client
	Policy  *image.Policy
	UI      tui.UICallback

	Out     io.Writer // rendered report destination
	Colored bool

	// TerminalColumns is overridable in tests; nil probes the real terminal.
	TerminalColumns func() int
}

func (s *Service) terminalColumns() int {
	if s.TerminalColumns != nil {
		return s.TerminalColumns()
	}
	return report.TerminalColumns()
}

// Run checks projectDir and renders the report. Returns the severity
// summary; a non-empty summary means the caller should exit non-zero.
func (s *Service) Run(ctx context.Context, projectDir string) (report.Summary, error) {
	decision, err := s.Policy.Acquire(ctx)
	if err != nil {
		return report.Summary{}, err
	}

	reportDir := filepath.Join(os.TempDir(), "devkit-style-"+uuid.NewString())
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return report.Summary{}, fmt.Errorf("failed to create report directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(reportDir) }()

	absProject, err := filepath.Abs(projectDir)
	if err != nil {
		return report.Summary{}, err
	}

	out, err := s.Runtime.RunContainer(ctx, image.RunOptions{
		Image: decision.Image,
		Mounts: []image.Mount{
			{Host: absProject, Container: deliveryMount},
			{Host: reportDir, Container: reportsMount},
		},
		Args: []string{deliveryMount, reportsMount},
	})
	if strings.Contains(out, "Segmentation fault") {
		s.UI.ShowWarning("Checker Crashed",
			"The style checker segfaulted; the report may be incomplete.")
	}
	if err != nil {
		return report.Summary{}, fmt.Errorf("style checker failed: %w", err)
	}

	records, err := s.loadRecords(filepath.Join(reportDir, ReportFileName), absProject)
	if err != nil {
		return report.Summary{}, err
	}

	return s.render(records), nil
}

// loadRecords parses the checker log, then filters and resolves records.
func (s *Service) loadRecords(logPath, projectDir string) ([]report.Record, error) {
	f, err := os.Open(logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoReport
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := report.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	records = report.LoadIgnoreFilter(projectDir).Filter(records)
	return report.ResolveAll(records), nil
}

// render runs both layout passes and prints the summary trailer.
func (s *Service) render(records []report.Record) report.Summary {
	if len(records) == 0 {
		s.UI.ShowSuccess("No coding style issues found")
		return report.Summary{}
	}

	metrics := report.ComputeMetrics(records, s.terminalColumns())
	summary := report.NewRenderer(s.Out, metrics, s.Colored).Render(records)

	s.UI.ShowError(
		fmt.Sprintf("%d coding style issue(s) found", summary.Total),
		fmt.Sprintf("major: %d, minor: %d, info: %d", summary.Major, summary.Minor, summary.Info))
	return summary
}
