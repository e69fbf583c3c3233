package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	progressStyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	progressStyleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// spinnerFrames are cycled while an indeterminate operation runs.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressTracker reports progress of a long external operation (image pull).
// Implementations: bubbletea spinner (TTY), plain text (piped), no-op (quiet).
type ProgressTracker interface {
	Update(message string)
	Complete(message string)
	Fail(err error)
}

// NewProgressTracker selects a tracker implementation from the output mode
// and terminal capability.
func NewProgressTracker(mode OutputMode, label string) ProgressTracker {
	if mode != OutputNormal {
		return &NoOpProgressTracker{}
	}
	if !ColorEnabled() {
		return NewTextProgressTracker(label)
	}
	return NewSpinnerTracker(label)
}

// ========================================
// Bubbletea Spinner Model
// ========================================

// spinnerModel is a bubbletea model for an indeterminate operation.
type spinnerModel struct {
	label   string
	message string
	frame   int
	done    bool
	failed  bool
	err     error
}

type spinnerTickMsg struct{}

type spinnerUpdateMsg struct {
	message string
}

type spinnerCompleteMsg struct {
	message string
}

type spinnerFailMsg struct {
	err error
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m spinnerModel) Init() tea.Cmd {
	return spinnerTick()
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()
	case spinnerUpdateMsg:
		m.message = msg.message
	case spinnerCompleteMsg:
		m.done = true
		m.message = msg.message
		return m, tea.Quit
	case spinnerFailMsg:
		m.failed = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return progressStyleSuccess.Render(fmt.Sprintf("✓ %s", m.message)) + "\n"
	}

	if m.failed {
		return progressStyleErr.Render(fmt.Sprintf("✗ %s (failed: %v)", m.label, m.err)) + "\n"
	}

	line := fmt.Sprintf("%s %s", spinnerFrames[m.frame], progressStyleTitle.Render(m.label))
	if m.message != "" {
		line += fmt.Sprintf(" - %s", m.message)
	}
	return line + "\n"
}

// ========================================
// SpinnerTracker Implementation
// ========================================

// SpinnerTracker manages an indeterminate spinner using bubbletea
type SpinnerTracker struct {
	program *tea.Program
}

// NewSpinnerTracker creates and starts a spinner for the given label.
func NewSpinnerTracker(label string) *SpinnerTracker {
	p := tea.NewProgram(spinnerModel{label: label})

	tracker := &SpinnerTracker{program: p}

	// Start program in background
	go func() {
		_, _ = p.Run()
	}()

	return tracker
}

// Update replaces the detail message next to the spinner.
func (t *SpinnerTracker) Update(message string) {
	t.program.Send(spinnerUpdateMsg{message: message})
}

// Complete marks the operation as complete.
func (t *SpinnerTracker) Complete(message string) {
	t.program.Send(spinnerCompleteMsg{message: message})
	t.program.Wait()
}

// Fail marks the operation as failed with an error.
func (t *SpinnerTracker) Fail(err error) {
	t.program.Send(spinnerFailMsg{err: err})
	t.program.Wait()
}

// ========================================
// Text Progress (Non-TTY)
// ========================================

// TextProgressTracker provides simple text-based progress
type TextProgressTracker struct {
	label string
}

// NewTextProgressTracker creates a new text progress tracker
func NewTextProgressTracker(label string) *TextProgressTracker {
	fmt.Printf("Starting: %s\n", label)
	return &TextProgressTracker{label: label}
}

// Update prints the detail message.
func (t *TextProgressTracker) Update(message string) {
	fmt.Printf("  %s\n", message)
}

// Complete marks the operation as complete.
func (t *TextProgressTracker) Complete(message string) {
	fmt.Printf("✓ %s\n", message)
}

// Fail marks the operation as failed with an error.
func (t *TextProgressTracker) Fail(err error) {
	fmt.Printf("✗ %s: Failed - %v\n", t.label, err)
}

// ========================================
// No-Op Progress (Quiet/JSON)
// ========================================

// NoOpProgressTracker does nothing (for quiet/JSON/testing modes)
type NoOpProgressTracker struct{}

func (t *NoOpProgressTracker) Update(message string)   {}
func (t *NoOpProgressTracker) Complete(message string) {}
func (t *NoOpProgressTracker) Fail(err error)          {}
