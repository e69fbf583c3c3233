package image

import (
	"context"

	"devkit/internal/tui"
)

// ============================================================================
// MockClient
// ============================================================================

// MockClient implements Client for testing
type MockClient struct {
	ImageExistsFunc  func(tag string) (bool, error)
	PullFunc         func(ref string) error
	TagFunc          func(src, dst string) error
	RunContainerFunc func(opts RunOptions) (string, error)

	// Call tracking
	ImageExistsCalls  []string
	PullCalls         []string
	TagCalls          [][]string
	RunContainerCalls []RunOptions
}

func (m *MockClient) ImageExists(_ context.Context, tag string) (bool, error) {
	m.ImageExistsCalls = append(m.ImageExistsCalls, tag)
	if m.ImageExistsFunc != nil {
		return m.ImageExistsFunc(tag)
	}
	return false, nil
}

func (m *MockClient) Pull(_ context.Context, ref string) error {
	m.PullCalls = append(m.PullCalls, ref)
	if m.PullFunc != nil {
		return m.PullFunc(ref)
	}
	return nil
}

func (m *MockClient) Tag(_ context.Context, src, dst string) error {
	m.TagCalls = append(m.TagCalls, []string{src, dst})
	if m.TagFunc != nil {
		return m.TagFunc(src, dst)
	}
	return nil
}

func (m *MockClient) RunContainer(_ context.Context, opts RunOptions) (string, error) {
	m.RunContainerCalls = append(m.RunContainerCalls, opts)
	if m.RunContainerFunc != nil {
		return m.RunContainerFunc(opts)
	}
	return "", nil
}

// ============================================================================
// ScriptedUI
// ============================================================================

// ScriptedUI implements tui.UICallback with pre-programmed confirmation
// answers and message capture.
type ScriptedUI struct {
	Answers    []bool  // consumed in order by AskConfirmation
	PromptErrs []error // parallel to Answers; nil means no error

	Confirmations []string
	Warnings      []string
	Errors        []string
}

func (s *ScriptedUI) ShowError(title, message string) {
	s.Errors = append(s.Errors, title)
}

func (s *ScriptedUI) ShowSuccess(message string) {}

func (s *ScriptedUI) ShowWarning(title, message string) {
	s.Warnings = append(s.Warnings, title)
}

func (s *ScriptedUI) ShowInfo(message string) {}

func (s *ScriptedUI) AskConfirmation(title, message string) (bool, error) {
	s.Confirmations = append(s.Confirmations, title)
	idx := len(s.Confirmations) - 1
	var answer bool
	var err error
	if idx < len(s.Answers) {
		answer = s.Answers[idx]
	}
	if idx < len(s.PromptErrs) {
		err = s.PromptErrs[idx]
	}
	return answer, err
}

func (s *ScriptedUI) GetOutputMode() tui.OutputMode          { return tui.OutputQuiet }
func (s *ScriptedUI) IsAutoApprove() bool                    { return false }
func (s *ScriptedUI) FormatJSON(output tui.JSONOutput) error { return nil }
