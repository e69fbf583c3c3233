package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// ErrPromptAborted indicates the user interrupted an interactive prompt.
// The run must abort rather than continue with an undecided answer.
var ErrPromptAborted = errors.New("prompt aborted")

// UICallback is the user-interaction surface consumed by the services.
// Interactive and non-interactive implementations are selected in main
// based on the common CLI flags.
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	ShowInfo(message string)
	// AskConfirmation prompts for yes/no. Returns ErrPromptAborted when the
	// prompt is interrupted (Ctrl-C).
	AskConfirmation(title, message string) (bool, error)

	GetOutputMode() OutputMode
	IsAutoApprove() bool
	FormatJSON(output JSONOutput) error
}

// Callback implements UICallback for interactive terminal use with styled
// output.
type Callback struct{}

// NewCallback creates a new interactive terminal UI callback.
func NewCallback() *Callback {
	return &Callback{}
}

// ShowError displays an error message with styled output.
func (t *Callback) ShowError(title, message string) {
	PrintError(title, message)
}

// ShowSuccess displays a success message with styled output.
func (t *Callback) ShowSuccess(message string) {
	PrintSuccess(message)
}

// ShowWarning displays a warning message with styled output.
func (t *Callback) ShowWarning(title, message string) {
	PrintWarning(title, message)
}

// ShowInfo displays a dimmed informational message.
func (t *Callback) ShowInfo(message string) {
	PrintInfo(message)
}

// AskConfirmation prompts the user for yes/no confirmation.
func (t *Callback) AskConfirmation(title, message string) (bool, error) {
	var confirm bool
	err := huh.NewConfirm().
		Title(title).
		Description(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()
	if err != nil {
		return false, ErrPromptAborted
	}
	return confirm, nil
}

// GetOutputMode returns the output mode (normal for interactive use)
func (t *Callback) GetOutputMode() OutputMode {
	return OutputNormal
}

// IsAutoApprove returns whether auto-approve is enabled (always false for
// interactive mode)
func (t *Callback) IsAutoApprove() bool {
	return false
}

// FormatJSON is not used in interactive mode
func (t *Callback) FormatJSON(_ JSONOutput) error {
	return nil
}

// NonInteractiveCallback handles non-interactive mode output
type NonInteractiveCallback struct {
	flags NonInteractiveFlags
}

// NewNonInteractiveCallback creates a new non-interactive callback
func NewNonInteractiveCallback(flags NonInteractiveFlags) *NonInteractiveCallback {
	return &NonInteractiveCallback{flags: flags}
}

// ShowError displays an error message
func (n *NonInteractiveCallback) ShowError(title, message string) {
	if n.flags.Mode == OutputJSON {
		_ = n.FormatJSON(JSONOutput{
			Status: "error",
			Error:  &JSONError{Title: title, Message: message},
		})
	} else if n.flags.Mode != OutputQuiet {
		fmt.Fprintf(os.Stderr, "Error: %s - %s\n", title, message)
	}
}

// ShowSuccess displays a success message
func (n *NonInteractiveCallback) ShowSuccess(message string) {
	if n.flags.Mode == OutputJSON {
		_ = n.FormatJSON(JSONOutput{Status: "success", Message: message})
	} else if n.flags.Mode != OutputQuiet {
		fmt.Println(message)
	}
}

// ShowWarning displays a warning message
func (n *NonInteractiveCallback) ShowWarning(title, message string) {
	if n.flags.Mode == OutputJSON {
		_ = n.FormatJSON(JSONOutput{
			Status:  "warning",
			Message: fmt.Sprintf("%s: %s", title, message),
		})
	} else if n.flags.Mode != OutputQuiet {
		fmt.Fprintf(os.Stderr, "Warning: %s - %s\n", title, message)
	}
}

// ShowInfo displays an informational message
func (n *NonInteractiveCallback) ShowInfo(message string) {
	if n.flags.Mode == OutputNormal {
		fmt.Println(message)
	}
}

// AskConfirmation handles confirmation prompts
func (n *NonInteractiveCallback) AskConfirmation(title, message string) (bool, error) {
	if n.flags.Yes {
		return true, nil // Auto-approve
	}
	// In non-interactive mode without --yes, fail for safety
	n.ShowError("Interactive Prompt Required",
		fmt.Sprintf("%s: %s\nUse --yes to auto-approve", title, message))
	return false, nil
}

// GetOutputMode returns the current output mode
func (n *NonInteractiveCallback) GetOutputMode() OutputMode {
	return n.flags.Mode
}

// IsAutoApprove returns whether auto-approve is enabled
func (n *NonInteractiveCallback) IsAutoApprove() bool {
	return n.flags.Yes
}

// FormatJSON formats and outputs JSON to stdout
func (n *NonInteractiveCallback) FormatJSON(output JSONOutput) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// SilentCallback is a no-op implementation (for testing/CI)
type SilentCallback struct{}

func (s *SilentCallback) ShowError(title, message string)   {}
func (s *SilentCallback) ShowSuccess(message string)        {}
func (s *SilentCallback) ShowWarning(title, message string) {}
func (s *SilentCallback) ShowInfo(message string)           {}
func (s *SilentCallback) AskConfirmation(title, message string) (bool, error) {
	return false, nil
}
func (s *SilentCallback) GetOutputMode() OutputMode          { return OutputQuiet }
func (s *SilentCallback) IsAutoApprove() bool                { return false }
func (s *SilentCallback) FormatJSON(output JSONOutput) error { return nil }
