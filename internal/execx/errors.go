package execx

import (
	"errors"
	"strings"
)

// CmdError wraps an exec error with the command that was run and its stderr.
type CmdError struct {
	Bin    string   // binary name
	Args   []string // subcommand and arguments
	Stderr string   // captured stderr (or combined output)
	Err    error    // underlying exec error
}

func (e *CmdError) Error() string {
	s := strings.TrimSpace(e.Stderr)
	if s != "" {
		return s
	}
	return e.Err.Error()
}

func (e *CmdError) Unwrap() error {
	return e.Err
}

// StderrContains reports whether err is a CmdError whose captured output
// contains the given substring. Used to classify external tool failures
// (e.g. "unknown command", "no such host") without parsing exit codes.
func StderrContains(err error, substr string) bool {
	var cmdErr *CmdError
	if errors.As(err, &cmdErr) {
		return strings.Contains(cmdErr.Stderr, substr)
	}
	return false
}
