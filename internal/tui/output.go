package tui

// OutputMode selects how devkit talks to the user: styled terminal text,
// minimal text, or machine-readable JSON.
type OutputMode int

const (
	OutputNormal OutputMode = iota // styled, interactive-friendly
	OutputQuiet                    // essentials only
	OutputJSON                     // structured output for scripts
)

// NonInteractiveFlags carries the common CLI flags every subcommand
// accepts. Yes suppresses confirmation prompts entirely.
type NonInteractiveFlags struct {
	Yes  bool
	Mode OutputMode
}

// JSONOutput is the envelope emitted under --json.
type JSONOutput struct {
	Status  string                 `json:"status"` // "success", "error", "warning"
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"` // command-specific payload
	Error   *JSONError             `json:"error,omitempty"`
}

// JSONError carries failure detail inside a JSONOutput.
type JSONError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
