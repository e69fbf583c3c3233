// Package report implements the coding-style report pipeline: parsing the
// checker log, resolving error codes, filtering ignored files, and rendering
// the bordered terminal report.
package report

// Severity classifies a finding's importance.
type Severity int

// Severity levels, decoded from the leading token of a log message.
const (
	SeverityOther Severity = iota
	SeverityMajor
	SeverityMinor
	SeverityInfo
)

// ParseSeverity decodes a severity token. The match is case-sensitive;
// anything unrecognized is SeverityOther.
func ParseSeverity(token string) Severity {
	switch token {
	case "MAJOR":
		return SeverityMajor
	case "MINOR":
		return SeverityMinor
	case "INFO":
		return SeverityInfo
	default:
		return SeverityOther
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	case SeverityInfo:
		return "INFO"
	default:
		return "OTHER"
	}
}

// Record is one parsed finding from the checker log. Records are immutable
// after resolution and discarded once the report is rendered.
type Record struct {
	Path     string   // file path, leading "./" stripped
	Line     int      // 1-based line number
	Severity Severity // decoded from the leading message token
	RawCode  string   // code token as it appeared in the log
	Message  string   // full message portion after "path:line:"

	// Filled in by Resolve.
	Code        string // canonical code (C-<Letter><digits>) or cleaned token
	Description string // table description, empty when unresolvable
}
