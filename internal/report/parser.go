package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// arrowDelimiter is the alternate code/description separator emitted by
// newer checker builds. The older convention uses a plain ":".
const arrowDelimiter = "→"

// ParseLine parses one raw log line of the form
//
//	path:line:SEVERITY-CODE:description
//	path:line:SEVERITY-CODE → description
//
// Returns ok=false for lines that do not carry at least two ":" separators
// or a numeric line number; such lines are skipped, never fatal.
func ParseLine(line string) (Record, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return Record{}, false
	}

	lineNo, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, false
	}

	path := strings.TrimPrefix(parts[0], "./")
	message := parts[2]

	rawCode, _ := splitMessage(message)

	// Severity is the leading token up to the first "-".
	sevToken, _, _ := strings.Cut(rawCode, "-")

	return Record{
		Path:     path,
		Line:     lineNo,
		Severity: ParseSeverity(sevToken),
		RawCode:  rawCode,
		Message:  message,
	}, true
}

// splitMessage separates the code token from the description, accepting
// both delimiter conventions.
func splitMessage(message string) (code, description string) {
	if idx := strings.Index(message, arrowDelimiter); idx >= 0 {
		return strings.TrimSpace(message[:idx]), strings.TrimSpace(message[idx+len(arrowDelimiter):])
	}
	if idx := strings.Index(message, ":"); idx >= 0 {
		return strings.TrimSpace(message[:idx]), strings.TrimSpace(message[idx+1:])
	}
	return strings.TrimSpace(message), ""
}

// Parse streams the checker log and returns the parsed records in input
// order. Malformed lines are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
