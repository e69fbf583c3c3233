package report

import (
	"regexp"
	"strings"
)

// canonicalCodeRe matches the normalized rule identifier, e.g. "C-F4".
var canonicalCodeRe = regexp.MustCompile(`C-[A-Z][0-9]+`)

// CodeEntry maps one canonical code to its fixed human-readable description.
type CodeEntry struct {
	Code        string
	Description string
}

// codeTable is the read-only rule reference table. Order matters: the
// degraded lookup in Resolve walks it front to back and first match wins.
var codeTable = []CodeEntry{
	{"C-O1", "Compiled or temporary file in delivery"},
	{"C-O2", "Bad source file extension"},
	{"C-O3", "Too many functions in file (>10)"},
	{"C-O4", "Bad file or folder name"},
	{"C-G1", "Missing or malformed file header"},
	{"C-G2", "Functions separated by more than one empty line"},
	{"C-G3", "Bad preprocessor directive indentation"},
	{"C-G4", "Global variable used"},
	{"C-G5", "Bad include directive"},
	{"C-G6", "Bad line ending"},
	{"C-G7", "Trailing space"},
	{"C-G8", "Leading or trailing empty line"},
	{"C-G10", "Inline assembly used"},
	{"C-F2", "Bad function name"},
	{"C-F3", "Line too long (>80 columns)"},
	{"C-F4", "Func body >20 lines"},
	{"C-F5", "Too many parameters (>4)"},
	{"C-F6", "Parameterless function missing void"},
	{"C-F7", "Structure passed by copy"},
	{"C-F8", "Comment inside function body"},
	{"C-F9", "Nested function defined"},
	{"C-L1", "Multiple statements on one line"},
	{"C-L2", "Bad indentation"},
	{"C-L3", "Misplaced space"},
	{"C-L4", "Misplaced curly bracket"},
	{"C-L5", "Variable not declared at scope start"},
	{"C-L6", "Misplaced blank line"},
	{"C-V1", "Bad identifier name"},
	{"C-V2", "Misplaced type declaration"},
	{"C-V3", "Misplaced pointer symbol"},
	{"C-C1", "Conditional branching too deep (>3)"},
	{"C-C2", "Abusive ternary operator"},
	{"C-C3", "goto used"},
	{"C-H1", "Bad separation of source and header"},
	{"C-H2", "Missing include guard"},
	{"C-H3", "Abusive macro"},
	{"C-A1", "Unmodified pointer not marked const"},
	{"C-A2", "Imprecise type used"},
	{"C-A3", "Missing line break at end of file"},
	{"C-A4", "Internal function not marked static"},
}

// severityPrefixes are stripped from raw code tokens before matching.
var severityPrefixes = []string{"MAJOR", "MINOR", "INFO"}

// stripSeverityPrefix removes a leading severity token and an optional
// following "-" from a raw code token.
func stripSeverityPrefix(token string) string {
	for _, prefix := range severityPrefixes {
		if strings.HasPrefix(token, prefix) {
			return strings.TrimPrefix(strings.TrimPrefix(token, prefix), "-")
		}
	}
	return token
}

// ResolveCode maps a raw code token to a canonical code and description
// using an ordered fallback chain:
//
//  1. strip a severity prefix from the token
//  2. search the cleaned token for the canonical pattern
//  3. search the entire original message for the canonical pattern
//  4. accept the cleaned token verbatim if it is shaped like a code
//  5. look up the description table exactly, then degraded by trailing
//     digits (table order is the tie-break)
//
// Resolution never fails: an unresolvable token comes back as-is with an
// empty description.
func ResolveCode(rawCode, message string) (code, description string) {
	cleaned := stripSeverityPrefix(rawCode)

	code = canonicalCodeRe.FindString(cleaned)
	if code == "" {
		code = canonicalCodeRe.FindString(message)
	}
	if code == "" && strings.HasPrefix(cleaned, "C-") && len(cleaned) >= 4 {
		code = cleaned
	}
	if code == "" {
		return cleaned, ""
	}

	if desc, ok := lookupExact(code); ok {
		return code, desc
	}
	return code, lookupDegraded(code)
}

// Resolve annotates a record with its canonical code and description.
func Resolve(rec Record) Record {
	rec.Code, rec.Description = ResolveCode(rec.RawCode, rec.Message)
	return rec
}

// ResolveAll annotates every record, preserving order.
func ResolveAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = Resolve(rec)
	}
	return out
}

func lookupExact(code string) (string, bool) {
	for _, entry := range codeTable {
		if entry.Code == code {
			return entry.Description, true
		}
	}
	return "", false
}

// lookupDegraded matches by trailing digits only, so an unknown "C-X3"
// borrows the description of the first "C-*3" entry. Known to cross code
// families sharing a digit suffix; the table-order tie-break is load-bearing.
func lookupDegraded(code string) string {
	digits := trailingDigits(code)
	if digits == "" {
		return ""
	}
	for _, entry := range codeTable {
		if trailingDigits(entry.Code) == digits {
			return entry.Description
		}
	}
	return ""
}

func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}
