package report

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFileName is the project-local ignore file consulted on every run.
const IgnoreFileName = ".styleignore"

// bannedExtensions are documentation files the checker flags but the report
// always suppresses.
var bannedExtensions = map[string]bool{
	".md":   true,
	".rst":  true,
	".txt":  true,
	".html": true,
}

// IgnoreFilter suppresses records for files excluded by extension or by the
// project ignore file.
type IgnoreFilter struct {
	entries map[string]bool
}

// LoadIgnoreFilter reads the ignore file under root. The file is read fresh
// each run; a missing file means no project-level filtering.
func LoadIgnoreFilter(root string) *IgnoreFilter {
	f := &IgnoreFilter{entries: make(map[string]bool)}

	file, err := os.Open(filepath.Join(root, IgnoreFileName))
	if err != nil {
		return f
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f.entries[line] = true
	}
	return f
}

// Drop reports whether a record for path must be suppressed: banned
// extension, or the relative path or its "*.ext" wildcard appears verbatim
// in the ignore file.
func (f *IgnoreFilter) Drop(path string) bool {
	ext := filepath.Ext(path)
	if bannedExtensions[ext] {
		return true
	}
	if f.entries[path] {
		return true
	}
	if ext != "" && f.entries["*"+ext] {
		return true
	}
	return false
}

// Filter removes suppressed records, preserving input order. Filtering runs
// before group boundaries are computed, so a fully ignored file never opens
// an empty group.
func (f *IgnoreFilter) Filter(records []Record) []Record {
	kept := records[:0:0]
	for _, rec := range records {
		if !f.Drop(rec.Path) {
			kept = append(kept, rec)
		}
	}
	return kept
}
