package clean

import (
	"path/filepath"
	"strings"
)

// MatchesArtifact reports whether relPath matches any of the given artifact
// patterns. Patterns use gitignore-style globs:
//   - "*" matches any sequence of non-separator characters
//   - "**" matches any sequence of characters including separators (recursive)
//   - "?" matches any single non-separator character
//
// A pattern without a separator matches against the base name anywhere in
// the tree ("*.o" matches "src/obj/main.o").
// All paths are normalized to forward slashes before matching.
func MatchesArtifact(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !strings.Contains(pattern, "/") {
			if matchSimple(filepath.Base(normalized), pattern) {
				return true
			}
			continue
		}
		if matchGlob(normalized, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a single glob pattern with ** support.
// Both path and pattern MUST be forward-slash normalized before calling.
func matchGlob(path, pattern string) bool {
	// Fast path: no ** means standard glob matching
	if !strings.Contains(pattern, "**") {
		return matchSimple(path, pattern)
	}

	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	// Case: prefix/** (e.g., "build/**")
	if suffix == "" {
		if prefix == "" {
			return true // bare "**" matches everything
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	// Case: **/suffix (e.g., "**/*.o")
	if prefix == "" {
		if matchGlob(path, suffix) {
			return true
		}
		for i := 0; i < len(path); i++ {
			if path[i] == '/' {
				if matchGlob(path[i+1:], suffix) {
					return true
				}
			}
		}
		return false
	}

	// Case: prefix/**/suffix
	if !strings.HasPrefix(path, prefix+"/") && path != prefix {
		return false
	}
	remaining := strings.TrimPrefix(path, prefix+"/")
	if matchGlob(remaining, suffix) {
		return true
	}
	for i := 0; i < len(remaining); i++ {
		if remaining[i] == '/' {
			if matchGlob(remaining[i+1:], suffix) {
				return true
			}
		}
	}
	return false
}

// matchSimple wraps filepath.Match for single-segment glob matching.
func matchSimple(path, pattern string) bool {
	matched, err := filepath.Match(pattern, path)
	return err == nil && matched
}
