// Package clean removes build artifacts from a project tree.
package clean

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPatterns are the artifact globs removed by `devkit clean`.
var DefaultPatterns = []string{
	"*.o",
	"*.a",
	"*.so",
	"*.gch",
	"*.gcno",
	"*.gcda",
	"*.gcov",
	"*~",
	"#*#",
	"vgcore.*",
	"core",
	"a.out",
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git": true,
}

// Stats summarizes one cleanup run.
type Stats struct {
	FileCount int
	ByteCount int64
	Removed   []string // relative paths, in walk order
}

// Run walks root and deletes files matching patterns. With dryRun, files
// are reported but kept. Unreadable entries are skipped, never fatal.
func Run(root string, patterns []string, dryRun bool) (Stats, error) {
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if !MatchesArtifact(rel, patterns) {
			return nil
		}

		if info, err := d.Info(); err == nil {
			stats.ByteCount += info.Size()
		}
		if !dryRun {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", rel, err)
			}
		}
		stats.FileCount++
		stats.Removed = append(stats.Removed, rel)
		return nil
	})
	if err != nil {
		return stats, err
	}
	return stats, nil
}
