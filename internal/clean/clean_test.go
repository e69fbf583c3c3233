package clean

import (
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// MatchesArtifact Unit Tests
// ============================================================================

func TestMatchesArtifact_BaseNamePatterns(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{"object file at root", "main.o", "*.o", true},
		{"object file nested", "src/obj/main.o", "*.o", true},
		{"source not matched", "src/main.c", "*.o", false},
		{"editor backup", "src/main.c~", "*~", true},
		{"emacs autosave", "#main.c#", "#*#", true},
		{"core dump", "vgcore.1234", "vgcore.*", true},
		{"exact name nested", "build/a.out", "a.out", true},
		{"precompiled header", "include/lib.h.gch", "*.gch", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesArtifact(tt.path, []string{tt.pattern})
			if got != tt.want {
				t.Errorf("MatchesArtifact(%q, [%q]) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchesArtifact_DirectoryGlobs(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{"match dir child", "build/out.bin", "build/**", true},
		{"match dir nested", "build/deep/out.bin", "build/**", true},
		{"no match sibling", "src/main.c", "build/**", false},
		{"recursive suffix", "x/y/z/f.tmp", "**/*.tmp", true},
		{"prefix and suffix", "obj/deep/f.o", "obj/**/*.o", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesArtifact(tt.path, []string{tt.pattern})
			if got != tt.want {
				t.Errorf("MatchesArtifact(%q, [%q]) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Run Integration Tests
// ============================================================================

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun_RemovesArtifactsKeepsSources(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/main.c":   "int main(void){}",
		"src/main.o":   "obj",
		"lib/helper.a": "archive",
		"a.out":        "binary",
		"Makefile":     "all:",
	})

	stats, err := Run(root, DefaultPatterns, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FileCount != 3 {
		t.Errorf("FileCount = %d, want 3 (removed: %v)", stats.FileCount, stats.Removed)
	}

	for _, kept := range []string{"src/main.c", "Makefile"} {
		if _, err := os.Stat(filepath.Join(root, kept)); err != nil {
			t.Errorf("%s was removed, want kept", kept)
		}
	}
	for _, gone := range []string{"src/main.o", "lib/helper.a", "a.out"} {
		if _, err := os.Stat(filepath.Join(root, gone)); !os.IsNotExist(err) {
			t.Errorf("%s still exists, want removed", gone)
		}
	}
}

func TestRun_DryRunKeepsEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.o": "obj",
	})

	stats, err := Run(root, DefaultPatterns, true)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FileCount != 1 {
		t.Errorf("FileCount = %d, want 1", stats.FileCount)
	}
	if _, err := os.Stat(filepath.Join(root, "main.o")); err != nil {
		t.Error("dry run removed a file")
	}
}

func TestRun_SkipsGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/objects/ab.o": "not an artifact",
	})

	stats, err := Run(root, DefaultPatterns, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FileCount != 0 {
		t.Errorf("FileCount = %d, want 0 (removed: %v)", stats.FileCount, stats.Removed)
	}
}
