package report

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIgnoreFile(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, IgnoreFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIgnoreFilter_BannedExtensions(t *testing.T) {
	f := LoadIgnoreFilter(t.TempDir()) // no ignore file

	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"docs/guide.rst", true},
		{"notes.txt", true},
		{"doc/index.html", true},
		{"src/main.c", false},
		{"include/lib.h", false},
	}
	for _, tt := range tests {
		if got := f.Drop(tt.path); got != tt.want {
			t.Errorf("Drop(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIgnoreFilter_ProjectFile(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, "src/generated.c\n*.y\n\n# a comment\n")
	f := LoadIgnoreFilter(root)

	tests := []struct {
		path string
		want bool
	}{
		{"src/generated.c", true},  // verbatim path
		{"parser.y", true},         // wildcard extension
		{"src/parser.y", true},     // wildcard matches any directory
		{"src/generated.h", false}, // not listed
		{"generated.c", false},     // path must match verbatim
	}
	for _, tt := range tests {
		if got := f.Drop(tt.path); got != tt.want {
			t.Errorf("Drop(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIgnoreFilter_MissingFileMeansNoFiltering(t *testing.T) {
	f := LoadIgnoreFilter(filepath.Join(t.TempDir(), "nonexistent"))
	if f.Drop("src/main.c") {
		t.Error("Drop(src/main.c) = true with no ignore file")
	}
}

func TestIgnoreFilter_FilterPreservesOrder(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, "src/skip.c\n")
	f := LoadIgnoreFilter(root)

	records := []Record{
		{Path: "src/a.c", Line: 1},
		{Path: "src/skip.c", Line: 2},
		{Path: "README.md", Line: 3},
		{Path: "src/b.c", Line: 4},
	}
	kept := f.Filter(records)
	if len(kept) != 2 {
		t.Fatalf("kept %d records, want 2", len(kept))
	}
	if kept[0].Path != "src/a.c" || kept[1].Path != "src/b.c" {
		t.Errorf("kept = %v, want a.c then b.c", kept)
	}
}
