package report

import (
	"strings"
	"testing"
)

func TestComputeMetrics_Widths(t *testing.T) {
	records := []Record{
		{Path: "src/main.c", Line: 42, Code: "C-F4", Description: "Func body >20 lines"},
		{Path: "a.c", Line: 1, Code: "C-G7", Description: "Trailing space"},
	}
	m := ComputeMetrics(records, 200)

	// "src/main.c:42" is the widest path cell.
	if m.PathColumnWidth != len("src/main.c:42") {
		t.Errorf("PathColumnWidth = %d, want %d", m.PathColumnWidth, len("src/main.c:42"))
	}

	want := len("src/main.c:42") + 2 + len("C-F4") + len(" [Func body >20 lines]")
	if m.ContentWidth != want {
		t.Errorf("ContentWidth = %d, want %d", m.ContentWidth, want)
	}
}

func TestComputeMetrics_BoxWidthClamping(t *testing.T) {
	narrow := []Record{{Path: "a.c", Line: 1, Code: "C-G7"}}
	wide := []Record{{
		Path: "src/" + strings.Repeat("x", 100) + ".c", Line: 1,
		Code: "C-F4", Description: "Func body >20 lines",
	}}

	tests := []struct {
		name     string
		records  []Record
		columns  int
		wantWidth int
	}{
		{"short content floors at minimum", narrow, 200, MinBoxWidth},
		{"wide content caps at terminal minus margin", wide, 100, 95},
		{"narrow terminal wins over minimum", narrow, 80, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMetrics(tt.records, tt.columns)
			if m.BoxWidth != tt.wantWidth {
				t.Errorf("BoxWidth = %d, want %d", m.BoxWidth, tt.wantWidth)
			}
		})
	}
}

func TestComputeMetrics_NoDescription(t *testing.T) {
	records := []Record{{Path: "a.c", Line: 1, Code: "C-ZZ"}}
	m := ComputeMetrics(records, 200)

	want := len("a.c:1") + 2 + len("C-ZZ")
	if m.ContentWidth != want {
		t.Errorf("ContentWidth = %d, want %d (no bracket segment)", m.ContentWidth, want)
	}
}
