package main

import (
	"strings"
	"testing"
)

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"TITLE", "TAG", "COPIED"},
		[][]string{
			{"Oldboy 2003", "Korean", "3"},
			{"Short row"},
		},
		2,
	)
	for _, fragment := range []string{"TITLE", "Oldboy 2003", "Korean", "Short row"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in table output:\n%s", fragment, out)
		}
	}
	lines := strings.Split(out, "\n")
	// border, header, separator, two rows, border
	if len(lines) != 6 {
		t.Fatalf("table lines = %d, want 6:\n%s", len(lines), out)
	}
}

func TestRenderTableRightAlignsCountColumns(t *testing.T) {
	out := renderTable(
		[]string{"TITLE", "COPIED"},
		[][]string{
			{"A very long movie title", "3"},
			{"B", "12"},
		},
		1,
	)
	var short, long string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, " 3 ") {
			short = line
		}
		if strings.Contains(line, " 12 ") {
			long = line
		}
	}
	if short == "" || long == "" {
		t.Fatalf("count cells not found:\n%s", out)
	}
	if strings.Index(short, "3") != strings.Index(long, "12")+1 {
		t.Fatalf("counts are not right-aligned:\n%s", out)
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
