package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gyeh/occload/internal/normalize"
)

func TestPrintParsed(t *testing.T) {
	var buf bytes.Buffer
	failed := printParsed(&buf, normalize.NewDateParser(), []string{"Jul 6 1987", "Jun", "", "not a date"})
	if failed != 1 {
		t.Errorf("failed: got %d, want 1", failed)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d:\n%s", len(lines), buf.String())
	}
	checks := []struct {
		line   int
		fields []string
	}{
		{1, []string{`"Jul 6 1987"`, "1987", "7", "6", "full-date"}},
		{2, []string{`"Jun"`, "-", "6", "-", "month"}},
		{3, []string{`""`, "-", "-", "-", "blank"}},
		{4, []string{`"not a date"`, "error"}},
	}
	for _, c := range checks {
		for _, f := range c.fields {
			if !strings.Contains(lines[c.line], f) {
				t.Errorf("line %d %q missing %q", c.line, lines[c.line], f)
			}
		}
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("1895\nJun 1895\n"))
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(lines) != 2 || lines[1] != "Jun 1895" {
		t.Errorf("got %v", lines)
	}
}
