package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsWideCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Time", "Food", "kcal", ""},
		Rows: [][]string{
			{"08:00", "Apple", "95", "██"},
			{"08:05", "Toast", "150", "████"},
			{"---"},
			{"", "Total", "245", ""},
		},
		Left: []int{1, 3},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width %d, want %d: %q", i, w, want, line)
		}
	}
	if !strings.Contains(out, "  95 ") {
		t.Errorf("calorie column not right-aligned:\n%s", out)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(5, 0, 10); got != "" {
		t.Fatalf("zero total = %q, want empty", got)
	}
	got := RenderProgressBar(500, 2000, 8)
	if !strings.Contains(got, "██░░░░░░") || !strings.HasSuffix(got, "500/2,000") {
		t.Fatalf("RenderProgressBar = %q", got)
	}
	over := RenderProgressBar(2500, 2000, 4)
	if !strings.Contains(over, "████") {
		t.Fatalf("over-goal bar not full: %q", over)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(0, 100, 10); got != "" {
		t.Fatalf("zero value = %q", got)
	}
	if got := RenderHorizontalBar(1, 1000, 10); got != "█" {
		t.Fatalf("tiny value = %q, want one block", got)
	}
	if got := RenderHorizontalBar(50, 100, 10); got != "█████" {
		t.Fatalf("half = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("nil = %q", got)
	}
	got := RenderSparkline([]float64{0, 50, 100})
	if []rune(got)[0] != '▁' || []rune(got)[2] != '█' {
		t.Fatalf("RenderSparkline = %q", got)
	}
}
