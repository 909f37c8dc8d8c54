package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/kcal/internal/pipeline"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a one-line unicode sparkline.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// SeriesChart draws a pipeline series as a bar chart.
func SeriesChart(s pipeline.Series, color lipgloss.Color, width, height int) string {
	return BarChart(s.Floats(), s.Labels, color, width, height)
}

// BarChart renders vertical bars with a y axis and one label under each bar.
// Labels wider than their slot are cut. Below 15x3 it degrades to a sparkline.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}

	step := chartTickStep(peak)
	ticks := int(math.Ceil(peak / step))
	for ticks > max(height/2, 1) {
		step *= 2
		ticks = int(math.Ceil(peak / step))
	}
	ticks = max(ticks, 1)
	ceiling := step * float64(ticks)

	rowsPerTick := max(height/ticks, 1)
	rows := rowsPerTick * ticks

	labelW := max(len(formatChartLabel(ceiling))+1, 4)
	n := len(values)
	chartW := max(width-labelW-1, n)

	// Each bar gets a slot; one column of the slot is the gap.
	slot := min(max(chartW/n, 1), 9)
	barW := max(slot-1, 1)

	axis := lipgloss.NewStyle().Foreground(t.TextDim)
	bar := lipgloss.NewStyle().Foreground(color)
	top := lipgloss.NewStyle().Foreground(t.AccentBright)
	fill := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		hi := ceiling * float64(row) / float64(rows)
		lo := ceiling * float64(row-1) / float64(rows)

		tick := ""
		if row%rowsPerTick == 0 {
			tick = formatChartLabel(step * float64(row/rowsPerTick))
		}
		b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, tick)))

		for i, v := range values {
			cell := strings.Repeat(" ", barW)
			style := bar
			switch {
			case v >= hi:
				cell = strings.Repeat("█", barW)
			case v > lo:
				idx := min(max(int((v-lo)/(hi-lo)*8), 1), 8)
				cell = strings.Repeat(string(fill[idx]), barW)
				style = top
			}
			b.WriteString(style.Render(cell))
			if i < n-1 && slot > barW {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + (n-1)*(slot-barW)
	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", labelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		var lb strings.Builder
		for _, l := range labels {
			lb.WriteString(fitLabel(l, slot))
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", labelW+1))
		b.WriteString(axis.Render(strings.TrimRight(lb.String(), " ")))
	}
	return b.String()
}

// fitLabel left-aligns l in a w-wide slot, cutting it when it does not fit.
func fitLabel(l string, w int) string {
	r := []rune(l)
	if len(r) > w {
		r = r[:w]
	}
	return string(r) + strings.Repeat(" ", w-len(r))
}

// chartTickStep picks a 1/2/5 tick interval aiming for about five ticks.
func chartTickStep(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	rough := peak / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return math.Max(base, 1)
	case frac < 3.5:
		return math.Max(2*base, 1)
	default:
		return math.Max(5*base, 1)
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e3 && v == math.Trunc(v/1e3)*1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
