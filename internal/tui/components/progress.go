package components

import (
	"fmt"

	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// GoalColor is green while under the goal and orange once it is passed.
func GoalColor(today, goal int) lipgloss.Color {
	t := theme.Active
	if goal > 0 && today > goal {
		return t.Orange
	}
	return t.Green
}

// GoalBar renders today's intake against the daily goal as a labelled bar.
// With no goal configured it renders nothing.
func GoalBar(today, goal, width int) string {
	if goal <= 0 {
		return ""
	}
	t := theme.Active

	pct := float64(today) / float64(goal)
	if pct < 0 {
		pct = 0
	}
	shown := pct
	if shown > 1 {
		shown = 1
	}

	color := GoalColor(today, goal)
	label := fmt.Sprintf("%3.0f%%", pct*100)
	barW := width - lipgloss.Width(label) - 1
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(shown) + " " + pctStyle.Render(label)
}
