package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/pipeline"
	"github.com/theirongolddev/kcal/internal/tui/components"
	"github.com/theirongolddev/kcal/internal/tui/theme"
)

func (a App) renderDashboard(cw int) string {
	t := theme.Active
	now := a.editor.Now()
	sum := pipeline.Summarize(a.ledger, now, a.goal)

	var b strings.Builder

	// Row 1: entry form next to the goal card
	halves := components.LayoutRow(cw, 2)
	goalBody := cli.FormatCalories(sum.Today) + " of " + cli.FormatCalories(sum.Goal)
	if sum.Goal > 0 {
		goalBody += "\n" + components.GoalBar(sum.Today, sum.Goal, components.CardInnerWidth(halves[1])) +
			"\n" + cli.FormatRemaining(sum.Goal, sum.Today)
	} else {
		goalBody = "No daily goal set.\nRun kcal setup to add one."
	}
	b.WriteString(components.CardRow([]string{
		components.FocusCard("Add food", a.form.view(), halves[0]),
		components.ContentCard("Daily goal", goalBody, halves[1]),
	}))
	b.WriteString("\n")

	// Row 2: headline numbers
	avg := ""
	if sum.ActiveDays > 0 {
		avg = fmt.Sprintf("avg %s/day", cli.FormatNumber(int64(sum.DailyAverage)))
	}
	entries := fmt.Sprintf("%d entries", sum.TodayEntries)
	if sum.TodayEntries == 1 {
		entries = "1 entry"
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Today", Value: cli.FormatCalories(sum.Today), Delta: entries},
		{Label: "Last 7 days", Value: cli.FormatCalories(sum.Week), Delta: avg},
		{Label: "Days logged", Value: fmt.Sprintf("%d / %d", sum.ActiveDays, pipeline.WeekDays)},
	}, cw))
	b.WriteString("\n")

	// Row 3: daily and weekly charts
	chartH := 8
	if a.height > 0 && a.height < 36 {
		chartH = 5
	}
	daily := pipeline.DailySeries(a.ledger, sum.Date)
	weekly := pipeline.WeeklySeries(a.ledger, now)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Today by meal",
			components.SeriesChart(daily, t.Accent, components.CardInnerWidth(halves[0]), chartH), halves[0]),
		components.ContentCard("This week",
			components.SeriesChart(weekly, t.Weekly, components.CardInnerWidth(halves[1]), chartH), halves[1]),
	}))

	return b.String()
}
