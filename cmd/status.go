package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/model"
	"github.com/theirongolddev/kcal/internal/pipeline"
	"github.com/theirongolddev/kcal/internal/tui/components"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/spf13/cobra"
)

const (
	chartWidth  = 56
	chartHeight = 6
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Today and this week at a glance (default command)",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	now := editor.Now()
	ledger := editor.Snapshot()
	sum := pipeline.Summarize(ledger, now, appCfg.General.DailyGoal)

	fmt.Println()
	fmt.Println(cli.RenderTitle("KCAL  " + now.Format("Monday, Jan 2")))
	fmt.Println()
	printSummary(sum)
	fmt.Println()

	fmt.Println("  " + cli.RenderMuted("Today by meal"))
	fmt.Println(indent(components.SeriesChart(pipeline.DailySeries(ledger, sum.Date), theme.Active.Accent, chartWidth, chartHeight)))
	fmt.Println()
	fmt.Println("  " + cli.RenderMuted("Last 7 days"))
	fmt.Println(indent(components.SeriesChart(pipeline.WeeklySeries(ledger, now), theme.Active.Weekly, chartWidth, chartHeight)))
	fmt.Println()
	return nil
}

// printSummary prints the headline totals and the goal bar.
func printSummary(sum pipeline.Summary) {
	entries := "entries"
	if sum.TodayEntries == 1 {
		entries = "entry"
	}
	fmt.Printf("  Today        %s  %s\n", cli.FormatCalories(sum.Today),
		cli.RenderMuted(fmt.Sprintf("(%d %s)", sum.TodayEntries, entries)))
	fmt.Printf("  Last 7 days  %s  %s\n", cli.FormatCalories(sum.Week),
		cli.RenderMuted(fmt.Sprintf("avg %s/day over %d logged days", cli.FormatNumber(int64(sum.DailyAverage)), sum.ActiveDays)))
	if sum.Goal > 0 {
		fmt.Printf("  Goal         %s  %s\n", cli.RenderProgressBar(sum.Today, sum.Goal, 20),
			cli.FormatRemaining(sum.Goal, sum.Today))
	}
}

// parseDateFlag reads a --date value, defaulting to now.
func parseDateFlag(value string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	return model.ParseDateKey(value)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
