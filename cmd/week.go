package cmd

import (
	"fmt"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/model"
	"github.com/theirongolddev/kcal/internal/pipeline"
	"github.com/theirongolddev/kcal/internal/tui/components"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/spf13/cobra"
)

var flagWeekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Totals for the 7 days ending on a date",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&flagWeekDate, "date", "", "Last day of the window: YYYY-MM-DD, today or yesterday")
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	ref, err := parseDateFlag(flagWeekDate, editor.Now())
	if err != nil {
		return err
	}
	ledger := editor.Snapshot()
	sum := pipeline.Summarize(ledger, ref, appCfg.General.DailyGoal)
	series := pipeline.WeeklySeries(ledger, ref)
	dates := pipeline.WeekDates(ref)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEK  %s to %s",
		dates[0].Format("Jan 2"), dates[len(dates)-1].Format("Jan 2"))))
	fmt.Println()

	peak := float64(series.Max())
	rows := make([][]string, 0, len(dates)+3)
	for i, d := range dates {
		day := ledger.Day(model.DateKey(d))
		rows = append(rows, []string{
			model.DateKey(d),
			series.Labels[i],
			cli.FormatNumber(int64(len(day.Foods))),
			cli.FormatNumber(int64(series.Values[i])),
			cli.RenderHorizontalBar(float64(series.Values[i]), peak, 16),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", "", "", cli.FormatNumber(int64(sum.Week)), cli.RenderSparkline(series.Floats())},
		[]string{"Daily avg", "", "", cli.FormatNumber(int64(sum.DailyAverage)), ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Entries", "kcal", ""},
		Rows:    rows,
		Left:    []int{1, 4},
	}))
	fmt.Println()
	fmt.Println(indent(components.SeriesChart(series, theme.Active.Weekly, chartWidth, chartHeight)))
	fmt.Println()
	return nil
}
