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

var flagDayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Entries and meal chart for one day",
	Args:  cobra.NoArgs,
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&flagDayDate, "date", "", "Day to show: YYYY-MM-DD, today or yesterday")
	rootCmd.AddCommand(dayCmd)
}

func runDay(_ *cobra.Command, _ []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	ref, err := parseDateFlag(flagDayDate, editor.Now())
	if err != nil {
		return err
	}
	date := model.DateKey(ref)
	ledger := editor.Snapshot()
	day := ledger.Day(date)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAY  " + ref.Format("Mon Jan 2, 2006")))
	fmt.Println()

	if day.Empty() {
		fmt.Printf("  No food logged on %s.\n\n", date)
		return nil
	}

	peak := 0
	for _, f := range day.Foods {
		peak = max(peak, f.Calories)
	}

	rows := make([][]string, 0, len(day.Foods)+2)
	for _, f := range day.Foods {
		rows = append(rows, []string{
			f.Time.Clock(),
			f.Name,
			cli.FormatNumber(int64(f.Calories)),
			cli.RenderHorizontalBar(float64(f.Calories), float64(peak), 16),
		})
	}
	rows = append(rows, []string{"---"}, []string{
		"", "Total", cli.FormatNumber(int64(day.TotalCalories)), "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Time", "Food", "kcal", ""},
		Rows:    rows,
		Left:    []int{1, 3},
	}))

	if goal := appCfg.General.DailyGoal; goal > 0 {
		fmt.Printf("  Goal  %s  %s\n", cli.RenderProgressBar(day.TotalCalories, goal, 20),
			cli.FormatRemaining(goal, day.TotalCalories))
	}
	fmt.Println()
	fmt.Println(indent(components.SeriesChart(pipeline.DailySeries(ledger, date), theme.Active.Accent, chartWidth, chartHeight)))
	fmt.Println()
	return nil
}
