package cmd

import (
	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/diary"
	"github.com/theirongolddev/kcal/internal/model"

	"github.com/spf13/cobra"
)

var flagAt string

var addCmd = &cobra.Command{
	Use:   "add NAME CALORIES",
	Short: "Log a food entry",
	Example: `  kcal add Apple 95
  kcal add "Peanut butter toast" 310 --at 2024-01-01T08:05`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAt, "at", "", "When it was eaten, YYYY-MM-DDTHH:MM (default now)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	when := flagAt
	if when == "" {
		when = model.At(editor.Now()).String()
	}

	in, err := diary.ParseInput(args[0], args[1], when)
	if err != nil {
		return err
	}
	total, err := editor.Add(in)
	if err != nil {
		return err
	}

	say("%s\n", cli.RenderStatus("Food added successfully!", true))
	say("  %s, %s at %s. %s total: %s\n",
		in.Name, cli.FormatCalories(in.Calories), model.At(in.At).String(),
		model.DateKey(in.At), cli.FormatCalories(total))
	return nil
}
