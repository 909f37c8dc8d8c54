package cmd

import (
	"fmt"

	"github.com/theirongolddev/kcal/internal/cli"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recent entry logged for today",
	Long:  "Remove the most recent entry logged for today. Entries on other days are never touched.",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(_ *cobra.Command, _ []string) error {
	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	removed, err := editor.UndoLast()
	if err != nil {
		return err
	}

	say("%s\n", cli.RenderStatus(fmt.Sprintf("Removed: %s", removed.Name), true))
	say("  %s at %s\n", cli.FormatCalories(removed.Calories), removed.Time.Clock())
	return nil
}
