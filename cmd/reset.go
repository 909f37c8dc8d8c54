package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/diary"
	"github.com/theirongolddev/kcal/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved food data",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	confirmed := flagYes
	if !confirmed {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("%w: pass --yes when not running in a terminal", diary.ErrNotConfirmed)
		}
		if err := tui.ResetForm(&confirmed).Run(); err != nil {
			if !errors.Is(err, huh.ErrUserAborted) {
				return fmt.Errorf("confirm prompt: %w", err)
			}
			confirmed = false
		}
	}
	if !confirmed {
		say("  Reset cancelled.\n")
		return nil
	}

	editor, done, err := openEditor()
	if err != nil {
		return err
	}
	defer done()

	if err := editor.ResetAll(true); err != nil {
		return err
	}
	say("%s\n", cli.RenderStatus("All data reset!", true))
	return nil
}
