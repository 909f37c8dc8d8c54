package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/kcal/internal/config"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues backs the wizard's fields.
type setupValues struct {
	goal   string
	theme  string
	dbPath string
}

func newSetupForm(v *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to kcal").
				Description("A few settings. Run `kcal setup` again anytime."),
			huh.NewInput().
				Title("Daily calorie goal").
				Description("0 hides the goal bar.").
				Value(&v.goal).
				Validate(validateGoal),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.theme),
			huh.NewInput().
				Title("Ledger database").
				Description("Leave empty for " + config.DefaultConfig().DBPath()).
				Value(&v.dbPath),
		),
	)
}

func validateGoal(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number of calories, 0 or more")
	}
	return nil
}

// apply copies the wizard answers onto cfg.
func (v setupValues) apply(cfg *config.Config) error {
	goal, err := strconv.Atoi(strings.TrimSpace(v.goal))
	if err != nil || goal < 0 {
		return fmt.Errorf("daily goal %q: want a whole number >= 0", v.goal)
	}
	cfg.General.DailyGoal = goal
	cfg.General.DBPath = strings.TrimSpace(v.dbPath)
	if theme.Valid(v.theme) {
		cfg.Appearance.Theme = v.theme
	}
	return nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("setup needs a terminal; edit %s instead", config.Path())
	}

	cfg := appCfg
	vals := setupValues{
		goal:   strconv.Itoa(cfg.General.DailyGoal),
		theme:  cfg.Appearance.Theme,
		dbPath: cfg.General.DBPath,
	}

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}
	if err := vals.apply(&cfg); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `kcal setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
