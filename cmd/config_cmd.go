// Package cmd implements the kcal CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/kcal/internal/cli"
	"github.com/theirongolddev/kcal/internal/config"
	"github.com/theirongolddev/kcal/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:    %s\n", dbPath())
	if cfg.General.DailyGoal > 0 {
		fmt.Printf("    Daily goal:  %s\n", cli.FormatCalories(cfg.General.DailyGoal))
	} else {
		fmt.Println("    Daily goal:  not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Ledger]")
	printLedgerInfo()
	fmt.Println()

	fmt.Printf("  Overrides: %s, %s, %s (also read from ./.env)\n",
		config.EnvDB, config.EnvTheme, config.EnvDailyGoal)
	fmt.Println("  Run `kcal setup` to reconfigure.")
	return nil
}

// printLedgerInfo reports when the stored ledger last changed, without
// creating a database that does not exist yet.
func printLedgerInfo() {
	if flagMemory {
		fmt.Println("    In-memory (--memory)")
		return
	}
	path := dbPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Println("    No database yet")
		return
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		fmt.Printf("    Unreadable: %v\n", err)
		return
	}
	defer db.Close()

	updated, err := db.UpdatedAt(store.Key)
	switch {
	case err != nil:
		fmt.Printf("    Unreadable: %v\n", err)
	case updated.IsZero():
		fmt.Println("    Empty")
	default:
		fmt.Printf("    Last saved: %s\n", updated.Local().Format("2006-01-02 15:04"))
	}
}
