package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/kcal/internal/config"
	"github.com/theirongolddev/kcal/internal/diary"
	"github.com/theirongolddev/kcal/internal/log"
	"github.com/theirongolddev/kcal/internal/store"
	"github.com/theirongolddev/kcal/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagMemory  bool
	flagQuiet   bool
	flagVerbose bool
)

// Loaded once per invocation by loadSettings.
var (
	appCfg = config.DefaultConfig()
	logger = log.Nop()
)

var rootCmd = &cobra.Command{
	Use:               "kcal",
	Short:             "Calorie ledger for the terminal",
	Long:              "Log what you eat with timestamps and see daily and weekly calorie totals.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database path (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "Use a throwaway in-memory ledger")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// loadSettings sets up logging, reads .env and the config file, and applies
// the theme. A broken config file is logged and replaced by defaults so that
// `kcal setup` can still repair it.
func loadSettings(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	switch {
	case flagVerbose:
		level = slog.LevelDebug
	case flagQuiet:
		level = slog.LevelError
	}
	logger = log.New(log.Config{Level: level, Component: log.ComponentApp, Output: os.Stderr})
	cfgLog := logger.WithComponent(log.ComponentConfig)

	if err := config.LoadDotEnv(".env"); err != nil {
		cfgLog.Warn("ignoring .env", log.FieldError, err)
	}

	cfg, err := config.Load()
	if err != nil {
		cfgLog.Warn("config unreadable, using defaults", log.FieldPath, config.Path(), log.FieldError, err)
	}
	appCfg = cfg

	if appCfg.Appearance.Theme != "" && !theme.Valid(appCfg.Appearance.Theme) {
		cfgLog.Warn("unknown theme, using default", "theme", appCfg.Appearance.Theme)
	}
	theme.SetActive(appCfg.Appearance.Theme)
	return nil
}

// dbPath resolves the ledger location: --db, then KCAL_DB or the config file.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return appCfg.DBPath()
}

// openEditor opens the configured backend and returns an editor over it.
// The returned func closes the backend.
func openEditor() (*diary.Editor, func(), error) {
	var backend store.Backend
	closeFn := func() {}

	if flagMemory {
		backend = store.NewMemory()
		logger.Debug("using in-memory ledger")
	} else {
		path := dbPath()
		db, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening ledger %s: %w", path, err)
		}
		logger.Debug("opened ledger", log.FieldPath, path)
		backend = db
		closeFn = func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing ledger", log.FieldPath, path, log.FieldError, err)
			}
		}
	}

	ledger := store.New(backend, logger)
	return diary.NewEditor(ledger, diary.WithLogger(logger)), closeFn, nil
}

// say prints a human status line unless --quiet is set.
func say(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf(format, args...)
}
