package app

import (
	"github.com/spf13/cobra"
)

var (
	logPath    string
	reportPath string
	dbPath     string

	// RootCmd is the root command for hwcheck
	RootCmd = &cobra.Command{
		Use:   "hwcheck",
		Short: "Hardware health & inventory checker",
		Long: `hwcheck polls operating-system metrics (CPU, memory, disk), compares
them against thresholds and appends the result to a JSON history file.

Run without a subcommand to get the interactive menu. Every menu action is
also available as a subcommand for scripting.

Files:
  hardware_log.json   append-only JSON array of check snapshots
  latest_report.txt   text report of the most recent check
  hwcheck.db          SQLite index of the history, backing 'hwcheck stats'

Thresholds default to disk usage >= 85% and available RAM <= 2048 MB and can
be overridden in {config dir}/hwcheck/thresholds.

Examples:
  # One-off health check
  hwcheck check

  # Last ten log entries
  hwcheck logs --limit 10

  # Aggregates over the last week
  hwcheck stats --days 7

  # Re-check every five minutes until interrupted
  hwcheck watch --interval 5m`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&logPath, "log", "hardware_log.json", "JSON log file path")
	RootCmd.PersistentFlags().StringVar(&reportPath, "report", "latest_report.txt", "report file path")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "hwcheck.db", "index database path")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
