package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/history"
	"github.com/sleepyhugo/hardware-health-checker/internal/report"
)

// defaultLogsLimit is how many entries the menu's "view recent logs" shows.
const defaultLogsLimit = 5

var logsLimit int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View recent log entries",
	Long: `Show the most recent check snapshots from the JSON log as a table:
timestamp, disk usage, RAM usage and warning count per entry.`,
	Example: `  # Last five entries
  hwcheck logs

  # Last twenty entries
  hwcheck logs --limit 20`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVar(&logsLimit, "limit", defaultLogsLimit, "number of entries to show")
	RootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	if logsLimit <= 0 {
		return fmt.Errorf("invalid limit: %d (must be positive)", logsLimit)
	}
	return showRecentLogs(logsLimit)
}

// showRecentLogs renders the newest `limit` log entries, oldest first.
func showRecentLogs(limit int) error {
	entries, err := history.New(logPath).Read()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println()
		fmt.Println("No log entries found yet.")
		fmt.Println()
		return nil
	}

	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	fmt.Println()
	fmt.Printf("=== Showing last %d log entries ===\n\n", len(entries))
	fmt.Print(report.RenderLogTable(entries))
	fmt.Println()

	return nil
}
