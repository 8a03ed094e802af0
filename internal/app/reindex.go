package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/history"
	"github.com/sleepyhugo/hardware-health-checker/internal/store"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the statistics index from the JSON log",
	Long: `Drop all indexed checks and replay the JSON log into the SQLite index.

The log file is canonical; the index only exists so 'hwcheck stats' can run
aggregate queries. Use this after deleting or moving the database file, or
when 'hwcheck doctor' reports that log and index disagree.`,
	Example: `  hwcheck reindex`,
	RunE: runReindex,
}

func init() {
	RootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, args []string) error {
	entries, err := history.New(logPath).Read()
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}
	if err := db.Reset(); err != nil {
		return err
	}

	for i := range entries {
		if err := db.InsertCheck(&entries[i]); err != nil {
			return fmt.Errorf("failed to index entry %d: %w", i+1, err)
		}
	}

	fmt.Printf("Reindexed %d log entries into %s\n", len(entries), dbPath)
	return nil
}
