package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/checks"
	"github.com/sleepyhugo/hardware-health-checker/internal/history"
	"github.com/sleepyhugo/hardware-health-checker/internal/report"
	"github.com/sleepyhugo/hardware-health-checker/internal/store"
	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a health check (collect, evaluate, log)",
	Long: `Collect OS metrics, evaluate them against the thresholds, print the
report and append the snapshot to the JSON log.

The snapshot is also indexed into the SQLite database so 'hwcheck stats' can
aggregate over the history. An index failure does not fail the check — the
log already holds the record and 'hwcheck reindex' rebuilds the index.`,
	Example: `  # Run a check with the default file locations
  hwcheck check

  # Keep the log somewhere else
  hwcheck check --log /var/log/hardware_log.json`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}
	return doCheck(ctx)
}

// doCheck runs one collect → evaluate → log pass with freshly loaded
// thresholds. Shared by the check command and the interactive menu.
func doCheck(ctx context.Context) error {
	return doCheckWith(ctx, loadThresholds())
}

// doCheckWith is doCheck with caller-supplied thresholds; the watch loop
// passes its cached copy so config reloads stay explicit.
func doCheckWith(ctx context.Context, t checks.Thresholds) error {
	snap, err := takeSnapshot(ctx, t)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(report.Format(snap))
	fmt.Println()

	log := history.New(logPath)
	if err := log.Append(snap); err != nil {
		return err
	}
	fmt.Printf("Saved log entry to: %s\n", log.Path())

	if err := indexSnapshot(snap); err != nil {
		fmt.Printf("Warning: failed to index snapshot: %v\n", err)
	}

	return nil
}

// indexSnapshot mirrors the snapshot into the SQLite index.
func indexSnapshot(snap *sysinfo.Snapshot) error {
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return err
	}

	return db.InsertCheck(snap)
}
