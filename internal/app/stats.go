package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/store"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the check history",
	Long: `Display aggregate statistics computed from the SQLite index of the
check history: number of checks, average and peak disk usage, average RAM
usage, the lowest available RAM seen and the total warning count.

Use --days to restrict the window; 0 aggregates the whole history. If the
index is missing or stale, run 'hwcheck reindex' to rebuild it from the
JSON log.`,
	Example: `  # Whole history
  hwcheck stats

  # Last seven days
  hwcheck stats --days 7`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "time window in days (0 = all)")
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsDays < 0 {
		return fmt.Errorf("invalid days: %d (must not be negative)", statsDays)
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	defer db.Close()

	sum, err := db.Summary(statsDays)
	if err != nil {
		if errors.Is(err, store.ErrNotInitialized) {
			fmt.Println("No index found. Run 'hwcheck check' or 'hwcheck reindex' first.")
			return nil
		}
		return err
	}

	if sum.Checks == 0 {
		if statsDays > 0 {
			fmt.Printf("No checks recorded in the last %d days.\n", statsDays)
		} else {
			fmt.Println("No checks recorded yet. Run 'hwcheck check' first.")
		}
		return nil
	}

	window := "all time"
	if statsDays > 0 {
		window = fmt.Sprintf("last %d days", statsDays)
	}

	fmt.Printf("Check history (%s)\n", window)
	fmt.Printf("  Checks:             %d\n", sum.Checks)
	fmt.Printf("  Disk usage:         %.1f%% avg / %.1f%% peak\n", sum.AvgDiskPercent, sum.MaxDiskPercent)
	fmt.Printf("  RAM usage:          %.1f%% avg\n", sum.AvgRAMPercent)
	fmt.Printf("  Lowest RAM free:    %.0f MB\n", sum.MinRAMAvailMB)
	fmt.Printf("  Warnings recorded:  %d\n", sum.TotalWarnings)

	return nil
}
