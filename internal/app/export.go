package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/history"
	"github.com/sleepyhugo/hardware-health-checker/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the latest snapshot as a text report",
	Long: `Format the most recent log entry as a human-readable report and write
it to the report file, overwriting any previous export.`,
	Example: `  # Write latest_report.txt in the current directory
  hwcheck export

  # Write the report elsewhere
  hwcheck export --report /tmp/report.txt`,
	RunE: runExport,
}

func init() {
	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	return exportLatest()
}

// exportLatest writes the most recent log entry to the report file.
func exportLatest() error {
	latest, err := history.New(logPath).Latest()
	if err != nil {
		if errors.Is(err, history.ErrEmptyLog) {
			fmt.Println()
			fmt.Println("No logs found. Run a health check first.")
			fmt.Println()
			return nil
		}
		return err
	}

	if err := report.Export(reportPath, latest); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Exported latest report to: %s\n", reportPath)
	fmt.Println()

	return nil
}
