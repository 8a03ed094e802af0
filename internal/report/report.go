// Package report renders snapshots as human-readable text: the exported
// report file and the recent-log table shown in the terminal.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// ANSI color codes for warning counts in the log table.
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Format renders one snapshot as the multi-line text report.
func Format(snap *sysinfo.Snapshot) string {
	var sb strings.Builder

	sb.WriteString("=== Hardware Health Report ===\n")
	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", snap.Timestamp.Format("2006-01-02T15:04:05")))
	sb.WriteString(fmt.Sprintf("OS: %s %s (%s)\n", snap.OSName, snap.OSVersion, snap.OSArch))
	sb.WriteString(fmt.Sprintf("CPU Cores: %d physical / %d logical\n",
		snap.CPUPhysicalCores, snap.CPUCores))
	sb.WriteString(fmt.Sprintf("RAM: %.0f MB available / %.0f MB total (%.1f%% used)\n",
		snap.RAMAvailableMB, snap.RAMTotalMB, snap.RAMPercentUsed))
	sb.WriteString(fmt.Sprintf("Disk (%s): %.2f GB free / %.2f GB total (%.1f%% used)\n",
		snap.DiskPath, snap.DiskFreeGB, snap.DiskTotalGB, snap.DiskPercentUsed))

	sb.WriteString("\n")
	if len(snap.Warnings) > 0 {
		sb.WriteString("--- Warnings ---\n")
		for _, w := range snap.Warnings {
			sb.WriteString("- " + w + "\n")
		}
	} else {
		sb.WriteString("No warnings. System looks healthy for basic checks.\n")
	}

	return sb.String()
}

// Export overwrites the report file at path with the formatted snapshot.
func Export(path string, snap *sysinfo.Snapshot) error {
	if err := os.WriteFile(path, []byte(Format(snap)), 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

// RenderLogTable renders recent log entries as an aligned table, oldest
// first. Warning counts are colored when stdout is a TTY: green for zero,
// red otherwise.
func RenderLogTable(entries []sysinfo.Snapshot) string {
	if len(entries) == 0 {
		return "No log entries found yet.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-4s %-20s %-11s %-10s %s\n",
		"#", "Timestamp", "Disk Used", "RAM Used", "Warnings"))
	sb.WriteString(strings.Repeat("─", 56))
	sb.WriteString("\n")

	useColor := IsColorEnabled()
	for i, e := range entries {
		warnStr := fmt.Sprintf("%d", len(e.Warnings))
		if useColor {
			if len(e.Warnings) == 0 {
				warnStr = colorGreen + warnStr + colorReset
			} else {
				warnStr = colorRed + warnStr + colorReset
			}
		}

		sb.WriteString(fmt.Sprintf("%-4d %-20s %-11s %-10s %s\n",
			i+1,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.1f%%", e.DiskPercentUsed),
			fmt.Sprintf("%.1f%%", e.RAMPercentUsed),
			warnStr))
	}

	return sb.String()
}
