// Package checks applies threshold policy to a collected snapshot and
// produces the warning list recorded alongside it.
package checks

import (
	"fmt"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// Default thresholds. Disk usage at or above DefaultDiskPercentMax trips the
// disk warning; available RAM at or below DefaultRAMAvailableMinMB trips the
// low-RAM warning.
const (
	DefaultDiskPercentMax    = 85.0
	DefaultRAMAvailableMinMB = 2048.0
)

// Thresholds holds the numeric limits the evaluator compares against.
type Thresholds struct {
	DiskPercentMax    float64
	RAMAvailableMinMB float64
}

// Defaults returns the built-in thresholds.
func Defaults() Thresholds {
	return Thresholds{
		DiskPercentMax:    DefaultDiskPercentMax,
		RAMAvailableMinMB: DefaultRAMAvailableMinMB,
	}
}

// Evaluate compares a snapshot's metrics against the thresholds and returns
// the warnings in fixed order: disk first, then RAM. It is a pure function:
// same input, same output, no side effects. The result is an empty (non-nil)
// slice when nothing trips.
func Evaluate(snap *sysinfo.Snapshot, t Thresholds) []string {
	warnings := []string{}

	if snap.DiskPercentUsed >= t.DiskPercentMax {
		warnings = append(warnings, fmt.Sprintf("High disk usage: %.0f%%", snap.DiskPercentUsed))
	}
	if snap.RAMAvailableMB <= t.RAMAvailableMinMB {
		warnings = append(warnings, fmt.Sprintf("Low available RAM: %.0f MB", snap.RAMAvailableMB))
	}

	return warnings
}
