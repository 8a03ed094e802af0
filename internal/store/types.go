package store

import "time"

// CheckRecord is one indexed check, as read back from the database.
type CheckRecord struct {
	ID              int64
	Timestamp       time.Time
	OSName          string
	OSVersion       string
	CPUCores        int
	RAMTotalMB      float64
	RAMAvailableMB  float64
	RAMPercentUsed  float64
	DiskTotalGB     float64
	DiskFreeGB      float64
	DiskPercentUsed float64
	WarningCount    int
}

// Summary holds aggregate statistics over a window of checks.
type Summary struct {
	Checks         int
	AvgDiskPercent float64
	MaxDiskPercent float64
	AvgRAMPercent  float64
	MinRAMAvailMB  float64
	TotalWarnings  int
}
