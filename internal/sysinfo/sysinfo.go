// Package sysinfo collects point-in-time hardware and OS metrics from the
// host via gopsutil.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// ErrPlatformUnavailable is wrapped by every collection failure so callers
// can distinguish "the host metrics API failed" from persistence errors.
var ErrPlatformUnavailable = errors.New("platform metrics unavailable")

// Snapshot is one point-in-time record of collected metrics plus the
// warnings derived from them. Once written to the log it is never mutated.
type Snapshot struct {
	Timestamp        time.Time `json:"timestamp"`
	OSName           string    `json:"os_name"`
	OSVersion        string    `json:"os_version"`
	OSArch           string    `json:"os_arch"`
	CPUCores         int       `json:"cpu_cores"`
	CPUPhysicalCores int       `json:"cpu_physical_cores"`
	RAMTotalMB       float64   `json:"ram_total_mb"`
	RAMAvailableMB   float64   `json:"ram_available_mb"`
	RAMPercentUsed   float64   `json:"ram_percent_used"`
	DiskPath         string    `json:"disk_path"`
	DiskTotalGB      float64   `json:"disk_total_gb"`
	DiskUsedGB       float64   `json:"disk_used_gb"`
	DiskFreeGB       float64   `json:"disk_free_gb"`
	DiskPercentUsed  float64   `json:"disk_percent_used"`
	Warnings         []string  `json:"warnings"`
}

// Collect queries the host for OS identity, CPU core counts, virtual memory
// and root-disk usage. Any single failed query aborts the whole collection;
// there is no retry. The returned snapshot has an empty (non-nil) Warnings
// slice — the evaluator fills it.
func Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Timestamp: time.Now().Truncate(time.Second),
		OSArch:    runtime.GOARCH,
		Warnings:  []string{},
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, queryError("host info", err)
	}
	snap.OSName = info.Platform
	snap.OSVersion = info.PlatformVersion
	if snap.OSName == "" {
		snap.OSName = info.OS
	}

	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, queryError("logical cpu count", err)
	}
	snap.CPUCores = logical

	// Physical core count is unavailable on some platforms; fall back to
	// the logical count rather than failing the run.
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil || physical == 0 {
		physical = logical
	}
	snap.CPUPhysicalCores = physical

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, queryError("virtual memory", err)
	}
	snap.RAMTotalMB = bytesToMB(vm.Total)
	snap.RAMAvailableMB = bytesToMB(vm.Available)
	snap.RAMPercentUsed = round2(vm.UsedPercent)

	snap.DiskPath = RootDiskPath()
	du, err := disk.UsageWithContext(ctx, snap.DiskPath)
	if err != nil {
		return nil, queryError("disk usage", err)
	}
	snap.DiskTotalGB = bytesToGB(du.Total)
	snap.DiskUsedGB = bytesToGB(du.Used)
	snap.DiskFreeGB = bytesToGB(du.Free)
	snap.DiskPercentUsed = round2(du.UsedPercent)

	return snap, nil
}

// RootDiskPath returns the filesystem path whose usage is checked: the
// current drive root on Windows, "/" everywhere else.
func RootDiskPath() string {
	if runtime.GOOS == "windows" {
		if wd, err := os.Getwd(); err == nil {
			if vol := filepath.VolumeName(wd); vol != "" {
				return vol + `\`
			}
		}
		return `C:\`
	}
	return "/"
}

func queryError(what string, err error) error {
	return fmt.Errorf("failed to query %s: %w: %v", what, ErrPlatformUnavailable, err)
}

func bytesToMB(n uint64) float64 {
	return round2(float64(n) / (1024 * 1024))
}

func bytesToGB(n uint64) float64 {
	return round2(float64(n) / (1024 * 1024 * 1024))
}

// round2 rounds to two decimal places, matching the precision the log file
// has always recorded.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
