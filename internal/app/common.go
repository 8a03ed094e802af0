package app

import (
	"context"

	"github.com/sleepyhugo/hardware-health-checker/internal/checks"
	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// collect is the collector entry point; a package variable so tests can
// substitute a fake collector.
var collect = sysinfo.Collect

// loadThresholds reads the optional thresholds config file, falling back to
// the defaults when the config dir cannot be resolved or the file is
// unreadable.
func loadThresholds() checks.Thresholds {
	dir, err := checks.ConfigDir()
	if err != nil {
		return checks.Defaults()
	}

	t, err := checks.Load(dir)
	if err != nil {
		return checks.Defaults()
	}
	return t
}

// takeSnapshot collects metrics and evaluates the thresholds against them.
func takeSnapshot(ctx context.Context, t checks.Thresholds) (*sysinfo.Snapshot, error) {
	snap, err := collect(ctx)
	if err != nil {
		return nil, err
	}
	snap.Warnings = checks.Evaluate(snap, t)
	return snap, nil
}
