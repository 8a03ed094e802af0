package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sleepyhugo/hardware-health-checker/internal/checks"
)

var (
	watchInterval time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Run checks on an interval until interrupted",
		Long: `Run a health check immediately and then every interval, appending each
snapshot to the JSON log exactly as 'hwcheck check' does.

The thresholds config file is watched for changes; edits take effect on the
next check without restarting. Stop with Ctrl+C.`,
		Example: `  # Check every ten minutes (the default)
  hwcheck watch

  # Check every 30 seconds
  hwcheck watch --interval 30s`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Minute, "time between checks")
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval <= 0 {
		return fmt.Errorf("invalid interval: %v (must be positive)", watchInterval)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()
	if cmd != nil {
		ctx = cmd.Context()
	}

	thresholds := loadThresholds()

	// Watch the config dir, not the file: editors replace the file on save
	// and a watch on the old inode would go stale.
	var configDir string
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	if dir, err := checks.ConfigDir(); err == nil {
		if err := watcher.Add(dir); err == nil {
			configDir = dir
		} else {
			logger.Warn("thresholds config dir not watchable", "dir", dir, "err", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	logger.Info("watch started", "interval", watchInterval, "log", logPath)

	runOnce := func() {
		if err := doCheckWith(ctx, thresholds); err != nil {
			logger.Error("check failed", "err", err)
		}
	}
	runOnce()

	for {
		select {
		case <-ticker.C:
			runOnce()

		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if filepath.Base(event.Name) != checks.ConfigFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if t, err := checks.Load(configDir); err == nil {
				thresholds = t
				logger.Info("thresholds reloaded",
					"disk_percent_max", t.DiskPercentMax,
					"ram_available_min_mb", t.RAMAvailableMinMB)
			} else {
				logger.Warn("thresholds reload failed", "err", err)
			}

		case err, ok := <-watcher.Errors:
			if ok {
				logger.Warn("config watcher error", "err", err)
			}

		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			return nil
		}
	}
}
