// Package history persists check snapshots to the JSON log file.
//
// The log is a single UTF-8 JSON array of snapshots, insertion order =
// chronological. Appends are read-modify-write, but the rewrite goes through
// a temp file and an atomic rename so a crash mid-write can never corrupt
// entries that were already on disk.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// ErrCorruptLog is wrapped when the existing log file cannot be parsed as a
// JSON array of snapshots. The file is never silently overwritten.
var ErrCorruptLog = errors.New("log file is not a valid snapshot array")

// ErrEmptyLog is returned by Latest when no check has been recorded yet.
var ErrEmptyLog = errors.New("no log entries found yet")

// Log is a handle to the JSON log file at a fixed path.
type Log struct {
	path string
}

// New returns a Log for the given file path. The file is not touched until
// the first Read or Append.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Read returns all snapshots in insertion order. A missing file is an empty
// log, not an error.
func (l *Log) Read() ([]sysinfo.Snapshot, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []sysinfo.Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read log file %s: %w", l.path, err)
	}

	var entries []sysinfo.Snapshot
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse log file %s: %w: %v", l.path, ErrCorruptLog, err)
	}
	if entries == nil {
		// A "null" document unmarshals into a nil slice without error.
		return nil, fmt.Errorf("failed to parse log file %s: %w: document is null, not an array", l.path, ErrCorruptLog)
	}

	return entries, nil
}

// Append reads the existing entries, appends the snapshot and writes the
// whole array back via a temp file + rename. A corrupt existing file fails
// the append and is left untouched.
func (l *Log) Append(snap *sysinfo.Snapshot) error {
	entries, err := l.Read()
	if err != nil {
		return err
	}

	entries = append(entries, *snap)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal log entries: %w", err)
	}
	data = append(data, '\n')

	return l.writeAtomic(data)
}

// Latest returns the most recent snapshot, or ErrEmptyLog.
func (l *Log) Latest() (*sysinfo.Snapshot, error) {
	entries, err := l.Read()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyLog
	}
	return &entries[len(entries)-1], nil
}

// writeAtomic writes data to a temp file in the log's directory and renames
// it over the log path. Rename within one directory is atomic on POSIX
// filesystems, so readers see either the old array or the new one.
func (l *Log) writeAtomic(data []byte) error {
	dir := filepath.Dir(l.path)

	tmp, err := os.CreateTemp(dir, ".hardware_log-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp log file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp log file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp log file: %w", err)
	}

	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace log file %s: %w", l.path, err)
	}

	return nil
}
