package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// Helper function to create an in-memory store for testing
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return s
}

func testSnapshot(n int, warnings ...string) *sysinfo.Snapshot {
	if warnings == nil {
		warnings = []string{}
	}
	return &sysinfo.Snapshot{
		Timestamp:       time.Date(2026, 8, 29, 9, 0, n, 0, time.UTC),
		OSName:          "linux",
		OSVersion:       "6.8.0",
		CPUCores:        8,
		RAMTotalMB:      16384,
		RAMAvailableMB:  float64(2000 - n*100),
		RAMPercentUsed:  float64(40 + n),
		DiskTotalGB:     500,
		DiskFreeGB:      120,
		DiskPercentUsed: float64(70 + n),
		Warnings:        warnings,
	}
}

func TestNew(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if s.db == nil {
		t.Error("Store.db should not be nil")
	}
}

func TestNew_OnDiskFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwcheck.db")

	s, err := New(path)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", path, err)
	}
	defer s.Close()

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateSchema(); err != nil {
		t.Errorf("second CreateSchema() failed: %v", err)
	}
}

// Querying a fresh database without a schema reports ErrNotInitialized so
// the CLI can suggest 'hwcheck check' instead of leaking SQL errors.
func TestQueries_NoSchema_ReturnErrNotInitialized(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Summary(0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Summary() error = %v; want errors.Is(err, ErrNotInitialized)", err)
	}
	if _, err := s.RecentChecks(5); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("RecentChecks() error = %v; want errors.Is(err, ErrNotInitialized)", err)
	}
	if err := s.InsertCheck(testSnapshot(0)); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("InsertCheck() error = %v; want errors.Is(err, ErrNotInitialized)", err)
	}
}
