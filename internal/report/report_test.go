package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

func testSnapshot() *sysinfo.Snapshot {
	return &sysinfo.Snapshot{
		Timestamp:        time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC),
		OSName:           "ubuntu",
		OSVersion:        "24.04",
		OSArch:           "amd64",
		CPUCores:         8,
		CPUPhysicalCores: 4,
		RAMTotalMB:       16384,
		RAMAvailableMB:   1843,
		RAMPercentUsed:   72.5,
		DiskPath:         "/",
		DiskTotalGB:      500,
		DiskUsedGB:       379.45,
		DiskFreeGB:       120.55,
		DiskPercentUsed:  75.9,
		Warnings:         []string{"Low available RAM: 1843 MB"},
	}
}

func TestFormat_ContainsAllSections(t *testing.T) {
	got := Format(testSnapshot())

	for _, want := range []string{
		"=== Hardware Health Report ===",
		"Timestamp: 2026-08-29T14:30:05",
		"OS: ubuntu 24.04 (amd64)",
		"CPU Cores: 4 physical / 8 logical",
		"RAM: 1843 MB available / 16384 MB total (72.5% used)",
		"Disk (/): 120.55 GB free / 500.00 GB total (75.9% used)",
		"--- Warnings ---",
		"- Low available RAM: 1843 MB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormat_NoWarnings_HealthyLine(t *testing.T) {
	snap := testSnapshot()
	snap.Warnings = []string{}

	got := Format(snap)

	if !strings.Contains(got, "No warnings. System looks healthy for basic checks.") {
		t.Errorf("Format() missing healthy line in:\n%s", got)
	}
	if strings.Contains(got, "--- Warnings ---") {
		t.Errorf("Format() should not render a warnings section when empty:\n%s", got)
	}
}

func TestExport_WritesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latest_report.txt")

	if err := Export(path, testSnapshot()); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	// A second export must fully replace the first.
	second := testSnapshot()
	second.Warnings = []string{}
	if err := Export(path, second); err != nil {
		t.Fatalf("second Export() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if string(data) != Format(second) {
		t.Errorf("report file does not match Format() output:\n%s", data)
	}
	if strings.Contains(string(data), "--- Warnings ---") {
		t.Errorf("report still holds the first export's warnings:\n%s", data)
	}
}

func TestExport_UnwritablePath_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "latest_report.txt")

	if err := Export(path, testSnapshot()); err == nil {
		t.Error("Export() to a missing directory should fail")
	}
}

func TestRenderLogTable_Empty(t *testing.T) {
	got := RenderLogTable(nil)
	if !strings.Contains(got, "No log entries found yet.") {
		t.Errorf("RenderLogTable(nil) = %q", got)
	}
}

func TestRenderLogTable_RowsInOrder(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	first := testSnapshot()
	second := testSnapshot()
	second.Timestamp = first.Timestamp.Add(time.Hour)
	second.Warnings = []string{}

	got := RenderLogTable([]sysinfo.Snapshot{*first, *second})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("RenderLogTable() = %d lines; want header + rule + 2 rows:\n%s", len(lines), got)
	}

	if !strings.Contains(lines[2], "2026-08-29 14:30:05") || !strings.HasPrefix(lines[2], "1") {
		t.Errorf("first row wrong: %q", lines[2])
	}
	if !strings.Contains(lines[3], "2026-08-29 15:30:05") || !strings.HasPrefix(lines[3], "2") {
		t.Errorf("second row wrong: %q", lines[3])
	}
	if !strings.Contains(lines[2], "75.9%") || !strings.Contains(lines[2], "72.5%") {
		t.Errorf("first row missing metric columns: %q", lines[2])
	}
}
