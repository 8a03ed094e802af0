package checks

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

func healthySnapshot() *sysinfo.Snapshot {
	return &sysinfo.Snapshot{
		RAMAvailableMB:  8192,
		DiskPercentUsed: 40,
	}
}

func TestEvaluate_HealthySystem_NoWarnings(t *testing.T) {
	warnings := Evaluate(healthySnapshot(), Defaults())

	if warnings == nil {
		t.Fatal("Evaluate() should return an empty slice, not nil")
	}
	if len(warnings) != 0 {
		t.Errorf("Evaluate() = %v; want no warnings", warnings)
	}
}

func TestEvaluate_HighDiskUsage(t *testing.T) {
	snap := healthySnapshot()
	snap.DiskPercentUsed = 95

	warnings := Evaluate(snap, Defaults())

	if len(warnings) != 1 {
		t.Fatalf("Evaluate() = %v; want exactly one warning", warnings)
	}
	if warnings[0] != "High disk usage: 95%" {
		t.Errorf("Evaluate() warning = %q; want %q", warnings[0], "High disk usage: 95%")
	}
}

func TestEvaluate_DiskAtThreshold_Trips(t *testing.T) {
	snap := healthySnapshot()
	snap.DiskPercentUsed = DefaultDiskPercentMax

	warnings := Evaluate(snap, Defaults())

	if len(warnings) != 1 {
		t.Errorf("Evaluate() at exactly %.0f%% disk = %v; want one warning",
			DefaultDiskPercentMax, warnings)
	}
}

func TestEvaluate_LowAvailableRAM(t *testing.T) {
	snap := healthySnapshot()
	snap.RAMAvailableMB = 512

	warnings := Evaluate(snap, Defaults())

	if len(warnings) != 1 {
		t.Fatalf("Evaluate() = %v; want exactly one warning", warnings)
	}
	if warnings[0] != "Low available RAM: 512 MB" {
		t.Errorf("Evaluate() warning = %q; want %q", warnings[0], "Low available RAM: 512 MB")
	}
}

// Both conditions tripped: disk warning comes first, then RAM. The order is
// part of the contract — the log and the report preserve it.
func TestEvaluate_BothTripped_FixedOrder(t *testing.T) {
	snap := healthySnapshot()
	snap.DiskPercentUsed = 97
	snap.RAMAvailableMB = 100

	warnings := Evaluate(snap, Defaults())

	want := []string{"High disk usage: 97%", "Low available RAM: 100 MB"}
	if !reflect.DeepEqual(warnings, want) {
		t.Errorf("Evaluate() = %v; want %v", warnings, want)
	}
}

// Evaluate is a pure function: same input, same output, and the snapshot's
// metric fields are untouched.
func TestEvaluate_Deterministic(t *testing.T) {
	snap := healthySnapshot()
	snap.DiskPercentUsed = 90

	first := Evaluate(snap, Defaults())
	second := Evaluate(snap, Defaults())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate() not deterministic: %v vs %v", first, second)
	}
	if snap.DiskPercentUsed != 90 {
		t.Errorf("Evaluate() mutated the snapshot: disk = %v", snap.DiskPercentUsed)
	}
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	snap := healthySnapshot()
	snap.DiskPercentUsed = 60
	snap.RAMAvailableMB = 8192

	custom := Thresholds{DiskPercentMax: 50, RAMAvailableMinMB: 10000}
	warnings := Evaluate(snap, custom)

	want := []string{"High disk usage: 60%", "Low available RAM: 8192 MB"}
	if !reflect.DeepEqual(warnings, want) {
		t.Errorf("Evaluate() with custom thresholds = %v; want %v", warnings, want)
	}
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if got != Defaults() {
		t.Errorf("Load() = %+v; want defaults %+v", got, Defaults())
	}
}

func TestLoad_ParsesValuesAndSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	content := `# hwcheck thresholds
disk_percent_max = 92.5

this line is junk
= 7
ram_available_min_mb = 1024
unknown_key = 3
ram_available_min_mb = not-a-number
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write thresholds file: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got.DiskPercentMax != 92.5 {
		t.Errorf("DiskPercentMax = %v; want 92.5", got.DiskPercentMax)
	}
	if got.RAMAvailableMinMB != 1024 {
		t.Errorf("RAMAvailableMinMB = %v; want 1024 (malformed later line must be skipped)", got.RAMAvailableMinMB)
	}
}

func TestConfigDir_RespectsXDGConfigHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() failed: %v", err)
	}
	if dir != filepath.Join(base, "hwcheck") {
		t.Errorf("ConfigDir() = %q; want %q", dir, filepath.Join(base, "hwcheck"))
	}
}
