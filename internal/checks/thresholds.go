package checks

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ConfigFileName is the name of the optional thresholds file inside the
// hwcheck config directory.
const ConfigFileName = "thresholds"

// ConfigDir returns the hwcheck config directory, respecting
// XDG_CONFIG_HOME. Defaults to ~/.config/hwcheck if XDG_CONFIG_HOME is not
// set.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "hwcheck"), nil
}

// Load reads the thresholds file at {dir}/thresholds and returns the parsed
// thresholds, starting from the defaults. If the file does not exist, the
// defaults are returned without an error. Invalid or malformed lines are
// silently skipped.
//
// File format, one "key = value" per line:
//
//	# percent of disk considered too full
//	disk_percent_max = 90
//	ram_available_min_mb = 1024
func Load(dir string) (Thresholds, error) {
	t := Defaults()

	path := filepath.Join(dir, ConfigFileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])

		n, err := strconv.ParseFloat(val, 64)
		if err != nil || n < 0 {
			continue
		}

		switch key {
		case "disk_percent_max":
			t.DiskPercentMax = n
		case "ram_available_min_mb":
			t.RAMAvailableMinMB = n
		}
	}

	if err := scanner.Err(); err != nil {
		return t, err
	}

	return t, nil
}
