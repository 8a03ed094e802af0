package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sleepyhugo/hardware-health-checker/internal/sysinfo"
)

// InsertCheck indexes a snapshot: one row in checks plus one row per
// warning, in a single transaction.
func (s *Store) InsertCheck(snap *sysinfo.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO checks
		(timestamp, os_name, os_version, cpu_cores, ram_total_mb, ram_available_mb,
		 ram_percent_used, disk_total_gb, disk_free_gb, disk_percent_used, warning_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		snap.Timestamp.UTC().Format(time.RFC3339),
		snap.OSName,
		snap.OSVersion,
		snap.CPUCores,
		snap.RAMTotalMB,
		snap.RAMAvailableMB,
		snap.RAMPercentUsed,
		snap.DiskTotalGB,
		snap.DiskFreeGB,
		snap.DiskPercentUsed,
		len(snap.Warnings),
	)
	if err != nil {
		return wrapQueryErr("insert check", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get check id: %w", err)
	}

	for i, msg := range snap.Warnings {
		if _, err := tx.Exec(
			`INSERT INTO check_warnings (check_id, position, message) VALUES (?, ?, ?)`,
			id, i, msg,
		); err != nil {
			return wrapQueryErr("insert warning", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit check: %w", err)
	}

	return nil
}

// RecentChecks returns the newest `limit` checks in chronological order.
func (s *Store) RecentChecks(limit int) ([]CheckRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, os_name, os_version, cpu_cores, ram_total_mb,
		       ram_available_mb, ram_percent_used, disk_total_gb, disk_free_gb,
		       disk_percent_used, warning_count
		FROM (
			SELECT * FROM checks ORDER BY id DESC LIMIT ?
		)
		ORDER BY id ASC
	`, limit)
	if err != nil {
		return nil, wrapQueryErr("list recent checks", err)
	}
	defer rows.Close()

	var records []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		var ts string

		err := rows.Scan(
			&rec.ID,
			&ts,
			&rec.OSName,
			&rec.OSVersion,
			&rec.CPUCores,
			&rec.RAMTotalMB,
			&rec.RAMAvailableMB,
			&rec.RAMPercentUsed,
			&rec.DiskTotalGB,
			&rec.DiskFreeGB,
			&rec.DiskPercentUsed,
			&rec.WarningCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}

		rec.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse check timestamp: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checks: %w", err)
	}

	return records, nil
}

// Warnings returns the warning messages of a check in recorded order.
func (s *Store) Warnings(checkID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT message FROM check_warnings WHERE check_id = ? ORDER BY position`,
		checkID,
	)
	if err != nil {
		return nil, wrapQueryErr("list warnings", err)
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("failed to scan warning row: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating warnings: %w", err)
	}

	return messages, nil
}

// Summary aggregates the checks recorded in the last `days` days.
// days <= 0 aggregates the whole history.
func (s *Store) Summary(days int) (*Summary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(disk_percent_used), 0),
		       COALESCE(MAX(disk_percent_used), 0),
		       COALESCE(AVG(ram_percent_used), 0),
		       COALESCE(MIN(ram_available_mb), 0),
		       COALESCE(SUM(warning_count), 0)
		FROM checks
	`
	args := []any{}
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339))
	}

	var sum Summary
	err := s.db.QueryRow(query, args...).Scan(
		&sum.Checks,
		&sum.AvgDiskPercent,
		&sum.MaxDiskPercent,
		&sum.AvgRAMPercent,
		&sum.MinRAMAvailMB,
		&sum.TotalWarnings,
	)
	if err != nil {
		return nil, wrapQueryErr("summarize checks", err)
	}

	return &sum, nil
}

// CountChecks returns the number of indexed checks.
func (s *Store) CountChecks() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM checks`).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, wrapQueryErr("count checks", err)
	}
	return count, nil
}

// Reset deletes all indexed checks. Used by reindex before replaying the
// JSON log.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM checks`); err != nil {
		return wrapQueryErr("reset index", err)
	}
	return nil
}
