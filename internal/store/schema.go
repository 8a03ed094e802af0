package store

const schema = `
CREATE TABLE IF NOT EXISTS checks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TIMESTAMP NOT NULL,
    os_name TEXT,
    os_version TEXT,
    cpu_cores INTEGER,
    ram_total_mb REAL,
    ram_available_mb REAL,
    ram_percent_used REAL,
    disk_total_gb REAL,
    disk_free_gb REAL,
    disk_percent_used REAL,
    warning_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS check_warnings (
    check_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    message TEXT NOT NULL,
    PRIMARY KEY (check_id, position),
    FOREIGN KEY (check_id) REFERENCES checks(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_checks_timestamp ON checks(timestamp);
CREATE INDEX IF NOT EXISTS idx_check_warnings_check ON check_warnings(check_id);
`
