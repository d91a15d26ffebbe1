// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and verifies the connection.
// dbType is "postgres" or "sqlite".
func Open(dbType, url string) (*sql.DB, error) {
	driver := dbType
	if dbType == "sqlite" {
		url = withBusyTimeout(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// SQLite allows one writer; a single connection turns lock contention
	// into queueing in the pool instead of SQLITE_BUSY errors.
	if dbType == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

func withBusyTimeout(url string) string {
	if strings.Contains(url, "busy_timeout") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	// One statement per Exec: lib/pq accepts batches but not every driver does
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Plain SQL that both PostgreSQL and SQLite accept.
// Timestamps are always written by the application in UTC.
const schema = `
-- Visits: one fortune per device per civil day
CREATE TABLE IF NOT EXISTS visit (
    id TEXT PRIMARY KEY,
    device_id TEXT NOT NULL,
    visit_date TEXT NOT NULL,
    fortune TEXT NOT NULL,
    device_info TEXT,
    ip_address TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (device_id, visit_date)
);

CREATE INDEX IF NOT EXISTS idx_visit_created_at ON visit(created_at);
CREATE INDEX IF NOT EXISTS idx_visit_date_network ON visit(visit_date, ip_address, device_info);
`
