// Package db pkg/db/db.go provides SQLite storage for screenwatch.
package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	// SQL statements for database initialization.
	createTablesSQL = `
	-- Technicians and company managers
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		telegram_id TEXT NOT NULL DEFAULT ''
	);

	-- Screen-owning companies
	CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		manager_id INTEGER REFERENCES users(id)
	);

	-- Monitored display units
	CREATE TABLE IF NOT EXISTS screens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		installation_code TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		assigned_user_id INTEGER REFERENCES users(id),
		company_id INTEGER REFERENCES companies(id),
		uptime_percent INTEGER NOT NULL DEFAULT 0,
		streak_notified BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Defect incidents; rows are never deleted
	CREATE TABLE IF NOT EXISTS incidents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		screen_id INTEGER NOT NULL REFERENCES screens(id),
		status TEXT NOT NULL DEFAULT 'verification',
		defect_types TEXT NOT NULL DEFAULT '[]',
		defect_photo TEXT NOT NULL DEFAULT '',
		responsible_id INTEGER REFERENCES users(id),
		next_action TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		repairs_started_at TIMESTAMP,
		closed_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS incident_photos (
		incident_id INTEGER NOT NULL REFERENCES incidents(id) ON DELETE CASCADE,
		file_id TEXT NOT NULL,
		PRIMARY KEY (incident_id, file_id)
	);

	-- Automated inspection passes
	CREATE TABLE IF NOT EXISTS checks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		screen_id INTEGER NOT NULL REFERENCES screens(id),
		is_successful BOOLEAN,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS check_frames (
		check_id INTEGER NOT NULL REFERENCES checks(id) ON DELETE CASCADE,
		file_id TEXT NOT NULL,
		PRIMARY KEY (check_id, file_id)
	);

	-- Reachability samples; append-only
	CREATE TABLE IF NOT EXISTS pings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		screen_id INTEGER NOT NULL REFERENCES screens(id),
		up BOOLEAN NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Asset registry
	CREATE TABLE IF NOT EXISTS files (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		folder TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- At most one incident per screen may be open at a time; the store
	-- is the arbiter so near-simultaneous creates collapse to one row.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_incidents_open_screen
		ON incidents(screen_id) WHERE status != 'resolved';

	CREATE INDEX IF NOT EXISTS idx_incidents_screen_status
		ON incidents(screen_id, status);
	CREATE INDEX IF NOT EXISTS idx_pings_screen_time
		ON pings(screen_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_checks_screen
		ON checks(screen_id);
	CREATE INDEX IF NOT EXISTS idx_files_folder
		ON files(folder);

	PRAGMA foreign_keys=ON;
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

func rollbackOnError(tx *sql.Tx, err error) {
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error rolling back transaction: %v", rbErr)
		}
	}
}
