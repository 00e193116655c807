// Package db pkg/db/errors.go
package db

import "errors"

var (
	// ErrDatabaseError is the generic wrapped failure for store I/O.
	ErrDatabaseError = errors.New("database error")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrOpenIncidentExists is surfaced when the open-incident uniqueness
	// constraint rejects a second non-resolved incident for a screen.
	ErrOpenIncidentExists = errors.New("open incident already exists for screen")

	errFailedToBeginTx   = errors.New("failed to begin transaction")
	errFailedToQuery     = errors.New("failed to query")
	errFailedToScan      = errors.New("failed to scan")
	errFailedToInsert    = errors.New("failed to insert")
	errFailedToUpdate    = errors.New("failed to update")
	errFailedToDelete    = errors.New("failed to delete")
	errFailedToInit      = errors.New("failed to initialize schema")
	errFailedToEnableWAL = errors.New("failed to enable WAL mode")
	errFailedOpenDB      = errors.New("failed to open database")
)
