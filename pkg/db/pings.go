// Package db pkg/db/pings.go
package db

import (
	"fmt"
	"time"

	"github.com/monitorai/screenwatch/pkg/models"
)

// SavePingSamples appends one monitoring cycle's results as a single batch.
func (db *DB) SavePingSamples(samples []models.PingSample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}
	defer func() { rollbackOnError(tx, err) }()

	for _, sample := range samples {
		ts := sample.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}

		if _, err = tx.Exec(`
            INSERT INTO pings (screen_id, up, timestamp) VALUES (?, ?, ?)
        `, sample.ScreenID, sample.Up, ts); err != nil {
			err = fmt.Errorf("%w ping sample: %w", errFailedToInsert, err)
			return err
		}
	}

	return tx.Commit()
}

// CountPingSamples returns the up and total sample counts for a screen since
// the given time.
func (db *DB) CountPingSamples(screenID int64, since time.Time) (up, total int, err error) {
	row := db.QueryRow(`
        SELECT COALESCE(SUM(up), 0), COUNT(*)
        FROM pings
        WHERE screen_id = ? AND timestamp >= ?
    `, screenID, since)

	if err := row.Scan(&up, &total); err != nil {
		return 0, 0, fmt.Errorf("%w ping counts: %w", errFailedToScan, err)
	}

	return up, total, nil
}
