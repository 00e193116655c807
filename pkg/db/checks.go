// Package db pkg/db/checks.go
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/monitorai/screenwatch/pkg/models"
)

func (db *DB) CreateCheck(check *models.Check) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}
	defer func() { rollbackOnError(tx, err) }()

	var result sql.Result

	result, err = tx.Exec(`
        INSERT INTO checks (screen_id, is_successful) VALUES (?, ?)
    `, check.ScreenID, check.IsSuccessful)
	if err != nil {
		err = fmt.Errorf("%w check: %w", errFailedToInsert, err)
		return 0, err
	}

	var id int64

	id, err = result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, fileID := range check.FrameIDs {
		if _, err = tx.Exec(`
            INSERT OR IGNORE INTO check_frames (check_id, file_id) VALUES (?, ?)
        `, id, fileID); err != nil {
			err = fmt.Errorf("%w check frame: %w", errFailedToInsert, err)
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

func (db *DB) GetCheck(id int64) (*models.Check, error) {
	row := db.QueryRow(`
        SELECT id, screen_id, is_successful, created_at FROM checks WHERE id = ?
    `, id)

	check := &models.Check{}

	var successful sql.NullBool

	err := row.Scan(&check.ID, &check.ScreenID, &successful, &check.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w check: %w", errFailedToScan, err)
	}

	if successful.Valid {
		v := successful.Bool
		check.IsSuccessful = &v
	}

	frames, err := db.checkFrameIDs(id)
	if err != nil {
		return nil, err
	}

	check.FrameIDs = frames

	return check, nil
}

func (db *DB) SetCheckOutcome(checkID int64, successful bool) error {
	result, err := db.Exec(`
        UPDATE checks SET is_successful = ? WHERE id = ?
    `, successful, checkID)
	if err != nil {
		return fmt.Errorf("%w check outcome: %w", errFailedToUpdate, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w check outcome: %w", errFailedToUpdate, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListSupersededFrameIDs returns the frame file IDs of every check for the
// screen except the excluded one. Checks without frames contribute nothing.
func (db *DB) ListSupersededFrameIDs(screenID, excludeCheckID int64) ([]string, error) {
	rows, err := db.Query(`
        SELECT DISTINCT cf.file_id
        FROM check_frames cf
        JOIN checks c ON c.id = cf.check_id
        WHERE c.screen_id = ? AND c.id != ?
    `, screenID, excludeCheckID)
	if err != nil {
		return nil, fmt.Errorf("%w superseded frames: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w frame id: %w", errFailedToScan, err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// DeleteFrameLinks removes check-frame join rows for purged frame files.
// The check records themselves are retained.
func (db *DB) DeleteFrameLinks(fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(fileIDs)), ",")
	args := make([]interface{}, 0, len(fileIDs))

	for _, id := range fileIDs {
		args = append(args, id)
	}

	query := fmt.Sprintf("DELETE FROM check_frames WHERE file_id IN (%s)", placeholders)

	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w frame links: %w", errFailedToDelete, err)
	}

	return nil
}

func (db *DB) checkFrameIDs(checkID int64) ([]string, error) {
	rows, err := db.Query(`
        SELECT file_id FROM check_frames WHERE check_id = ? ORDER BY file_id
    `, checkID)
	if err != nil {
		return nil, fmt.Errorf("%w check frames: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w check frame: %w", errFailedToScan, err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
