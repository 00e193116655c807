// Package db pkg/db/files.go
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/monitorai/screenwatch/pkg/models"
)

func (db *DB) CreateFile(file *models.File) error {
	if _, err := db.Exec(`
        INSERT INTO files (id, name, folder) VALUES (?, ?, ?)
    `, file.ID, file.Name, file.Folder); err != nil {
		return fmt.Errorf("%w file: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) GetFile(id string) (*models.File, error) {
	row := db.QueryRow(`
        SELECT id, name, folder, created_at FROM files WHERE id = ?
    `, id)

	file := &models.File{}

	err := row.Scan(&file.ID, &file.Name, &file.Folder, &file.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w file: %w", errFailedToScan, err)
	}

	return file, nil
}

func (db *DB) SetFileFolders(ids []string, folder string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders, args := idArgs(ids)
	args = append([]interface{}{folder}, args...)

	query := fmt.Sprintf("UPDATE files SET folder = ? WHERE id IN (%s)", placeholders)

	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w file folders: %w", errFailedToUpdate, err)
	}

	return nil
}

// ListFileIDsInFolder filters the given IDs down to those currently placed
// in the folder.
func (db *DB) ListFileIDsInFolder(ids []string, folder string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders, args := idArgs(ids)
	args = append(args, folder)

	query := fmt.Sprintf("SELECT id FROM files WHERE id IN (%s) AND folder = ?", placeholders)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w files in folder: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var found []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w file id: %w", errFailedToScan, err)
		}

		found = append(found, id)
	}

	return found, rows.Err()
}

func (db *DB) DeleteFiles(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders, args := idArgs(ids)
	query := fmt.Sprintf("DELETE FROM files WHERE id IN (%s)", placeholders)

	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w files: %w", errFailedToDelete, err)
	}

	return nil
}

func idArgs(ids []string) (placeholders string, args []interface{}) {
	placeholders = strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args = make([]interface{}, 0, len(ids))

	for _, id := range ids {
		args = append(args, id)
	}

	return placeholders, args
}
