// Package db pkg/db/incidents.go
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/monitorai/screenwatch/pkg/models"
)

// CreateIncident inserts a new incident together with its extra photo links.
// The partial unique index on open incidents makes the store the final
// arbiter of the one-open-incident-per-screen invariant; a losing insert
// surfaces ErrOpenIncidentExists.
func (db *DB) CreateIncident(incident *models.Incident) (int64, error) {
	defects, err := json.Marshal(incident.DefectTypes)
	if err != nil {
		return 0, fmt.Errorf("%w incident defects: %w", errFailedToInsert, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}
	// err must be evaluated when the deferred call runs, not here, or a
	// failed insert leaks the transaction and its write lock.
	defer func() { rollbackOnError(tx, err) }()

	var result sql.Result

	result, err = tx.Exec(`
        INSERT INTO incidents (screen_id, status, defect_types, defect_photo, responsible_id, next_action)
        VALUES (?, ?, ?, ?, ?, ?)
    `, incident.ScreenID, incident.Status, string(defects), incident.DefectPhoto,
		incident.ResponsibleID, incident.NextAction)
	if err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("%w: screen %d", ErrOpenIncidentExists, incident.ScreenID)
			return 0, err
		}

		err = fmt.Errorf("%w incident: %w", errFailedToInsert, err)

		return 0, err
	}

	var id int64

	id, err = result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, fileID := range incident.ExtraPhotos {
		if _, err = tx.Exec(`
            INSERT OR IGNORE INTO incident_photos (incident_id, file_id) VALUES (?, ?)
        `, id, fileID); err != nil {
			err = fmt.Errorf("%w incident photo: %w", errFailedToInsert, err)
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}

func (db *DB) GetIncident(id int64) (*models.Incident, error) {
	row := db.QueryRow(`
        SELECT id, screen_id, status, defect_types, defect_photo, responsible_id,
               next_action, created_at, repairs_started_at, closed_at
        FROM incidents
        WHERE id = ?
    `, id)

	incident, err := scanIncident(row.Scan)
	if err != nil {
		return nil, err
	}

	photos, err := db.incidentPhotoIDs(id)
	if err != nil {
		return nil, err
	}

	incident.ExtraPhotos = photos

	return incident, nil
}

func (db *DB) ListIncidents() ([]models.Incident, error) {
	return db.queryIncidents(`
        SELECT id, screen_id, status, defect_types, defect_photo, responsible_id,
               next_action, created_at, repairs_started_at, closed_at
        FROM incidents
        ORDER BY id DESC
    `)
}

// ListOpenIncidents returns the incidents for a screen whose status is not
// resolved. The dedup invariant caps this at one row, but the caller still
// receives a slice so merge logic can inspect whatever exists.
func (db *DB) ListOpenIncidents(screenID int64) ([]models.Incident, error) {
	return db.queryIncidents(`
        SELECT id, screen_id, status, defect_types, defect_photo, responsible_id,
               next_action, created_at, repairs_started_at, closed_at
        FROM incidents
        WHERE screen_id = ? AND status != 'resolved'
        ORDER BY id
    `, screenID)
}

func (db *DB) queryIncidents(query string, args ...interface{}) ([]models.Incident, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w incidents: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var incidents []models.Incident

	for rows.Next() {
		incident, err := scanIncident(rows.Scan)
		if err != nil {
			return nil, err
		}

		incidents = append(incidents, *incident)
	}

	return incidents, rows.Err()
}

// UpdateIncident persists the mutable incident fields: status, timestamps,
// responsible, defect photo and the client next-action hint.
func (db *DB) UpdateIncident(incident *models.Incident) error {
	defects, err := json.Marshal(incident.DefectTypes)
	if err != nil {
		return fmt.Errorf("%w incident defects: %w", errFailedToUpdate, err)
	}

	result, err := db.Exec(`
        UPDATE incidents
        SET status = ?, defect_types = ?, defect_photo = ?, responsible_id = ?,
            next_action = ?, repairs_started_at = ?, closed_at = ?
        WHERE id = ?
    `, incident.Status, string(defects), incident.DefectPhoto, incident.ResponsibleID,
		incident.NextAction, incident.RepairsStartedAt, incident.ClosedAt, incident.ID)
	if err != nil {
		return fmt.Errorf("%w incident: %w", errFailedToUpdate, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w incident: %w", errFailedToUpdate, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (db *DB) UpdateIncidentsStatus(ids []int64, status models.IncidentStatus) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, status)

	for _, id := range ids {
		args = append(args, id)
	}

	extra := ""
	if status == models.StatusResolved {
		extra = ", closed_at = CURRENT_TIMESTAMP"
	}

	query := fmt.Sprintf("UPDATE incidents SET status = ?%s WHERE id IN (%s)", extra, placeholders)

	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w incidents status: %w", errFailedToUpdate, err)
	}

	return nil
}

func (db *DB) AddIncidentPhotos(incidentID int64, fileIDs []string) error {
	for _, fileID := range fileIDs {
		if _, err := db.Exec(`
            INSERT OR IGNORE INTO incident_photos (incident_id, file_id) VALUES (?, ?)
        `, incidentID, fileID); err != nil {
			return fmt.Errorf("%w incident photo: %w", errFailedToInsert, err)
		}
	}

	return nil
}

// GetIncidentContacts resolves the responsible technician and the manager of
// the company owning the incident's screen, plus the fields needed to render
// the notification text.
func (db *DB) GetIncidentContacts(incidentID int64) (*models.IncidentContacts, error) {
	row := db.QueryRow(`
        SELECT i.id, i.defect_types, s.installation_code,
               ru.email, ru.telegram_id, mu.email, mu.telegram_id
        FROM incidents i
        JOIN screens s ON s.id = i.screen_id
        LEFT JOIN users ru ON ru.id = i.responsible_id
        LEFT JOIN companies c ON c.id = s.company_id
        LEFT JOIN users mu ON mu.id = c.manager_id
        WHERE i.id = ?
    `, incidentID)

	contacts := &models.IncidentContacts{}

	var defects string

	var respEmail, respTg, mgrEmail, mgrTg sql.NullString

	err := row.Scan(&contacts.IncidentID, &defects, &contacts.InstallationCode,
		&respEmail, &respTg, &mgrEmail, &mgrTg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w incident contacts: %w", errFailedToScan, err)
	}

	if err := json.Unmarshal([]byte(defects), &contacts.DefectTypes); err != nil {
		return nil, fmt.Errorf("%w incident defects: %w", errFailedToScan, err)
	}

	contacts.Responsible = recipientFromNull(respEmail, respTg)
	contacts.Manager = recipientFromNull(mgrEmail, mgrTg)

	return contacts, nil
}

func (db *DB) incidentPhotoIDs(incidentID int64) ([]string, error) {
	rows, err := db.Query(`
        SELECT file_id FROM incident_photos WHERE incident_id = ? ORDER BY file_id
    `, incidentID)
	if err != nil {
		return nil, fmt.Errorf("%w incident photos: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w incident photo: %w", errFailedToScan, err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanIncident(scan func(...interface{}) error) (*models.Incident, error) {
	incident := &models.Incident{}

	var defects string

	var responsible sql.NullInt64

	var repairsStartedAt, closedAt sql.NullTime

	err := scan(&incident.ID, &incident.ScreenID, &incident.Status, &defects,
		&incident.DefectPhoto, &responsible, &incident.NextAction,
		&incident.CreatedAt, &repairsStartedAt, &closedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w incident: %w", errFailedToScan, err)
	}

	if err := json.Unmarshal([]byte(defects), &incident.DefectTypes); err != nil {
		return nil, fmt.Errorf("%w incident defects: %w", errFailedToScan, err)
	}

	if responsible.Valid {
		id := responsible.Int64
		incident.ResponsibleID = &id
	}

	if repairsStartedAt.Valid {
		t := repairsStartedAt.Time
		incident.RepairsStartedAt = &t
	}

	if closedAt.Valid {
		t := closedAt.Time
		incident.ClosedAt = &t
	}

	return incident, nil
}
