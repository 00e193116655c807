// Package db pkg/db/screens.go
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/monitorai/screenwatch/pkg/models"
)

func (db *DB) CreateScreen(screen *models.Screen) (int64, error) {
	result, err := db.Exec(`
        INSERT INTO screens (installation_code, address, status, assigned_user_id, company_id)
        VALUES (?, ?, ?, ?, ?)
    `, screen.InstallationCode, screen.Address, screen.Status, screen.AssignedUserID, screen.CompanyID)
	if err != nil {
		return 0, fmt.Errorf("%w screen: %w", errFailedToInsert, err)
	}

	return result.LastInsertId()
}

func (db *DB) GetScreen(id int64) (*models.Screen, error) {
	row := db.QueryRow(`
        SELECT id, installation_code, address, status, assigned_user_id, company_id,
               uptime_percent, streak_notified, created_at
        FROM screens
        WHERE id = ?
    `, id)

	return scanScreen(row)
}

func (db *DB) ListScreens() ([]models.Screen, error) {
	rows, err := db.Query(`
        SELECT id, installation_code, address, status, assigned_user_id, company_id,
               uptime_percent, streak_notified, created_at
        FROM screens
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("%w screens: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var screens []models.Screen

	for rows.Next() {
		screen, err := scanScreenRows(rows)
		if err != nil {
			return nil, err
		}

		screens = append(screens, *screen)
	}

	return screens, rows.Err()
}

// ListPingTargets returns the active screens with a non-empty network
// address, each annotated with its historyLimit most recent ping results,
// newest first.
func (db *DB) ListPingTargets(historyLimit int) ([]models.PingTarget, error) {
	rows, err := db.Query(`
        SELECT id, installation_code, address, status, assigned_user_id, company_id,
               uptime_percent, streak_notified, created_at
        FROM screens
        WHERE status = 'active' AND address != ''
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("%w ping targets: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var targets []models.PingTarget

	for rows.Next() {
		screen, err := scanScreenRows(rows)
		if err != nil {
			return nil, err
		}

		targets = append(targets, models.PingTarget{Screen: *screen})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w ping targets: %w", errFailedToQuery, err)
	}

	for i := range targets {
		recent, err := db.recentPingResults(targets[i].Screen.ID, historyLimit)
		if err != nil {
			return nil, err
		}

		targets[i].RecentResults = recent
	}

	return targets, nil
}

func (db *DB) recentPingResults(screenID int64, limit int) ([]bool, error) {
	rows, err := db.Query(`
        SELECT up FROM pings
        WHERE screen_id = ?
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `, screenID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w recent pings: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var results []bool

	for rows.Next() {
		var up bool
		if err := rows.Scan(&up); err != nil {
			return nil, fmt.Errorf("%w recent ping: %w", errFailedToScan, err)
		}

		results = append(results, up)
	}

	return results, rows.Err()
}

// ListScreenIDsWithSamples returns the screens that have at least one
// historical ping sample.
func (db *DB) ListScreenIDsWithSamples() ([]int64, error) {
	rows, err := db.Query(`SELECT DISTINCT screen_id FROM pings ORDER BY screen_id`)
	if err != nil {
		return nil, fmt.Errorf("%w screens with samples: %w", errFailedToQuery, err)
	}
	defer closeRows(rows)

	var ids []int64

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w screen id: %w", errFailedToScan, err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (db *DB) UpdateScreenUptime(screenID int64, percent int) error {
	if _, err := db.Exec(`
        UPDATE screens SET uptime_percent = ? WHERE id = ?
    `, percent, screenID); err != nil {
		return fmt.Errorf("%w screen uptime: %w", errFailedToUpdate, err)
	}

	return nil
}

func (db *DB) SetScreenStreakNotified(screenID int64, notified bool) error {
	if _, err := db.Exec(`
        UPDATE screens SET streak_notified = ? WHERE id = ?
    `, notified, screenID); err != nil {
		return fmt.Errorf("%w screen streak marker: %w", errFailedToUpdate, err)
	}

	return nil
}

// GetScreenContacts resolves the assigned technician and the owning
// company's manager for a screen. Missing links yield nil recipients.
func (db *DB) GetScreenContacts(screenID int64) (*models.ScreenContacts, error) {
	row := db.QueryRow(`
        SELECT s.id, ru.email, ru.telegram_id, mu.email, mu.telegram_id
        FROM screens s
        LEFT JOIN users ru ON ru.id = s.assigned_user_id
        LEFT JOIN companies c ON c.id = s.company_id
        LEFT JOIN users mu ON mu.id = c.manager_id
        WHERE s.id = ?
    `, screenID)

	contacts := &models.ScreenContacts{}

	var respEmail, respTg, mgrEmail, mgrTg sql.NullString

	err := row.Scan(&contacts.ScreenID, &respEmail, &respTg, &mgrEmail, &mgrTg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w screen contacts: %w", errFailedToScan, err)
	}

	contacts.Responsible = recipientFromNull(respEmail, respTg)
	contacts.Manager = recipientFromNull(mgrEmail, mgrTg)

	return contacts, nil
}

func recipientFromNull(email, telegramID sql.NullString) *models.Recipient {
	if !email.Valid && !telegramID.Valid {
		return nil
	}

	r := &models.Recipient{Email: email.String, TelegramID: telegramID.String}
	if r.Empty() {
		return nil
	}

	return r
}

func scanScreen(row *sql.Row) (*models.Screen, error) {
	screen := &models.Screen{}

	var assignedUser, company sql.NullInt64

	err := row.Scan(&screen.ID, &screen.InstallationCode, &screen.Address, &screen.Status,
		&assignedUser, &company, &screen.UptimePercent, &screen.StreakNotified, &screen.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w screen: %w", errFailedToScan, err)
	}

	applyScreenRefs(screen, assignedUser, company)

	return screen, nil
}

func scanScreenRows(rows *sql.Rows) (*models.Screen, error) {
	screen := &models.Screen{}

	var assignedUser, company sql.NullInt64

	if err := rows.Scan(&screen.ID, &screen.InstallationCode, &screen.Address, &screen.Status,
		&assignedUser, &company, &screen.UptimePercent, &screen.StreakNotified, &screen.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w screen: %w", errFailedToScan, err)
	}

	applyScreenRefs(screen, assignedUser, company)

	return screen, nil
}

func applyScreenRefs(screen *models.Screen, assignedUser, company sql.NullInt64) {
	if assignedUser.Valid {
		id := assignedUser.Int64
		screen.AssignedUserID = &id
	}

	if company.Valid {
		id := company.Int64
		screen.CompanyID = &id
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}
