// Package db pkg/db/directory.go
package db

import (
	"fmt"

	"github.com/monitorai/screenwatch/pkg/models"
)

func (db *DB) CreateUser(user *models.User) (int64, error) {
	result, err := db.Exec(`
        INSERT INTO users (name, email, telegram_id) VALUES (?, ?, ?)
    `, user.Name, user.Email, user.TelegramID)
	if err != nil {
		return 0, fmt.Errorf("%w user: %w", errFailedToInsert, err)
	}

	return result.LastInsertId()
}

func (db *DB) CreateCompany(company *models.Company) (int64, error) {
	result, err := db.Exec(`
        INSERT INTO companies (name, manager_id) VALUES (?, ?)
    `, company.Name, company.ManagerID)
	if err != nil {
		return 0, fmt.Errorf("%w company: %w", errFailedToInsert, err)
	}

	return result.LastInsertId()
}
