// Package models pkg/models/screen.go
package models

import "time"

// ScreenStatus tracks whether a screen participates in monitoring.
type ScreenStatus string

const (
	ScreenActive   ScreenStatus = "active"
	ScreenInactive ScreenStatus = "inactive"
)

// Screen represents a monitored remote display unit.
type Screen struct {
	ID               int64        `json:"id"`
	InstallationCode string       `json:"installation_code"`
	Address          string       `json:"address"`
	Status           ScreenStatus `json:"status"`
	AssignedUserID   *int64       `json:"assigned_user_id,omitempty"`
	CompanyID        *int64       `json:"company_id,omitempty"`
	UptimePercent    int          `json:"uptime_percent"`
	StreakNotified   bool         `json:"streak_notified"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Company owns a set of screens and has a manager to notify.
type Company struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ManagerID *int64 `json:"manager_id,omitempty"`
}

// User is a technician or a company manager.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TelegramID string `json:"telegram_id,omitempty"`
}

// PingTarget is a screen annotated with its most recent ping results,
// newest first, as fetched for one monitoring cycle.
type PingTarget struct {
	Screen        Screen `json:"screen"`
	RecentResults []bool `json:"recent_results"`
}
