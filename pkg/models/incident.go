// Package models pkg/models/incident.go
package models

import "time"

// IncidentStatus is a step in the incident lifecycle.
type IncidentStatus string

const (
	StatusVerification IncidentStatus = "verification"
	StatusNotResolved  IncidentStatus = "not_resolved"
	StatusInProgress   IncidentStatus = "in_progress"
	StatusResolved     IncidentStatus = "resolved"
)

// Open reports whether the status blocks creation of another incident
// for the same screen. Resolved incidents are terminal for dedup purposes.
func (s IncidentStatus) Open() bool {
	return s != StatusResolved
}

// Valid reports whether s is one of the known lifecycle statuses.
func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusVerification, StatusNotResolved, StatusInProgress, StatusResolved:
		return true
	}

	return false
}

// Incident is a tracked defect record for a screen. Incidents are never
// deleted; resolved incidents remain as the historical record.
type Incident struct {
	ID               int64          `json:"id"`
	ScreenID         int64          `json:"screen_id"`
	Status           IncidentStatus `json:"status"`
	DefectTypes      []string       `json:"defect_types"`
	DefectPhoto      string         `json:"defect_photo,omitempty"`
	ExtraPhotos      []string       `json:"extra_photos,omitempty"`
	ResponsibleID    *int64         `json:"responsible_id,omitempty"`
	NextAction       string         `json:"next_action,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	RepairsStartedAt *time.Time     `json:"repairs_started_at,omitempty"`
	ClosedAt         *time.Time     `json:"closed_at,omitempty"`
}
