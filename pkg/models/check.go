// Package models pkg/models/check.go
package models

import "time"

// Check is one automated inspection pass over a screen. The frame images of
// superseded checks are purged; the check record itself is retained.
type Check struct {
	ID           int64     `json:"id"`
	ScreenID     int64     `json:"screen_id"`
	IsSuccessful *bool     `json:"is_successful,omitempty"`
	FrameIDs     []string  `json:"frame_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PingSample is one reachability measurement. Append-only.
type PingSample struct {
	ScreenID  int64     `json:"screen_id"`
	Up        bool      `json:"up"`
	Timestamp time.Time `json:"timestamp"`
}
