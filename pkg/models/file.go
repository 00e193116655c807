// Package models pkg/models/file.go
package models

import "time"

// File is a registered asset (defect photo or inspection frame). Folder
// placement drives cleanup and relocation rules.
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Folder    string    `json:"folder"`
	CreatedAt time.Time `json:"created_at"`
}
