// Package checks pkg/checks/interfaces.go
package checks

import (
	"context"

	"github.com/monitorai/screenwatch/pkg/models"
)

//go:generate mockgen -destination=mock_checks.go -package=checks github.com/monitorai/screenwatch/pkg/checks Service

// CheckRequest records one camera capture of a screen with its frame files.
type CheckRequest struct {
	ScreenID int64    `json:"screen_id"`
	FrameIDs []string `json:"frame_ids,omitempty"`
}

// Service is the check surface consumed by the API layer.
type Service interface {
	RecordCheck(ctx context.Context, req *CheckRequest) (*models.Check, error)
	RecordCheckOutcome(ctx context.Context, checkID int64, successful bool) error
	GetCheck(ctx context.Context, id int64) (*models.Check, error)
}
