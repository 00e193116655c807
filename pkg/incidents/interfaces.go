// Package incidents pkg/incidents/interfaces.go
package incidents

import (
	"context"

	"github.com/monitorai/screenwatch/pkg/models"
)

//go:generate mockgen -destination=mock_incidents.go -package=incidents github.com/monitorai/screenwatch/pkg/incidents Service

// CreateRequest describes a new defect report for a screen.
type CreateRequest struct {
	ScreenID      int64    `json:"screen_id"`
	DefectTypes   []string `json:"defect_types"`
	DefectPhoto   string   `json:"defect_photo,omitempty"`
	ExtraPhotos   []string `json:"extra_photos,omitempty"`
	ResponsibleID *int64   `json:"responsible_id,omitempty"`
}

// UpdateRequest moves an incident through its lifecycle. ExtraPhotos are
// attached on top of whatever the incident already carries.
type UpdateRequest struct {
	Status      models.IncidentStatus `json:"status"`
	ExtraPhotos []string              `json:"extra_photos,omitempty"`
}

// Service is the incident lifecycle surface consumed by the API layer.
type Service interface {
	CreateIncident(ctx context.Context, req *CreateRequest) (*models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int64, req *UpdateRequest) (*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
}
