// Package db pkg/db/interfaces.go
package db

import (
	"time"

	"github.com/monitorai/screenwatch/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/monitorai/screenwatch/pkg/db Service

// Service represents all store operations.
type Service interface {
	Close() error

	// Screen operations.

	CreateScreen(screen *models.Screen) (int64, error)
	GetScreen(id int64) (*models.Screen, error)
	ListScreens() ([]models.Screen, error)
	ListPingTargets(historyLimit int) ([]models.PingTarget, error)
	ListScreenIDsWithSamples() ([]int64, error)
	UpdateScreenUptime(screenID int64, percent int) error
	SetScreenStreakNotified(screenID int64, notified bool) error
	GetScreenContacts(screenID int64) (*models.ScreenContacts, error)

	// Incident operations.

	CreateIncident(incident *models.Incident) (int64, error)
	GetIncident(id int64) (*models.Incident, error)
	ListIncidents() ([]models.Incident, error)
	ListOpenIncidents(screenID int64) ([]models.Incident, error)
	UpdateIncident(incident *models.Incident) error
	UpdateIncidentsStatus(ids []int64, status models.IncidentStatus) error
	AddIncidentPhotos(incidentID int64, fileIDs []string) error
	GetIncidentContacts(incidentID int64) (*models.IncidentContacts, error)

	// Check operations.

	CreateCheck(check *models.Check) (int64, error)
	GetCheck(id int64) (*models.Check, error)
	SetCheckOutcome(checkID int64, successful bool) error
	ListSupersededFrameIDs(screenID, excludeCheckID int64) ([]string, error)
	DeleteFrameLinks(fileIDs []string) error

	// Ping operations.

	SavePingSamples(samples []models.PingSample) error
	CountPingSamples(screenID int64, since time.Time) (up, total int, err error)

	// File operations.

	CreateFile(file *models.File) error
	GetFile(id string) (*models.File, error)
	SetFileFolders(ids []string, folder string) error
	ListFileIDsInFolder(ids []string, folder string) ([]string, error)
	DeleteFiles(ids []string) error

	// Directory operations.

	CreateUser(user *models.User) (int64, error)
	CreateCompany(company *models.Company) (int64, error)
}
