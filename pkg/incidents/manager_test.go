package incidents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monitorai/screenwatch/pkg/assets"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

var errDatabase = errors.New("database unavailable")

func newTestManager(t *testing.T) (*Manager, *db.MockService, *notify.MockSender, *assets.MockMover) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := db.NewMockService(ctrl)
	sender := notify.NewMockSender(ctrl)
	mover := assets.NewMockMover(ctrl)

	return NewManager(store, sender, mover, "https://screens.example.com/"), store, sender, mover
}

func TestCreateIncident(t *testing.T) {
	m, store, sender, mover := newTestManager(t)

	responsible := int64(3)
	contacts := &models.IncidentContacts{
		IncidentID:       7,
		DefectTypes:      []string{"no_display"},
		InstallationCode: "SCR-17",
		Responsible:      &models.Recipient{Email: "tech@example.com", TelegramID: "1001"},
		Manager:          &models.Recipient{Email: "manager@example.com", TelegramID: "2002"},
	}

	store.EXPECT().ListOpenIncidents(int64(17)).Return(nil, nil)
	mover.EXPECT().MoveToFolder([]string{"photo-1", "photo-2"}, assets.FolderIncidents).Return(nil)
	store.EXPECT().
		CreateIncident(gomock.Any()).
		DoAndReturn(func(incident *models.Incident) (int64, error) {
			assert.Equal(t, models.StatusVerification, incident.Status)
			assert.Equal(t, int64(17), incident.ScreenID)
			assert.Equal(t, &responsible, incident.ResponsibleID)
			return 7, nil
		})
	store.EXPECT().GetIncidentContacts(int64(7)).Return(contacts, nil)

	// One message to the responsible with the manager cc'd, one telegram
	// message to the manager directly.
	sender.EXPECT().
		SendToRecipient(gomock.Any(), contacts.Responsible, gomock.Any()).
		Do(func(_ context.Context, _ *models.Recipient, msg *notify.Message) {
			assert.Equal(t, "New incident at screen SCR-17", msg.Subject)
			assert.Contains(t, msg.Text, "No display")
			assert.Contains(t, msg.Text, "https://screens.example.com/admin/content/incidents/7")
			assert.Contains(t, msg.HTML, `<a href="https://screens.example.com/admin/content/incidents/7">`)
			assert.Equal(t, "manager@example.com", msg.CC)
		})
	sender.EXPECT().
		SendToRecipient(gomock.Any(), &models.Recipient{TelegramID: "2002"}, gomock.Any())

	incident, err := m.CreateIncident(context.Background(), &CreateRequest{
		ScreenID:      17,
		DefectTypes:   []string{"no_display"},
		DefectPhoto:   "photo-1",
		ExtraPhotos:   []string{"photo-2"},
		ResponsibleID: &responsible,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), incident.ID)
	assert.Equal(t, models.StatusVerification, incident.Status)
}

func TestCreateIncidentDefaultsResponsibleFromScreen(t *testing.T) {
	m, store, sender, _ := newTestManager(t)

	assigned := int64(9)

	store.EXPECT().ListOpenIncidents(int64(17)).Return(nil, nil)
	store.EXPECT().GetScreen(int64(17)).Return(&models.Screen{ID: 17, AssignedUserID: &assigned}, nil)
	store.EXPECT().
		CreateIncident(gomock.Any()).
		DoAndReturn(func(incident *models.Incident) (int64, error) {
			assert.Equal(t, &assigned, incident.ResponsibleID)
			return 8, nil
		})
	store.EXPECT().GetIncidentContacts(int64(8)).Return(&models.IncidentContacts{
		IncidentID:       8,
		InstallationCode: "SCR-17",
		Responsible:      &models.Recipient{Email: "tech@example.com"},
	}, nil)
	sender.EXPECT().SendToRecipient(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := m.CreateIncident(context.Background(), &CreateRequest{
		ScreenID:    17,
		DefectTypes: []string{"flicker"},
	})
	require.NoError(t, err)
}

func TestCreateIncidentRequiresScreen(t *testing.T) {
	m, _, _, _ := newTestManager(t)

	_, err := m.CreateIncident(context.Background(), &CreateRequest{DefectTypes: []string{"flicker"}})
	require.ErrorIs(t, err, ErrScreenRequired)
}

func TestCreateIncidentDuplicate(t *testing.T) {
	tests := []struct {
		name       string
		open       []models.Incident
		wantReflag bool
	}{
		{
			name:       "pending verification gets re-flagged",
			open:       []models.Incident{{ID: 4, ScreenID: 17, Status: models.StatusVerification}},
			wantReflag: true,
		},
		{
			name: "confirmed incident left untouched",
			open: []models.Incident{{ID: 4, ScreenID: 17, Status: models.StatusNotResolved}},
		},
		{
			name: "repairs in progress left untouched",
			open: []models.Incident{{ID: 4, ScreenID: 17, Status: models.StatusInProgress}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _, _ := newTestManager(t)

			store.EXPECT().ListOpenIncidents(int64(17)).Return(tt.open, nil)

			if tt.wantReflag {
				store.EXPECT().
					UpdateIncident(gomock.Any()).
					DoAndReturn(func(incident *models.Incident) error {
						assert.Equal(t, int64(4), incident.ID)
						assert.Equal(t, models.StatusNotResolved, incident.Status)
						assert.Equal(t, "in_progress", incident.NextAction)
						return nil
					})
			}

			_, err := m.CreateIncident(context.Background(), &CreateRequest{
				ScreenID:    17,
				DefectTypes: []string{"no_display"},
			})

			var dup *DuplicateError

			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "screen_id", dup.Field)
			assert.Equal(t, "incidents", dup.Collection)
		})
	}
}

func TestCreateIncidentReflagFailure(t *testing.T) {
	m, store, _, _ := newTestManager(t)

	open := []models.Incident{{ID: 4, ScreenID: 17, Status: models.StatusVerification}}

	store.EXPECT().ListOpenIncidents(int64(17)).Return(open, nil)
	store.EXPECT().UpdateIncident(gomock.Any()).Return(errDatabase)

	_, err := m.CreateIncident(context.Background(), &CreateRequest{
		ScreenID:    17,
		DefectTypes: []string{"no_display"},
	})

	// A failed re-flag is a store failure, not a duplicate report.
	require.ErrorIs(t, err, errDatabase)

	var dup *DuplicateError

	assert.False(t, errors.As(err, &dup))
}

func TestCreateIncidentLosesRace(t *testing.T) {
	m, store, _, mover := newTestManager(t)

	responsible := int64(3)

	store.EXPECT().ListOpenIncidents(int64(17)).Return(nil, nil)
	mover.EXPECT().MoveToFolder(gomock.Any(), assets.FolderIncidents).Return(nil)
	store.EXPECT().CreateIncident(gomock.Any()).Return(int64(0), db.ErrOpenIncidentExists)

	_, err := m.CreateIncident(context.Background(), &CreateRequest{
		ScreenID:      17,
		DefectTypes:   []string{"no_display"},
		DefectPhoto:   "photo-1",
		ResponsibleID: &responsible,
	})

	var dup *DuplicateError

	require.ErrorAs(t, err, &dup)
}

func TestApplyTransition(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	tests := []struct {
		name     string
		incident models.Incident
		status   models.IncidentStatus
		check    func(t *testing.T, incident *models.Incident)
	}{
		{
			name:     "first in_progress stamps repairs_started_at",
			incident: models.Incident{Status: models.StatusNotResolved},
			status:   models.StatusInProgress,
			check: func(t *testing.T, incident *models.Incident) {
				t.Helper()
				require.NotNil(t, incident.RepairsStartedAt)
				assert.Equal(t, now, *incident.RepairsStartedAt)
			},
		},
		{
			name: "second in_progress keeps original stamp",
			incident: models.Incident{
				Status:           models.StatusNotResolved,
				RepairsStartedAt: &earlier,
			},
			status: models.StatusInProgress,
			check: func(t *testing.T, incident *models.Incident) {
				t.Helper()
				assert.Equal(t, earlier, *incident.RepairsStartedAt)
			},
		},
		{
			name:     "resolved stamps closed_at",
			incident: models.Incident{Status: models.StatusInProgress},
			status:   models.StatusResolved,
			check: func(t *testing.T, incident *models.Incident) {
				t.Helper()
				require.NotNil(t, incident.ClosedAt)
				assert.Equal(t, now, *incident.ClosedAt)
			},
		},
		{
			name:     "not_resolved records next action hint",
			incident: models.Incident{Status: models.StatusVerification},
			status:   models.StatusNotResolved,
			check: func(t *testing.T, incident *models.Incident) {
				t.Helper()
				assert.Equal(t, "in_progress", incident.NextAction)
				assert.Nil(t, incident.RepairsStartedAt)
				assert.Nil(t, incident.ClosedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident := tt.incident

			applyTransition(&incident, tt.status, now)

			assert.Equal(t, tt.status, incident.Status)
			tt.check(t, &incident)
		})
	}
}

func TestUpdateIncidentStatus(t *testing.T) {
	m, store, _, _ := newTestManager(t)

	store.EXPECT().
		GetIncident(int64(7)).
		Return(&models.Incident{ID: 7, ScreenID: 17, Status: models.StatusNotResolved}, nil)
	store.EXPECT().
		UpdateIncident(gomock.Any()).
		DoAndReturn(func(incident *models.Incident) error {
			assert.Equal(t, models.StatusInProgress, incident.Status)
			assert.NotNil(t, incident.RepairsStartedAt)
			return nil
		})

	incident, err := m.UpdateIncidentStatus(context.Background(), 7, &UpdateRequest{
		Status: models.StatusInProgress,
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, incident.Status)
}

func TestUpdateIncidentStatusResolvedNotifies(t *testing.T) {
	m, store, sender, mover := newTestManager(t)

	started := time.Now().Add(-time.Hour)
	contacts := &models.IncidentContacts{
		IncidentID:       7,
		InstallationCode: "SCR-17",
		Responsible:      &models.Recipient{Email: "tech@example.com"},
		Manager:          &models.Recipient{TelegramID: "2002"},
	}

	store.EXPECT().
		GetIncident(int64(7)).
		Return(&models.Incident{
			ID:               7,
			ScreenID:         17,
			Status:           models.StatusInProgress,
			RepairsStartedAt: &started,
		}, nil)
	mover.EXPECT().MoveToFolder([]string{"after-photo"}, assets.FolderIncidents).Return(nil)
	store.EXPECT().AddIncidentPhotos(int64(7), []string{"after-photo"}).Return(nil)
	store.EXPECT().
		UpdateIncident(gomock.Any()).
		DoAndReturn(func(incident *models.Incident) error {
			assert.NotNil(t, incident.ClosedAt)
			assert.Equal(t, started, *incident.RepairsStartedAt)
			assert.Equal(t, []string{"after-photo"}, incident.ExtraPhotos)
			return nil
		})
	store.EXPECT().GetIncidentContacts(int64(7)).Return(contacts, nil)
	sender.EXPECT().SendToRecipient(gomock.Any(), contacts.Responsible, gomock.Any())
	sender.EXPECT().SendToRecipient(gomock.Any(), contacts.Manager, gomock.Any())

	incident, err := m.UpdateIncidentStatus(context.Background(), 7, &UpdateRequest{
		Status:      models.StatusResolved,
		ExtraPhotos: []string{"after-photo"},
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, incident.Status)
}

func TestUpdateIncidentStatusRejectsUnknown(t *testing.T) {
	m, _, _, _ := newTestManager(t)

	_, err := m.UpdateIncidentStatus(context.Background(), 7, &UpdateRequest{Status: "shipped"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateIncidentStatusNotFound(t *testing.T) {
	m, store, _, _ := newTestManager(t)

	store.EXPECT().GetIncident(int64(99)).Return(nil, db.ErrNotFound)

	_, err := m.UpdateIncidentStatus(context.Background(), 99, &UpdateRequest{Status: models.StatusResolved})
	require.ErrorIs(t, err, db.ErrNotFound)
}
