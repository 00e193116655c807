package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monitorai/screenwatch/pkg/assets"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

func newTestService(t *testing.T, notifyOnAutoResolve bool) (*ServiceImpl, *db.MockService, *assets.MockMover, *notify.MockSender) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := db.NewMockService(ctrl)
	mover := assets.NewMockMover(ctrl)
	sender := notify.NewMockSender(ctrl)

	return NewService(store, mover, sender, notifyOnAutoResolve), store, mover, sender
}

func TestRecordCheckPrunesSupersededFrames(t *testing.T) {
	svc, store, mover, _ := newTestService(t, false)

	store.EXPECT().
		CreateCheck(gomock.Any()).
		DoAndReturn(func(check *models.Check) (int64, error) {
			assert.Equal(t, int64(17), check.ScreenID)
			assert.Equal(t, []string{"frame-3", "frame-4"}, check.FrameIDs)
			return 12, nil
		})
	store.EXPECT().ListSupersededFrameIDs(int64(17), int64(12)).Return([]string{"frame-1", "frame-2"}, nil)
	// frame-2 was promoted to incident evidence and has left the folder.
	mover.EXPECT().
		DeleteInFolder([]string{"frame-1", "frame-2"}, assets.FolderChecksFrames).
		Return([]string{"frame-1"}, nil)
	store.EXPECT().DeleteFrameLinks([]string{"frame-1"}).Return(nil)

	check, err := svc.RecordCheck(context.Background(), &CheckRequest{
		ScreenID: 17,
		FrameIDs: []string{"frame-3", "frame-4"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), check.ID)
}

func TestRecordCheckNoEarlierFrames(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().CreateCheck(gomock.Any()).Return(int64(1), nil)
	store.EXPECT().ListSupersededFrameIDs(int64(17), int64(1)).Return(nil, nil)

	_, err := svc.RecordCheck(context.Background(), &CheckRequest{ScreenID: 17})
	require.NoError(t, err)
}

func TestRecordCheckSurvivesCleanupFailure(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().CreateCheck(gomock.Any()).Return(int64(1), nil)
	store.EXPECT().
		ListSupersededFrameIDs(int64(17), int64(1)).
		Return(nil, errors.New("db locked"))

	check, err := svc.RecordCheck(context.Background(), &CheckRequest{ScreenID: 17})
	require.NoError(t, err)
	assert.Equal(t, int64(1), check.ID)
}

func TestRecordCheckRequiresScreen(t *testing.T) {
	svc, _, _, _ := newTestService(t, false)

	_, err := svc.RecordCheck(context.Background(), &CheckRequest{})
	require.ErrorIs(t, err, ErrScreenRequired)
}

func TestRecordCheckOutcomeResolvesVerification(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().GetCheck(int64(12)).Return(&models.Check{ID: 12, ScreenID: 17}, nil)
	store.EXPECT().SetCheckOutcome(int64(12), true).Return(nil)
	store.EXPECT().ListOpenIncidents(int64(17)).Return([]models.Incident{
		{ID: 4, Status: models.StatusVerification},
		{ID: 5, Status: models.StatusInProgress},
		{ID: 6, Status: models.StatusVerification},
	}, nil)
	// Only the unconfirmed reports close; repairs in progress are left alone.
	store.EXPECT().UpdateIncidentsStatus([]int64{4, 6}, models.StatusResolved).Return(nil)

	require.NoError(t, svc.RecordCheckOutcome(context.Background(), 12, true))
}

func TestRecordCheckOutcomeFailedCheck(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().GetCheck(int64(12)).Return(&models.Check{ID: 12, ScreenID: 17}, nil)
	store.EXPECT().SetCheckOutcome(int64(12), false).Return(nil)

	// A failed check never touches incidents.
	require.NoError(t, svc.RecordCheckOutcome(context.Background(), 12, false))
}

func TestRecordCheckOutcomeNoPendingIncidents(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().GetCheck(int64(12)).Return(&models.Check{ID: 12, ScreenID: 17}, nil)
	store.EXPECT().SetCheckOutcome(int64(12), true).Return(nil)
	store.EXPECT().ListOpenIncidents(int64(17)).Return([]models.Incident{
		{ID: 5, Status: models.StatusNotResolved},
	}, nil)

	require.NoError(t, svc.RecordCheckOutcome(context.Background(), 12, true))
}

func TestRecordCheckOutcomeNotifiesWhenEnabled(t *testing.T) {
	svc, store, _, sender := newTestService(t, true)

	store.EXPECT().GetCheck(int64(12)).Return(&models.Check{ID: 12, ScreenID: 17}, nil)
	store.EXPECT().SetCheckOutcome(int64(12), true).Return(nil)
	store.EXPECT().ListOpenIncidents(int64(17)).Return([]models.Incident{
		{ID: 4, Status: models.StatusVerification},
	}, nil)
	store.EXPECT().UpdateIncidentsStatus([]int64{4}, models.StatusResolved).Return(nil)
	store.EXPECT().GetIncidentContacts(int64(4)).Return(&models.IncidentContacts{
		IncidentID:       4,
		InstallationCode: "SCR-17",
		Responsible:      &models.Recipient{Email: "tech@example.com"},
	}, nil)
	sender.EXPECT().SendToRecipient(gomock.Any(), gomock.Any(), gomock.Any())

	require.NoError(t, svc.RecordCheckOutcome(context.Background(), 12, true))
}

func TestRecordCheckOutcomeUnknownCheck(t *testing.T) {
	svc, store, _, _ := newTestService(t, false)

	store.EXPECT().GetCheck(int64(99)).Return(nil, db.ErrNotFound)

	err := svc.RecordCheckOutcome(context.Background(), 99, true)
	require.ErrorIs(t, err, db.ErrNotFound)
}
