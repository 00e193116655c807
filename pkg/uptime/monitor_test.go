package uptime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monitorai/screenwatch/pkg/config"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

var testMonitorConfig = config.MonitorConfig{
	PingInterval:  config.Duration(5 * time.Minute),
	ProbeTimeout:  config.Duration(time.Second),
	ProbeMode:     "http",
	Concurrency:   2,
	FailureWindow: 2,
	UptimeWindow:  config.Duration(30 * 24 * time.Hour),
}

func newTestMonitor(t *testing.T) (*Monitor, *db.MockService, *notify.MockSender, *MockProber) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := db.NewMockService(ctrl)
	sender := notify.NewMockSender(ctrl)
	prober := NewMockProber(ctrl)

	return NewMonitor(store, sender, nil, prober, testMonitorConfig, "https://screens.example.com"), store, sender, prober
}

func target(id int64, streakNotified bool, recent ...bool) models.PingTarget {
	return models.PingTarget{
		Screen: models.Screen{
			ID:               id,
			InstallationCode: "SCR-17",
			Address:          "10.0.0.17",
			Status:           models.ScreenActive,
			StreakNotified:   streakNotified,
		},
		RecentResults: recent,
	}
}

func TestRunPingCycleEscalatesAfterStreak(t *testing.T) {
	m, store, sender, prober := newTestMonitor(t)

	contacts := &models.ScreenContacts{
		ScreenID:    17,
		Responsible: &models.Recipient{Email: "tech@example.com"},
		Manager:     &models.Recipient{TelegramID: "2002"},
	}

	// Two stored failures plus this cycle's failure completes the streak.
	store.EXPECT().ListPingTargets(2).Return([]models.PingTarget{target(17, false, false, false)}, nil)
	prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(errors.New("connection refused"))
	store.EXPECT().GetScreenContacts(int64(17)).Return(contacts, nil)
	sender.EXPECT().
		SendToRecipient(gomock.Any(), contacts.Responsible, gomock.Any()).
		Do(func(_ context.Context, _ *models.Recipient, msg *notify.Message) {
			assert.Contains(t, msg.Text, "3 consecutive")
			assert.Contains(t, msg.Subject, "SCR-17")
			assert.Contains(t, msg.Text, "https://screens.example.com/admin/content/screens/17")
			assert.Contains(t, msg.HTML, `<a href="https://screens.example.com/admin/content/screens/17">`)
		})
	sender.EXPECT().SendToRecipient(gomock.Any(), contacts.Manager, gomock.Any())
	store.EXPECT().SetScreenStreakNotified(int64(17), true).Return(nil)
	store.EXPECT().
		SavePingSamples(gomock.Any()).
		DoAndReturn(func(samples []models.PingSample) error {
			require.Len(t, samples, 1)
			assert.Equal(t, int64(17), samples[0].ScreenID)
			assert.False(t, samples[0].Up)
			return nil
		})

	require.NoError(t, m.RunPingCycle(context.Background()))
}

func TestRunPingCycleEscalatesOnlyOnce(t *testing.T) {
	m, store, _, prober := newTestMonitor(t)

	// Marker already set from a previous cycle: no second notification.
	store.EXPECT().ListPingTargets(2).Return([]models.PingTarget{target(17, true, false, false)}, nil)
	prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(errors.New("connection refused"))
	store.EXPECT().SavePingSamples(gomock.Any()).Return(nil)

	require.NoError(t, m.RunPingCycle(context.Background()))
}

func TestRunPingCycleBrokenStreak(t *testing.T) {
	tests := []struct {
		name   string
		recent []bool
	}{
		{name: "recovery inside window", recent: []bool{false, true}},
		{name: "not enough history", recent: []bool{false}},
		{name: "no history", recent: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _, prober := newTestMonitor(t)

			store.EXPECT().
				ListPingTargets(2).
				Return([]models.PingTarget{target(17, false, tt.recent...)}, nil)
			prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(errors.New("timeout"))
			store.EXPECT().SavePingSamples(gomock.Any()).Return(nil)

			require.NoError(t, m.RunPingCycle(context.Background()))
		})
	}
}

func TestRunPingCycleClearsMarkerOnRecovery(t *testing.T) {
	m, store, _, prober := newTestMonitor(t)

	store.EXPECT().ListPingTargets(2).Return([]models.PingTarget{target(17, true, false, false)}, nil)
	prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(nil)
	store.EXPECT().SetScreenStreakNotified(int64(17), false).Return(nil)
	store.EXPECT().
		SavePingSamples(gomock.Any()).
		DoAndReturn(func(samples []models.PingSample) error {
			require.Len(t, samples, 1)
			assert.True(t, samples[0].Up)
			return nil
		})

	require.NoError(t, m.RunPingCycle(context.Background()))
}

func TestRunPingCycleUpWithoutMarker(t *testing.T) {
	m, store, _, prober := newTestMonitor(t)

	// Healthy screen with no marker: nothing beyond the sample write.
	store.EXPECT().ListPingTargets(2).Return([]models.PingTarget{target(17, false, true, true)}, nil)
	prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(nil)
	store.EXPECT().SavePingSamples(gomock.Any()).Return(nil)

	require.NoError(t, m.RunPingCycle(context.Background()))
}

func TestRunPingCycleNoTargets(t *testing.T) {
	m, store, _, _ := newTestMonitor(t)

	store.EXPECT().ListPingTargets(2).Return(nil, nil)

	require.NoError(t, m.RunPingCycle(context.Background()))
}

func TestRunPingCycleFiresWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := db.NewMockService(ctrl)
	sender := notify.NewMockSender(ctrl)
	prober := NewMockProber(ctrl)
	alerter := notify.NewMockAlertService(ctrl)

	m := NewMonitor(store, sender, alerter, prober, testMonitorConfig, "")

	store.EXPECT().ListPingTargets(2).Return([]models.PingTarget{target(17, false, false, false)}, nil)
	prober.EXPECT().Probe(gomock.Any(), "10.0.0.17").Return(errors.New("connection refused"))
	store.EXPECT().GetScreenContacts(int64(17)).Return(&models.ScreenContacts{ScreenID: 17}, nil)
	sender.EXPECT().SendToRecipient(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	alerter.EXPECT().
		Alert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *notify.Alert) error {
			assert.Equal(t, notify.Error, alert.Level)
			assert.Equal(t, int64(17), alert.ScreenID)
			return nil
		})
	store.EXPECT().SetScreenStreakNotified(int64(17), true).Return(nil)
	store.EXPECT().SavePingSamples(gomock.Any()).Return(nil)

	require.NoError(t, m.RunPingCycle(context.Background()))
}
