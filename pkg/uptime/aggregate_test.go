package uptime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunMonthlyAggregation(t *testing.T) {
	m, store, _, _ := newTestMonitor(t)

	store.EXPECT().ListScreenIDsWithSamples().Return([]int64{1, 2, 3}, nil)

	// 27 of 30 samples up rounds to 90.
	store.EXPECT().CountPingSamples(int64(1), gomock.Any()).Return(27, 30, nil)
	store.EXPECT().UpdateScreenUptime(int64(1), 90).Return(nil)

	// 2 of 3 rounds up to 67.
	store.EXPECT().CountPingSamples(int64(2), gomock.Any()).Return(2, 3, nil)
	store.EXPECT().UpdateScreenUptime(int64(2), 67).Return(nil)

	// No samples inside the window: previous figure kept.
	store.EXPECT().CountPingSamples(int64(3), gomock.Any()).Return(0, 0, nil)

	require.NoError(t, m.RunMonthlyAggregation(context.Background()))
}

func TestRunMonthlyAggregationScreenIsolation(t *testing.T) {
	m, store, _, _ := newTestMonitor(t)

	store.EXPECT().ListScreenIDsWithSamples().Return([]int64{1, 2}, nil)

	// A failing screen never blocks the rest of the fleet.
	store.EXPECT().
		CountPingSamples(int64(1), gomock.Any()).
		Return(0, 0, errors.New("db locked"))
	store.EXPECT().CountPingSamples(int64(2), gomock.Any()).Return(10, 10, nil)
	store.EXPECT().UpdateScreenUptime(int64(2), 100).Return(nil)

	require.NoError(t, m.RunMonthlyAggregation(context.Background()))
}

func TestRunMonthlyAggregationWindow(t *testing.T) {
	m, store, _, _ := newTestMonitor(t)

	store.EXPECT().ListScreenIDsWithSamples().Return([]int64{1}, nil)
	store.EXPECT().
		CountPingSamples(int64(1), gomock.Any()).
		DoAndReturn(func(_ int64, since time.Time) (int, int, error) {
			want := time.Now().Add(-30 * 24 * time.Hour)
			assert.WithinDuration(t, want, since, time.Minute)
			return 1, 1, nil
		})
	store.EXPECT().UpdateScreenUptime(int64(1), 100).Return(nil)

	require.NoError(t, m.RunMonthlyAggregation(context.Background()))
}

func TestNextMonthStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{
			now:  time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC),
			want: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2026, 1, 1, 0, 0, 0, 1, time.UTC),
			want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextMonthStart(tt.now))
	}
}
