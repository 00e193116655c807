package uptime

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// RunMonthlyAggregation recomputes each screen's uptime percentage from the
// ping samples of the trailing window. Screens without samples keep their
// previous figure. Per-screen failures are logged and skipped so one bad
// screen never blocks the rest of the fleet.
func (m *Monitor) RunMonthlyAggregation(_ context.Context) error {
	ids, err := m.store.ListScreenIDsWithSamples()
	if err != nil {
		return fmt.Errorf("failed to list screens with samples: %w", err)
	}

	since := time.Now().Add(-time.Duration(m.conf.UptimeWindow))

	for _, id := range ids {
		up, total, err := m.store.CountPingSamples(id, since)
		if err != nil {
			log.Printf("Monitor: failed to count samples for screen %d: %v", id, err)
			continue
		}

		if total == 0 {
			log.Printf("Monitor: screen %d has no samples in window, keeping previous uptime", id)
			continue
		}

		percent := int(math.Round(100 * float64(up) / float64(total)))

		if err := m.store.UpdateScreenUptime(id, percent); err != nil {
			log.Printf("Monitor: failed to update uptime for screen %d: %v", id, err)
			continue
		}

		log.Printf("Monitor: screen %d uptime %d%% (%d/%d samples)", id, percent, up, total)
	}

	return nil
}

// StartAggregation recomputes uptime at midnight UTC on the first of every
// month until the context is canceled.
func (m *Monitor) StartAggregation(ctx context.Context) {
	for {
		next := nextMonthStart(time.Now().UTC())

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
			if err := m.RunMonthlyAggregation(ctx); err != nil {
				log.Printf("Monitor: monthly aggregation failed: %v", err)
			}
		}
	}
}

func nextMonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
