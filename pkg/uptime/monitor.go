// Package uptime runs the availability monitor: periodic reachability
// sampling of every active screen, downtime escalation after consecutive
// failures, and the monthly uptime aggregation.
package uptime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/monitorai/screenwatch/pkg/config"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

// Monitor samples screen reachability on a fixed interval. A screen whose
// current probe fails after failure_window prior down samples triggers a
// one-time escalation; the marker clears on the first successful probe.
type Monitor struct {
	store   db.Service
	sender  notify.Sender
	alerter notify.AlertService
	prober  Prober
	conf    config.MonitorConfig
	limiter *rate.Limiter

	// publicURL is the externally reachable base of the admin UI; when set,
	// escalation bodies carry a deep link to the screen.
	publicURL string
}

type probeResult struct {
	target models.PingTarget
	up     bool
}

func NewMonitor(store db.Service, sender notify.Sender, alerter notify.AlertService, prober Prober, conf config.MonitorConfig, publicURL string) *Monitor {
	m := &Monitor{
		store:     store,
		sender:    sender,
		alerter:   alerter,
		prober:    prober,
		conf:      conf,
		publicURL: strings.TrimRight(publicURL, "/"),
	}

	if conf.RatePerSecond > 0 {
		m.limiter = rate.NewLimiter(rate.Limit(conf.RatePerSecond), 1)
	}

	return m
}

func (m *Monitor) screenLink(id int64) string {
	if m.publicURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/admin/content/screens/%d", m.publicURL, id)
}

// Start runs ping cycles until the context is canceled. The first cycle
// runs immediately.
func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(m.conf.PingInterval))
	defer ticker.Stop()

	if err := m.RunPingCycle(ctx); err != nil {
		log.Printf("Monitor: ping cycle failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.RunPingCycle(ctx); err != nil {
				log.Printf("Monitor: ping cycle failed: %v", err)
			}
		}
	}
}

// RunPingCycle probes every active screen once and persists the samples in
// a single batch. Escalation decisions use the samples of previous cycles,
// so the current batch is written after the decisions are made.
func (m *Monitor) RunPingCycle(ctx context.Context) error {
	targets, err := m.store.ListPingTargets(m.conf.FailureWindow)
	if err != nil {
		return fmt.Errorf("failed to list ping targets: %w", err)
	}

	if len(targets) == 0 {
		return nil
	}

	results := m.probeAll(ctx, targets)
	now := time.Now()
	samples := make([]models.PingSample, 0, len(results))

	for i := range results {
		m.handleResult(ctx, &results[i])

		samples = append(samples, models.PingSample{
			ScreenID:  results[i].target.Screen.ID,
			Up:        results[i].up,
			Timestamp: now,
		})
	}

	if err := m.store.SavePingSamples(samples); err != nil {
		return fmt.Errorf("failed to save ping samples: %w", err)
	}

	log.Printf("Monitor: probed %d screen(s)", len(samples))

	return nil
}

func (m *Monitor) probeAll(ctx context.Context, targets []models.PingTarget) []probeResult {
	workers := m.conf.Concurrency
	if workers > len(targets) {
		workers = len(targets)
	}

	targetCh := make(chan models.PingTarget, len(targets))
	resultCh := make(chan probeResult, len(targets))

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for target := range targetCh {
				resultCh <- probeResult{
					target: target,
					up:     m.probeOne(ctx, target.Screen.Address),
				}
			}
		}()
	}

	for _, target := range targets {
		targetCh <- target
	}

	close(targetCh)

	wg.Wait()
	close(resultCh)

	results := make([]probeResult, 0, len(targets))
	for result := range resultCh {
		results = append(results, result)
	}

	return results
}

func (m *Monitor) probeOne(ctx context.Context, address string) bool {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return false
		}
	}

	probeCtx, cancel := context.WithTimeout(ctx, time.Duration(m.conf.ProbeTimeout))
	defer cancel()

	if err := m.prober.Probe(probeCtx, address); err != nil {
		log.Printf("Monitor: probe of %s failed: %v", address, err)
		return false
	}

	return true
}

func (m *Monitor) handleResult(ctx context.Context, result *probeResult) {
	screen := &result.target.Screen

	if result.up {
		if screen.StreakNotified {
			if err := m.store.SetScreenStreakNotified(screen.ID, false); err != nil {
				log.Printf("Monitor: failed to clear streak marker for screen %d: %v", screen.ID, err)
			}
		}

		return
	}

	if !m.streakComplete(result.target.RecentResults) {
		return
	}

	if screen.StreakNotified {
		return
	}

	m.escalate(ctx, screen)

	if err := m.store.SetScreenStreakNotified(screen.ID, true); err != nil {
		log.Printf("Monitor: failed to set streak marker for screen %d: %v", screen.ID, err)
	}
}

// streakComplete reports whether the stored history already holds
// failure_window consecutive down samples. Together with the current failed
// probe that makes failure_window+1 failures in a row.
func (m *Monitor) streakComplete(recent []bool) bool {
	if len(recent) < m.conf.FailureWindow {
		return false
	}

	for _, up := range recent {
		if up {
			return false
		}
	}

	return true
}

func (m *Monitor) escalate(ctx context.Context, screen *models.Screen) {
	failures := m.conf.FailureWindow + 1

	log.Printf("Monitor: screen %d (%s) down %d times in a row, escalating",
		screen.ID, screen.InstallationCode, failures)

	subject := fmt.Sprintf("Screen %s is unreachable", screen.InstallationCode)
	text := fmt.Sprintf("Screen %s at %s has failed %d consecutive reachability checks.",
		screen.InstallationCode, screen.Address, failures)
	html := fmt.Sprintf("Screen <b>%s</b> at %s has failed %d consecutive reachability checks.",
		screen.InstallationCode, screen.Address, failures)

	if link := m.screenLink(screen.ID); link != "" {
		text += fmt.Sprintf(" Details: %s", link)
		html += fmt.Sprintf(` <a href="%s">Open screen</a>`, link)
	}

	contacts, err := m.store.GetScreenContacts(screen.ID)
	if err != nil {
		log.Printf("Monitor: contact lookup for screen %d failed: %v", screen.ID, err)
	} else {
		msg := &notify.Message{Subject: subject, Text: text, HTML: html}

		m.sender.SendToRecipient(ctx, contacts.Responsible, msg)
		m.sender.SendToRecipient(ctx, contacts.Manager, msg)
	}

	if m.alerter == nil {
		return
	}

	err = m.alerter.Alert(ctx, &notify.Alert{
		Level:    notify.Error,
		Title:    subject,
		Message:  text,
		ScreenID: screen.ID,
		Details: map[string]any{
			"address":              screen.Address,
			"consecutive_failures": failures,
		},
	})
	if err != nil && !errors.Is(err, notify.ErrWebhookDisabled) && !errors.Is(err, notify.ErrWebhookCooldown) {
		log.Printf("Monitor: webhook alert for screen %d failed: %v", screen.ID, err)
	}
}
