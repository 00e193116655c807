// Package checks records camera checks of screens, prunes the frame files
// each new check supersedes, and auto-resolves pending incidents when a
// check comes back clean.
package checks

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/monitorai/screenwatch/pkg/assets"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

// ErrScreenRequired rejects a check without a screen reference.
var ErrScreenRequired = errors.New("check requires a screen reference")

type ServiceImpl struct {
	store  db.Service
	mover  assets.Mover
	sender notify.Sender

	// notifyOnAutoResolve controls whether clean-check auto-resolution
	// sends closure notifications. Off by default: the screen never broke,
	// nobody repaired anything.
	notifyOnAutoResolve bool
}

func NewService(store db.Service, mover assets.Mover, sender notify.Sender, notifyOnAutoResolve bool) *ServiceImpl {
	return &ServiceImpl{
		store:               store,
		mover:               mover,
		sender:              sender,
		notifyOnAutoResolve: notifyOnAutoResolve,
	}
}

func (s *ServiceImpl) RecordCheck(_ context.Context, req *CheckRequest) (*models.Check, error) {
	if req.ScreenID == 0 {
		return nil, ErrScreenRequired
	}

	check := &models.Check{
		ScreenID: req.ScreenID,
		FrameIDs: req.FrameIDs,
	}

	id, err := s.store.CreateCheck(check)
	if err != nil {
		return nil, fmt.Errorf("failed to record check: %w", err)
	}

	check.ID = id

	s.pruneSupersededFrames(req.ScreenID, id)

	return check, nil
}

// pruneSupersededFrames deletes the frame files of every earlier check of
// the same screen. Only files still sitting in the checks-frames folder are
// touched, so frames promoted to incident evidence survive. The check rows
// themselves are kept as history. Failures are logged; the recorded check
// stands either way.
func (s *ServiceImpl) pruneSupersededFrames(screenID, checkID int64) {
	superseded, err := s.store.ListSupersededFrameIDs(screenID, checkID)
	if err != nil {
		log.Printf("Checks: failed to list superseded frames for screen %d: %v", screenID, err)
		return
	}

	if len(superseded) == 0 {
		return
	}

	deleted, err := s.mover.DeleteInFolder(superseded, assets.FolderChecksFrames)
	if err != nil {
		log.Printf("Checks: failed to delete superseded frames for screen %d: %v", screenID, err)
		return
	}

	if len(deleted) == 0 {
		return
	}

	if err := s.store.DeleteFrameLinks(deleted); err != nil {
		log.Printf("Checks: failed to unlink deleted frames for screen %d: %v", screenID, err)
	}
}

func (s *ServiceImpl) RecordCheckOutcome(ctx context.Context, checkID int64, successful bool) error {
	check, err := s.store.GetCheck(checkID)
	if err != nil {
		return err
	}

	if err := s.store.SetCheckOutcome(checkID, successful); err != nil {
		return err
	}

	if successful {
		s.resolvePendingIncidents(ctx, check.ScreenID)
	}

	return nil
}

// resolvePendingIncidents closes the screen's verification-stage incidents:
// a clean check disproves an unconfirmed report. Confirmed incidents
// (not_resolved, in_progress) are never touched by automation.
func (s *ServiceImpl) resolvePendingIncidents(ctx context.Context, screenID int64) {
	open, err := s.store.ListOpenIncidents(screenID)
	if err != nil {
		log.Printf("Checks: failed to list open incidents for screen %d: %v", screenID, err)
		return
	}

	ids := make([]int64, 0, len(open))

	for i := range open {
		if open[i].Status == models.StatusVerification {
			ids = append(ids, open[i].ID)
		}
	}

	if len(ids) == 0 {
		return
	}

	if err := s.store.UpdateIncidentsStatus(ids, models.StatusResolved); err != nil {
		log.Printf("Checks: failed to auto-resolve incidents for screen %d: %v", screenID, err)
		return
	}

	log.Printf("Checks: auto-resolved %d incident(s) for screen %d after clean check", len(ids), screenID)

	if s.notifyOnAutoResolve {
		s.notifyAutoResolved(ctx, ids)
	}
}

func (s *ServiceImpl) notifyAutoResolved(ctx context.Context, incidentIDs []int64) {
	for _, id := range incidentIDs {
		contacts, err := s.store.GetIncidentContacts(id)
		if err != nil {
			log.Printf("Checks: contact lookup for incident %d failed: %v", id, err)
			continue
		}

		msg := &notify.Message{
			Subject: fmt.Sprintf("Incident resolved at screen %s", contacts.InstallationCode),
			Text: fmt.Sprintf("The report for screen %s was closed automatically after a clean check.",
				contacts.InstallationCode),
		}

		s.sender.SendToRecipient(ctx, contacts.Responsible, msg)
	}
}

func (s *ServiceImpl) GetCheck(_ context.Context, id int64) (*models.Check, error) {
	return s.store.GetCheck(id)
}
