// Package incidents implements the defect lifecycle: creation with per-screen
// dedup, status transitions with timestamp stamping, and the notifications
// that follow both.
package incidents

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/monitorai/screenwatch/pkg/assets"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/models"
	"github.com/monitorai/screenwatch/pkg/notify"
)

// Manager owns incident records. At most one non-resolved incident exists
// per screen; a second report re-flags a pending verification instead of
// creating a duplicate.
type Manager struct {
	store  db.Service
	sender notify.Sender
	mover  assets.Mover

	// publicURL is the externally reachable base of the admin UI; when set,
	// notification bodies carry a deep link to the incident.
	publicURL string
}

func NewManager(store db.Service, sender notify.Sender, mover assets.Mover, publicURL string) *Manager {
	return &Manager{
		store:     store,
		sender:    sender,
		mover:     mover,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (m *Manager) incidentLink(id int64) string {
	if m.publicURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/admin/content/incidents/%d", m.publicURL, id)
}

func (m *Manager) CreateIncident(ctx context.Context, req *CreateRequest) (*models.Incident, error) {
	if req.ScreenID == 0 {
		return nil, ErrScreenRequired
	}

	open, err := m.store.ListOpenIncidents(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open incidents: %w", err)
	}

	if len(open) > 0 {
		if err := m.reflagVerification(open); err != nil {
			return nil, err
		}

		return nil, &DuplicateError{Collection: "incidents", Field: "screen_id"}
	}

	if err := m.relocatePhotos(req.DefectPhoto, req.ExtraPhotos); err != nil {
		return nil, err
	}

	responsibleID, err := m.resolveResponsible(req)
	if err != nil {
		return nil, err
	}

	incident := &models.Incident{
		ScreenID:      req.ScreenID,
		Status:        models.StatusVerification,
		DefectTypes:   req.DefectTypes,
		DefectPhoto:   req.DefectPhoto,
		ExtraPhotos:   req.ExtraPhotos,
		ResponsibleID: responsibleID,
	}

	id, err := m.store.CreateIncident(incident)
	if err != nil {
		// Lost the race against a concurrent report for the same screen.
		if errors.Is(err, db.ErrOpenIncidentExists) {
			return nil, &DuplicateError{Collection: "incidents", Field: "screen_id"}
		}

		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	incident.ID = id

	m.notifyCreated(ctx, id)

	return incident, nil
}

// reflagVerification bumps a single pending-verification incident back to
// not_resolved: a repeat report is evidence the defect is real. Conflicts in
// any other state are left untouched. The transition runs through the same
// derivation as operator updates, so the next-action hint is stamped too.
func (m *Manager) reflagVerification(open []models.Incident) error {
	if len(open) != 1 || open[0].Status != models.StatusVerification {
		return nil
	}

	incident := open[0]
	applyTransition(&incident, models.StatusNotResolved, time.Now())

	if err := m.store.UpdateIncident(&incident); err != nil {
		return fmt.Errorf("failed to re-flag incident %d: %w", incident.ID, err)
	}

	return nil
}

func (m *Manager) resolveResponsible(req *CreateRequest) (*int64, error) {
	if req.ResponsibleID != nil {
		return req.ResponsibleID, nil
	}

	screen, err := m.store.GetScreen(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load screen %d: %w", req.ScreenID, err)
	}

	return screen.AssignedUserID, nil
}

func (m *Manager) UpdateIncidentStatus(ctx context.Context, id int64, req *UpdateRequest) (*models.Incident, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	incident, err := m.store.GetIncident(id)
	if err != nil {
		return nil, err
	}

	applyTransition(incident, req.Status, time.Now())

	if len(req.ExtraPhotos) > 0 {
		if err := m.relocatePhotos("", req.ExtraPhotos); err != nil {
			return nil, err
		}

		if err := m.store.AddIncidentPhotos(id, req.ExtraPhotos); err != nil {
			return nil, fmt.Errorf("failed to attach photos to incident %d: %w", id, err)
		}

		incident.ExtraPhotos = appendMissing(incident.ExtraPhotos, req.ExtraPhotos)
	}

	if err := m.store.UpdateIncident(incident); err != nil {
		return nil, err
	}

	if req.Status == models.StatusResolved {
		m.notifyClosed(ctx, id)
	}

	return incident, nil
}

// applyTransition stamps the lifecycle timestamps. repairs_started_at is
// written once, on the first move to in_progress; closed_at on resolution.
// Moving back to not_resolved records the expected next step.
func applyTransition(incident *models.Incident, status models.IncidentStatus, now time.Time) {
	incident.Status = status

	switch status {
	case models.StatusInProgress:
		if incident.RepairsStartedAt == nil {
			incident.RepairsStartedAt = &now
		}
	case models.StatusResolved:
		if incident.ClosedAt == nil {
			incident.ClosedAt = &now
		}
	case models.StatusNotResolved:
		incident.NextAction = string(models.StatusInProgress)
	case models.StatusVerification:
	}
}

func (m *Manager) GetIncident(_ context.Context, id int64) (*models.Incident, error) {
	return m.store.GetIncident(id)
}

func (m *Manager) ListIncidents(_ context.Context) ([]models.Incident, error) {
	return m.store.ListIncidents()
}

// relocatePhotos moves uploaded files into the incidents folder so the
// frame cleanup never touches them. Safe to repeat.
func (m *Manager) relocatePhotos(defectPhoto string, extras []string) error {
	ids := make([]string, 0, len(extras)+1)

	if defectPhoto != "" {
		ids = append(ids, defectPhoto)
	}

	ids = append(ids, extras...)

	if len(ids) == 0 {
		return nil
	}

	if err := m.mover.MoveToFolder(ids, assets.FolderIncidents); err != nil {
		return fmt.Errorf("failed to relocate incident photos: %w", err)
	}

	return nil
}

func (m *Manager) notifyCreated(ctx context.Context, id int64) {
	contacts, err := m.store.GetIncidentContacts(id)
	if err != nil {
		log.Printf("Incidents: contact lookup for incident %d failed: %v", id, err)
		return
	}

	defects := models.DefectLabel(contacts.DefectTypes)
	subject := fmt.Sprintf("New incident at screen %s", contacts.InstallationCode)
	text := fmt.Sprintf("Screen %s reported defects: %s.", contacts.InstallationCode, defects)
	html := fmt.Sprintf("Screen <b>%s</b> reported defects: %s.", contacts.InstallationCode, defects)

	if link := m.incidentLink(id); link != "" {
		text += fmt.Sprintf(" Details: %s", link)
		html += fmt.Sprintf(` <a href="%s">Open incident</a>`, link)
	}

	toResponsible := &notify.Message{
		Subject: subject,
		Text:    text,
		HTML:    html,
	}
	if !contacts.Manager.Empty() {
		toResponsible.CC = contacts.Manager.Email
	}

	m.sender.SendToRecipient(ctx, contacts.Responsible, toResponsible)

	// The manager is cc'd on the email above; they only get their own
	// telegram message.
	if !contacts.Manager.Empty() && contacts.Manager.TelegramID != "" {
		m.sender.SendToRecipient(ctx,
			&models.Recipient{TelegramID: contacts.Manager.TelegramID},
			&notify.Message{Subject: subject, Text: text, HTML: html})
	}
}

func (m *Manager) notifyClosed(ctx context.Context, id int64) {
	contacts, err := m.store.GetIncidentContacts(id)
	if err != nil {
		log.Printf("Incidents: contact lookup for incident %d failed: %v", id, err)
		return
	}

	subject := fmt.Sprintf("Incident resolved at screen %s", contacts.InstallationCode)
	text := fmt.Sprintf("The incident at screen %s has been resolved.", contacts.InstallationCode)
	html := fmt.Sprintf("The incident at screen <b>%s</b> has been resolved.", contacts.InstallationCode)

	if link := m.incidentLink(id); link != "" {
		text += fmt.Sprintf(" Details: %s", link)
		html += fmt.Sprintf(` <a href="%s">Open incident</a>`, link)
	}

	msg := &notify.Message{Subject: subject, Text: text, HTML: html}

	m.sender.SendToRecipient(ctx, contacts.Responsible, msg)
	m.sender.SendToRecipient(ctx, contacts.Manager, msg)
}

func appendMissing(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}

	for _, id := range added {
		if _, ok := seen[id]; !ok {
			existing = append(existing, id)
		}
	}

	return existing
}
