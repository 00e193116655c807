// Package models pkg/models/recipient.go
package models

// Recipient is the transient contact projection used at notification time.
// Either channel address may be missing.
type Recipient struct {
	Email      string `json:"email,omitempty"`
	TelegramID string `json:"telegram_id,omitempty"`
}

// Empty reports whether the recipient has no reachable channel at all.
func (r *Recipient) Empty() bool {
	return r == nil || (r.Email == "" && r.TelegramID == "")
}

// IncidentContacts carries everything needed to notify about one incident:
// the responsible technician, the owning company's manager, and the screen's
// installation code for the message text.
type IncidentContacts struct {
	IncidentID       int64      `json:"incident_id"`
	DefectTypes      []string   `json:"defect_types"`
	InstallationCode string     `json:"installation_code"`
	Responsible      *Recipient `json:"responsible,omitempty"`
	Manager          *Recipient `json:"manager,omitempty"`
}

// ScreenContacts is the same projection keyed by screen, used by the
// availability monitor's downtime escalation.
type ScreenContacts struct {
	ScreenID    int64      `json:"screen_id"`
	Responsible *Recipient `json:"responsible,omitempty"`
	Manager     *Recipient `json:"manager,omitempty"`
}
