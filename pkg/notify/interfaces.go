// Package notify pkg/notify/interfaces.go
package notify

import (
	"context"

	"github.com/monitorai/screenwatch/pkg/models"
)

//go:generate mockgen -destination=mock_notify.go -package=notify github.com/monitorai/screenwatch/pkg/notify Sender,MailSender,Messenger,AlertService

// Attachment is a binary payload delivered alongside a message.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Message is one notification to fan out across a recipient's channels.
// Text is the plain body, HTML the rendered alternative preferred by the
// messaging channel. CC applies to the mail channel only.
type Message struct {
	Subject    string
	Text       string
	HTML       string
	CC         string
	Attachment *Attachment
}

// Empty reports whether there is nothing to deliver on any channel.
func (m *Message) Empty() bool {
	return m == nil || (m.Text == "" && m.HTML == "" && m.Attachment == nil)
}

// Sender fans a message out to a recipient. Channel failures are logged and
// isolated; the call never reports an error to its caller.
type Sender interface {
	SendToRecipient(ctx context.Context, recipient *models.Recipient, msg *Message)
}

// Mail is one outgoing email.
type Mail struct {
	To         string
	CC         string
	Subject    string
	Text       string
	HTML       string
	Attachment *Attachment
}

// MailSender delivers email.
type MailSender interface {
	Send(mail *Mail) error
}

// Messenger delivers instant messages, optionally with a document.
type Messenger interface {
	SendText(ctx context.Context, chatID, html string) error
	SendDocument(ctx context.Context, chatID, caption, filename string, data []byte) error
}

// AlertLevel grades an ops webhook alert.
type AlertLevel string

const (
	Info    AlertLevel = "info"
	Warning AlertLevel = "warning"
	Error   AlertLevel = "error"
)

// Alert is an ops-channel event, separate from recipient notifications.
type Alert struct {
	Level     AlertLevel     `json:"level"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	ScreenID  int64          `json:"screen_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// AlertService defines the interface for ops alert implementations.
type AlertService interface {
	// Alert sends an alert through the service
	Alert(ctx context.Context, alert *Alert) error

	// IsEnabled returns whether the alerter is enabled
	IsEnabled() bool
}
