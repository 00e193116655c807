// Package notify pkg/notify/dispatcher.go implements the channel fan-out.
package notify

import (
	"context"
	"log"

	"github.com/monitorai/screenwatch/pkg/models"
)

// Dispatcher sends a message over every channel the recipient has an
// address for. One channel's failure never blocks the other, and neither
// is surfaced to the caller: partial delivery is a normal outcome, visible
// only in the logs.
type Dispatcher struct {
	mail      MailSender
	messenger Messenger
}

// NewDispatcher wires the transports. Either may be nil when the channel
// is not configured.
func NewDispatcher(mail MailSender, messenger Messenger) *Dispatcher {
	return &Dispatcher{mail: mail, messenger: messenger}
}

func (d *Dispatcher) SendToRecipient(ctx context.Context, recipient *models.Recipient, msg *Message) {
	if recipient.Empty() {
		log.Printf("Notify: recipient missing, nothing sent")
		return
	}

	if msg.Empty() {
		log.Printf("Notify: no message body for %s", recipient.Email)
		return
	}

	d.sendTelegram(ctx, recipient, msg)
	d.sendMail(recipient, msg)
}

func (d *Dispatcher) sendTelegram(ctx context.Context, recipient *models.Recipient, msg *Message) {
	if recipient.TelegramID == "" {
		log.Printf("Notify: recipient %s has no telegram id", recipient.Email)
		return
	}

	if d.messenger == nil {
		log.Printf("Notify: telegram channel not configured, skipping %s", recipient.TelegramID)
		return
	}

	body := msg.HTML
	if body == "" {
		body = msg.Text
	}

	var err error

	if msg.Attachment != nil {
		caption := msg.Subject
		if caption == "" {
			caption = body
		}

		err = d.messenger.SendDocument(ctx, recipient.TelegramID, caption, msg.Attachment.Name, msg.Attachment.Data)
	} else {
		err = d.messenger.SendText(ctx, recipient.TelegramID, body)
	}

	if err != nil {
		log.Printf("Notify: telegram send to %s failed: %v", recipient.TelegramID, err)
		return
	}

	log.Printf("Notify: telegram message sent to %s", recipient.TelegramID)
}

func (d *Dispatcher) sendMail(recipient *models.Recipient, msg *Message) {
	if recipient.Email == "" {
		log.Printf("Notify: recipient %s has no email", recipient.TelegramID)
		return
	}

	if d.mail == nil {
		log.Printf("Notify: mail channel not configured, skipping %s", recipient.Email)
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.HTML
	}

	mail := &Mail{
		To:         recipient.Email,
		CC:         msg.CC,
		Subject:    msg.Subject,
		Text:       text,
		HTML:       msg.HTML,
		Attachment: msg.Attachment,
	}

	if err := d.mail.Send(mail); err != nil {
		log.Printf("Notify: email send to %s failed: %v", recipient.Email, err)
		return
	}

	log.Printf("Notify: email sent to %s", recipient.Email)
}
