package notify

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/monitorai/screenwatch/pkg/config"
)

// SMTPMailer delivers mail over a single SMTP account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(conf *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.User, conf.Password),
		from:   conf.From,
	}
}

func (m *SMTPMailer) Send(mail *Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)

	if mail.CC != "" {
		msg.SetHeader("Cc", mail.CC)
	}

	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)

	if mail.HTML != "" {
		msg.AddAlternative("text/html", mail.HTML)
	}

	if mail.Attachment != nil {
		att := mail.Attachment
		msg.Attach(att.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(att.Data)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", mail.To, err)
	}

	return nil
}
