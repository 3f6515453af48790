package notification

import (
	"context"

	"pengelola-cuti/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers an already rendered message.
type Mailer interface {
	Deliver(ctx context.Context, to Recipient, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) Deliver(ctx context.Context, to Recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to.Email, to.Name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
