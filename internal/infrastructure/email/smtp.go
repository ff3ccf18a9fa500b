package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/quickdesk-io/quickdesk/internal/shared/config"
)

// Sender delivers notification emails. Implementations must never block the
// caller beyond the configured send timeout.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

type SMTPSender struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg *config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Send delivers a single message. gomail has no context support, so the dial
// and send run in a goroutine and the caller gets a timeout error if the SMTP
// server is unresponsive. The goroutine finishes on its own afterwards.
func (s *SMTPSender) Send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	timeout := time.Duration(s.cfg.SendTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email to %s: %w", to, err)
		}
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("timed out sending email to %s after %s", to, timeout)
	}
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) Send(to, subject, htmlBody, plainBody string) error {
	return nil
}
