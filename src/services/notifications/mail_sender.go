package notifications

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"mergington-activities/src/config"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewSMTPSender ต้องตั้งค่า SMTP_* ครบทุกตัว
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing SMTP settings (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM)")
	}
	return &SMTPSender{Host: cfg.Host, Port: cfg.Port, User: cfg.User, Pass: cfg.Pass, From: cfg.From}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender writes mails to the log instead of sending them. Used when SMTP is not configured.
type LogSender struct {
	Log *zap.Logger
}

func (s LogSender) Send(to, subject, html string) error {
	s.Log.Info("📧 mail (not sent, SMTP disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("bytes", len(html)),
	)
	return nil
}

// SenderFromConfig returns an SMTP sender when configured, otherwise a LogSender.
func SenderFromConfig(cfg config.SMTPConfig, log *zap.Logger) MailSender {
	if s, err := NewSMTPSender(cfg); err == nil {
		return s
	}
	return LogSender{Log: log}
}
