package email

import (
	"gopkg.in/gomail.v2"
)

// Config holds the SMTP connection settings. A zero Host disables sending.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Enabled() bool {
	return c.Host != "" && c.FromEmail != ""
}

// Sender delivers a single plain-text email.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends over SMTP via gomail.
type SMTPSender struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
