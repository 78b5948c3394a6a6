package services

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/HSouheill/client_desk/config"
	"github.com/HSouheill/client_desk/logger"
)

// Message is a single HTML email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer delivers a message or reports why it could not.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer relays through the configured SMTP server. Each send opens its
// own connection.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	dial func(cfg config.SMTPConfig, m *gomail.Message) error
}

// NewSMTPMailer creates a mailer for cfg. An incomplete cfg is accepted; Send
// then fails with ConfigurationError.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, dial: dialAndSend}
}

func dialAndSend(cfg config.SMTPConfig, m *gomail.Message) error {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.SSL = cfg.Secure
	return d.DialAndSend(m)
}

func (s *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !s.cfg.Configured() {
		return &ConfigurationError{Missing: missingSMTP(s.cfg)}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender())
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dial(s.cfg, m); err != nil {
		return &TransportError{Err: err}
	}

	logger.Component("mailer").Debug().
		Str("to", logger.MaskEmail(msg.To)).
		Str("subject", msg.Subject).
		Msg("email relayed")
	return nil
}

func missingSMTP(cfg config.SMTPConfig) []string {
	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.Port <= 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if cfg.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	return missing
}
