package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"maree/internal/domain/demand"
)

// EmailConfig holds SMTP delivery configuration.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// EmailSink delivers reports as plain-text email over SMTP.
type EmailSink struct {
	cfg EmailConfig

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailSink creates an email sink.
func NewEmailSink(cfg EmailConfig) *EmailSink {
	return &EmailSink{cfg: cfg, send: smtp.SendMail}
}

// Name implements Sink.
func (s *EmailSink) Name() string { return "email" }

// Deliver implements Sink.
func (s *EmailSink) Deliver(ctx context.Context, report demand.Report) error {
	if len(s.cfg.To) == 0 {
		return fmt.Errorf("email sink: no recipients configured")
	}

	subject := fmt.Sprintf("Holiday demand report: %s (%s)",
		report.Holiday.Name, report.Status)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(s.cfg.To, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(RenderText(report))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.From, s.cfg.To, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
