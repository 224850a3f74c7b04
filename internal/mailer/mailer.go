package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"notehub/internal/config"
)

// Mailer sends outbound mail. The collaboration invitation flow is its only
// caller today.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTP builds a Mailer over plain SMTP with optional auth. An empty
// username disables auth (local relay setups).
func NewSMTP(c config.SMTPConfig) Mailer {
	var auth smtp.Auth
	if c.Username != "" {
		auth = smtp.PlainAuth("", c.Username, c.Password, c.Host)
	}
	return &smtpMailer{
		addr: net.JoinHostPort(c.Host, c.Port),
		from: c.From,
		auth: auth,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
