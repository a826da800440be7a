package mail

import (
	"log/slog"
	"time"

	"github.com/legalmatch/legalmatch-backend/internal/config"
	gomail "github.com/wneessen/go-mail"
)

// Notifier delivers best-effort notifications. A false return means the
// message was not sent; callers never treat that as a hard failure.
type Notifier interface {
	Send(to, subject, body string) bool
}

// SMTPNotifier sends HTML mail over SMTP with bounded timeouts.
type SMTPNotifier struct {
	cfg *config.Config
}

// New returns an SMTP-backed notifier, or a no-op one when the email
// configuration is incomplete.
func New(cfg *config.Config) Notifier {
	if cfg.SMTPServer == "" || cfg.SMTPPort == 0 || cfg.SMTPAccount == "" || cfg.SMTPPassword == "" {
		slog.Warn("email config incomplete, notifications disabled")
		return NopNotifier{}
	}
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(to, subject, body string) bool {
	opts := []gomail.Option{
		gomail.WithPort(n.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.SMTPAccount),
		gomail.WithPassword(n.cfg.SMTPPassword),
		gomail.WithTimeout(15 * time.Second),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	// Port 465 is implicit TLS rather than STARTTLS.
	if n.cfg.SMTPPort == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	}

	client, err := gomail.NewClient(n.cfg.SMTPServer, opts...)
	if err != nil {
		slog.Error("smtp client init failed", "error", err)
		return false
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.SMTPAccount); err != nil {
		slog.Error("invalid sender address", "error", err)
		return false
	}
	if err := msg.To(to); err != nil {
		slog.Error("invalid recipient address", "to", to, "error", err)
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := client.DialAndSend(msg); err != nil {
		slog.Error("email send failed", "to", to, "subject", subject, "error", err)
		return false
	}
	return true
}

// NopNotifier drops messages, logging what would have been sent.
type NopNotifier struct{}

func (NopNotifier) Send(to, subject, _ string) bool {
	slog.Warn("email not sent: notifications disabled", "to", to, "subject", subject)
	return false
}
