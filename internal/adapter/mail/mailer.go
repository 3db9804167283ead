package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/nmbmarques/water-ie-outage/internal/config"
)

// Mailer sends change notifications over SMTP with STARTTLS.
// It implements monitor.Notifier.
type Mailer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewMailer creates an SMTP notifier from the email settings in cfg.
// The caller is expected to have checked cfg.EmailEnabled first.
func NewMailer(cfg *config.Config, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Notify delivers one plain text message to the configured recipient. The
// connection is dialed per send so a long lived monitor never holds an idle
// SMTP session between cycles.
func (m *Mailer) Notify(ctx context.Context, subject, body string) error {
	msg, err := m.buildMessage(subject, body)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.SMTPServer,
		gomail.WithPort(m.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SMTPUser),
		gomail.WithPassword(m.cfg.SMTPPassword),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("notification email sent", "to", m.cfg.ToEmail, "subject", subject)
	return nil
}

// buildMessage assembles the outgoing message. Address validation happens
// here, before any connection is dialed.
func (m *Mailer) buildMessage(subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(m.cfg.ToEmail); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}
