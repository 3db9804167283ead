package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmbmarques/water-ie-outage/internal/config"
)

func testMailer(cfg *config.Config) *Mailer {
	return NewMailer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func emailConfig() *config.Config {
	return &config.Config{
		SMTPServer:   "127.0.0.1",
		SMTPPort:     1,
		SMTPUser:     "monitor",
		SMTPPassword: "secret",
		FromEmail:    "monitor@example.com",
		ToEmail:      "oncall@example.com",
	}
}

func TestMailer_BuildMessage(t *testing.T) {
	m := testMailer(emailConfig())

	msg, err := m.buildMessage("[Water.ie] Change in outage data (Mayo)", "report body")
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestMailer_BuildMessage_InvalidFrom(t *testing.T) {
	cfg := emailConfig()
	cfg.FromEmail = "not-an-address"
	m := testMailer(cfg)

	_, err := m.buildMessage("subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from address")
}

func TestMailer_BuildMessage_InvalidTo(t *testing.T) {
	cfg := emailConfig()
	cfg.ToEmail = "also not an address"
	m := testMailer(cfg)

	_, err := m.buildMessage("subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to address")
}

func TestMailer_Notify_InvalidAddressFailsBeforeDial(t *testing.T) {
	cfg := emailConfig()
	cfg.FromEmail = "broken"
	m := testMailer(cfg)

	// Port 1 has no listener; an address error must surface without any
	// connection attempt.
	err := m.Notify(context.Background(), "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "from address")
}

func TestMailer_Notify_DialError(t *testing.T) {
	m := testMailer(emailConfig())

	err := m.Notify(context.Background(), "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send mail")
}
