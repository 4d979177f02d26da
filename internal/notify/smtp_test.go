package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestMailer(t *testing.T, cfg config.SMTP, sendErr error) (*Mailer, *[]sentMail) {
	t.Helper()

	app := config.App{FrontendURL: "https://namcol.app", ResetTokenTTL: 15 * time.Minute}
	m := NewMailer(cfg, app, logger.Nop())

	var sent []sentMail
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, auth: a, from: from, to: to, msg: string(msg)})
		return sendErr
	}
	return m, &sent
}

func TestMailer_SendPasswordReset(t *testing.T) {
	m, sent := newTestMailer(t, config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "support@namcol.app",
		Password: "secret",
		FromName: "Support",
	}, nil)

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@example.com", "tok123"))
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.NotNil(t, mail.auth)
	assert.Equal(t, "support@namcol.app", mail.from)
	assert.Equal(t, []string{"ana@example.com"}, mail.to)

	assert.Contains(t, mail.msg, "From: \"Support\" <support@namcol.app>\r\n")
	assert.Contains(t, mail.msg, "To: ana@example.com\r\n")
	assert.Contains(t, mail.msg, "Subject: =?utf-8?q?Reset_Your_Password_-_=C3=91amCol?=\r\n")
	assert.Contains(t, mail.msg, "Content-Type: text/html")

	_, body, found := strings.Cut(mail.msg, "\r\n\r\n")
	require.True(t, found, "headers and body must be separated by a blank line")
	assert.Contains(t, body, "Password Reset")
	assert.Contains(t, body, "You requested to reset your password.")
	assert.Contains(t, body, "The link will expire in 15 minutes")
	assert.Contains(t, body, ">Reset Password</a>")
	assert.Equal(t, 3, strings.Count(body, "https://namcol.app/reset-password?token=tok123"))
}

func TestMailer_NoAuthWithoutUsername(t *testing.T) {
	m, sent := newTestMailer(t, config.SMTP{Host: "localhost", Port: 1025}, nil)

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@example.com", "tok"))
	require.Len(t, *sent, 1)
	assert.Nil(t, (*sent)[0].auth)
}

func TestMailer_SendError(t *testing.T) {
	m, _ := newTestMailer(t, config.SMTP{Host: "localhost", Port: 1025}, errors.New("connection refused"))

	err := m.SendPasswordReset(context.Background(), "ana@example.com", "tok")
	assert.ErrorIs(t, err, ErrSendingEmail)
}

func TestMailer_EscapesLink(t *testing.T) {
	m, sent := newTestMailer(t, config.SMTP{Host: "localhost", Port: 1025}, nil)

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@example.com", `"><script>`))
	assert.NotContains(t, (*sent)[0].msg, "<script>")
}
