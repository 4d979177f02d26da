package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
)

const resetSubject = "Reset Your Password - ÑamCol"

var resetEmailTemplate = template.Must(template.New("reset-password").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Password Reset</h2>
    <p>You requested to reset your password.</p>
    <p>Click the button below to choose a new one. The link will expire in {{.ExpiresInMinutes}} minutes.</p>
    <p>
      <a href="{{.Link}}" style="display: inline-block; padding: 10px 20px; background: #e4572e; color: #fff; text-decoration: none; border-radius: 4px;">Reset Password</a>
    </p>
    <p>If the button does not work, copy and paste this link into your browser:</p>
    <p><a href="{{.Link}}">{{.Link}}</a></p>
    <p>If you did not request a password reset, you can ignore this email.</p>
  </body>
</html>
`))

type resetEmailData struct {
	Link             string
	ExpiresInMinutes int
}

// sendMailFunc matches [smtp.SendMail].
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends reset links as HTML emails through an SMTP relay.
// The configured username doubles as the sender address.
type Mailer struct {
	addr        string
	host        string
	from        mail.Address
	username    string
	password    string
	frontendURL string
	ttl         time.Duration
	send        sendMailFunc
	logger      *logger.Logger
}

func NewMailer(cfg config.SMTP, app config.App, log *logger.Logger) *Mailer {
	return &Mailer{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host:        cfg.Host,
		from:        mail.Address{Name: cfg.FromName, Address: cfg.Username},
		username:    cfg.Username,
		password:    cfg.Password,
		frontendURL: app.FrontendURL,
		ttl:         app.ResetTokenTTL,
		send:        smtp.SendMail,
		logger:      log,
	}
}

// SendPasswordReset renders the reset email and hands it to the relay.
// net/smtp has no context support, so ctx only scopes logging.
func (m *Mailer) SendPasswordReset(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	msg, err := m.buildMessage(email, ResetLink(m.frontendURL, token))
	if err != nil {
		log.Err(err).Str("func", "*Mailer.SendPasswordReset").Msg("error rendering reset email")
		return fmt.Errorf("%w: %w", ErrRenderingMessage, err)
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(m.addr, auth, m.from.Address, []string{email}, msg); err != nil {
		log.Err(err).Str("func", "*Mailer.SendPasswordReset").Str("addr", m.addr).Msg("error sending reset email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Debug().Str("email", email).Msg("reset email sent")
	return nil
}

func (m *Mailer) Close() error { return nil }

func (m *Mailer) buildMessage(to, link string) ([]byte, error) {
	var body bytes.Buffer
	err := resetEmailTemplate.Execute(&body, resetEmailData{
		Link:             link,
		ExpiresInMinutes: int(m.ttl.Minutes()),
	})
	if err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.from.String())
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", resetSubject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}
