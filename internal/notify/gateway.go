// Package notify delivers password reset links to users.
//
// Three [Gateway] implementations exist: [Mailer] sends an HTML email over
// SMTP, [RabbitPublisher] emits a password.reset_requested event for an
// out-of-process notifier, and [LogGateway] only logs the link. [NewGateway]
// picks one from configuration.
package notify

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
)

//go:generate mockgen -source=gateway.go -destination=../mock/notify_mock.go -package=mock

var (
	ErrRenderingMessage = errors.New("error rendering reset message")
	ErrSendingEmail     = errors.New("error sending reset email")
	ErrPublishingEvent  = errors.New("error publishing reset event")
)

// Gateway hands a reset token to the user out of band.
type Gateway interface {
	// SendPasswordReset delivers the reset link built from token to email.
	SendPasswordReset(ctx context.Context, email, token string) error
	// Close releases connections held by the gateway.
	Close() error
}

// NewGateway selects the delivery channel: RabbitMQ when a broker URL is
// configured, SMTP when a mail host is configured, logging otherwise.
func NewGateway(cfg config.Notifier, app config.App, log *logger.Logger) (Gateway, error) {
	switch {
	case cfg.Rabbit.URL != "":
		log.Info().Str("exchange", cfg.Rabbit.Exchange).Msg("password reset notifications go to RabbitMQ")
		return NewRabbitPublisher(cfg.Rabbit, app, log)
	case cfg.SMTP.Host != "":
		log.Info().Str("host", cfg.SMTP.Host).Msg("password reset notifications go to SMTP")
		return NewMailer(cfg.SMTP, app, log), nil
	default:
		log.Warn().Msg("no notifier configured, reset links will only be logged")
		return NewLogGateway(app, log), nil
	}
}

// ResetLink builds the frontend URL the user follows to choose a new password.
func ResetLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}
