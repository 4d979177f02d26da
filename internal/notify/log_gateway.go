package notify

import (
	"context"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
)

// LogGateway writes reset links to the log. Meant for local development.
type LogGateway struct {
	frontendURL string
	ttl         time.Duration
	logger      *logger.Logger
}

func NewLogGateway(app config.App, log *logger.Logger) *LogGateway {
	return &LogGateway{
		frontendURL: app.FrontendURL,
		ttl:         app.ResetTokenTTL,
		logger:      log,
	}
}

func (g *LogGateway) SendPasswordReset(ctx context.Context, email, token string) error {
	logger.FromContext(ctx).Info().
		Str("email", email).
		Str("reset_link", ResetLink(g.frontendURL, token)).
		Dur("expires_in", g.ttl).
		Msg("password reset requested")
	return nil
}

func (g *LogGateway) Close() error { return nil }
