package handler

import (
	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/handler/http"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/metrics"
	"github.com/MKhiriev/recipe-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. metrics may be nil,
// in which case /metrics is not mounted.
func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
