package http

import (
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/metrics"
	"github.com/MKhiriev/recipe-tracker/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
