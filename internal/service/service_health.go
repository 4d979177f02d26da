package service

import (
	"context"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/models"
)

type healthService struct {
	relational store.Pinger
	documents  store.Pinger

	appVersion string

	logger *logger.Logger
}

func NewHealthService(storages *store.Storages, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		relational: storages.Relational,
		documents:  storages.Documents,
		appVersion: cfg.Version,
		logger:     logger,
	}
}

// Check pings both stores. The overall status is ok only when both answer.
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	log := logger.FromContext(ctx)

	resp := models.HealthResponse{
		Status:     models.HealthStatusOK,
		Relational: models.HealthStatusUp,
		Documents:  models.HealthStatusUp,
		Version:    h.appVersion,
	}

	if err := h.relational.Ping(ctx); err != nil {
		log.Err(err).Msg("relational store is unreachable")
		resp.Relational = models.HealthStatusDown
		resp.Status = models.HealthStatusUnavailable
	}
	if err := h.documents.Ping(ctx); err != nil {
		log.Err(err).Msg("document store is unreachable")
		resp.Documents = models.HealthStatusDown
		resp.Status = models.HealthStatusUnavailable
	}

	return resp
}
