package service

import (
	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/notify"
	"github.com/MKhiriev/recipe-tracker/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProgressService ProgressService
	RecipeService   RecipeService
	HealthService   HealthService
}

// NewServices builds every service on top of storages. Request-facing
// services are wrapped with input validation.
func NewServices(storages *store.Storages, gateway notify.Gateway, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthValidationService().Wrap(NewAuthService(storages, gateway, cfg, logger)),
		ProgressService: NewProgressValidationService().Wrap(NewProgressService(storages, logger)),
		RecipeService:   NewRecipeService(storages, logger),
		HealthService:   NewHealthService(storages, cfg, logger),
	}
}
