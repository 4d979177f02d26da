package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(storages *store.Storages, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: storages.RecipeRepository,
		logger:           logger,
	}
}

func (r *recipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := r.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return recipes, nil
}
