package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/models"
)

// progressService joins progress rows from the relational store with recipe
// documents. Nothing is cached; every call reads both stores.
type progressService struct {
	progressRepository store.ProgressRepository
	recipeRepository   store.RecipeRepository
	transactor         store.Transactor

	now func() time.Time

	logger *logger.Logger
}

func NewProgressService(storages *store.Storages, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: storages.ProgressRepository,
		recipeRepository:   storages.RecipeRepository,
		transactor:         storages.Transactor,
		now:                func() time.Time { return time.Now().UTC() },
		logger:             logger,
	}
}

// StartProgress creates (or resumes) the user's progress on a recipe and
// makes sure every current ingredient of the recipe has a row. Rows that
// already exist keep their flag.
func (p *progressService) StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error) {
	log := logger.FromContext(ctx)

	recipe, err := p.recipeRepository.FindRecipe(ctx, key.RecipeID)
	if err != nil {
		return models.StartProgressResult{}, fmt.Errorf("error loading recipe: %w", err)
	}

	var (
		progress models.Progress
		rows     []models.IngredientProgress
	)
	err = p.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.TxRepositories) error {
		var err error
		progress, err = findOrCreateProgress(ctx, repos.Progress, key, p.now())
		if err != nil {
			return err
		}

		if err = repos.Progress.InsertIngredientsIfAbsent(ctx, progress.ID, recipe.IngredientNames()); err != nil {
			return err
		}

		rows, err = repos.Progress.ListIngredientProgress(ctx, progress.ID)
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", key.UserID).Str("recipe_id", key.RecipeID).Msg("error starting progress")
		return models.StartProgressResult{}, fmt.Errorf("error starting progress: %w", err)
	}

	return models.StartProgressResult{
		ProgressID:  progress.ID,
		Ingredients: models.MergeIngredientStates(recipe.Ingredients, rows),
	}, nil
}

// findOrCreateProgress returns the existing header or inserts a new one.
// Losing an insert race to a concurrent start re-reads the winner's header.
func findOrCreateProgress(ctx context.Context, repo store.ProgressRepository, key models.ProgressKey, now time.Time) (models.Progress, error) {
	progress, err := repo.FindProgress(ctx, key.UserID, key.RecipeID)
	if err == nil || !errors.Is(err, store.ErrNoProgress) {
		return progress, err
	}

	progress, err = repo.CreateProgress(ctx, models.Progress{
		UserID:    key.UserID,
		RecipeID:  key.RecipeID,
		Status:    models.ProgressInProgress,
		StartedAt: now,
	})
	if errors.Is(err, store.ErrProgressAlreadyExists) {
		return repo.FindProgress(ctx, key.UserID, key.RecipeID)
	}
	return progress, err
}

func (p *progressService) UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error) {
	progress, err := p.progressRepository.FindProgress(ctx, req.UserID, req.RecipeID)
	if err != nil {
		return models.IngredientProgress{}, fmt.Errorf("error finding progress: %w", err)
	}

	ingredient, err := p.progressRepository.UpdateIngredient(ctx, progress.ID, req.IngredientName, req.IsDone)
	if err != nil {
		return models.IngredientProgress{}, fmt.Errorf("error updating ingredient: %w", err)
	}

	return ingredient, nil
}

// GetProgress merges the stored flags into the recipe's current ingredient
// list, so ingredients added to the recipe after the start show as not done.
// A header without ingredient rows counts as no progress.
func (p *progressService) GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error) {
	progress, err := p.progressRepository.FindProgress(ctx, key.UserID, key.RecipeID)
	if err != nil {
		return models.ProgressView{}, fmt.Errorf("error finding progress: %w", err)
	}

	rows, err := p.progressRepository.ListIngredientProgress(ctx, progress.ID)
	if err != nil {
		return models.ProgressView{}, fmt.Errorf("error listing ingredients: %w", err)
	}
	if len(rows) == 0 {
		return models.ProgressView{}, fmt.Errorf("no ingredient rows for progress %d: %w", progress.ID, store.ErrNoProgress)
	}

	recipe, err := p.recipeRepository.FindRecipe(ctx, key.RecipeID)
	if err != nil {
		return models.ProgressView{}, fmt.Errorf("error loading recipe: %w", err)
	}

	return models.ProgressView{
		RecipeID:    key.RecipeID,
		Title:       recipe.Title,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		Steps:       recipe.Steps,
		Status:      progress.Status,
		CompletedAt: progress.CompletedAt,
		Ingredients: models.MergeIngredientStates(recipe.Ingredients, rows),
	}, nil
}

// CompleteProgress marks the progress completed regardless of ingredient flags.
func (p *progressService) CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error) {
	progress, err := p.progressRepository.FindProgress(ctx, key.UserID, key.RecipeID)
	if err != nil {
		return models.Progress{}, fmt.Errorf("error finding progress: %w", err)
	}

	completed, err := p.progressRepository.CompleteProgress(ctx, progress.ID, p.now())
	if err != nil {
		return models.Progress{}, fmt.Errorf("error completing progress: %w", err)
	}

	return completed, nil
}

// GetUserProfile returns the recipes the user has started, split by status.
// Recipes that no longer exist are left out.
func (p *progressService) GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	profile := models.UserProfile{
		CompletedRecipes:  []models.Recipe{},
		UnfinishedRecipes: []models.Recipe{},
	}

	progressList, err := p.progressRepository.ListUserProgress(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("error listing progress: %w", err)
	}

	var completedIDs, unfinishedIDs []string
	for _, progress := range progressList {
		if progress.Status == models.ProgressCompleted {
			completedIDs = append(completedIDs, progress.RecipeID)
		} else {
			unfinishedIDs = append(unfinishedIDs, progress.RecipeID)
		}
	}

	if len(completedIDs) > 0 {
		if profile.CompletedRecipes, err = p.recipeRepository.FindRecipesByIDs(ctx, completedIDs); err != nil {
			return models.UserProfile{}, fmt.Errorf("error loading completed recipes: %w", err)
		}
	}
	if len(unfinishedIDs) > 0 {
		if profile.UnfinishedRecipes, err = p.recipeRepository.FindRecipesByIDs(ctx, unfinishedIDs); err != nil {
			return models.UserProfile{}, fmt.Errorf("error loading unfinished recipes: %w", err)
		}
	}

	return profile, nil
}
