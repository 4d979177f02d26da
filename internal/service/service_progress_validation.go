package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/validators"
	"github.com/MKhiriev/recipe-tracker/models"
)

type ProgressValidationService struct {
	inner     ProgressService
	validator validators.Validator
}

func NewProgressValidationService() ProgressServiceWrapper {
	return &ProgressValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProgressValidationService) StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.StartProgressResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.StartProgress(ctx, key)
}

func (v *ProgressValidationService) UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.IngredientProgress{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateIngredient(ctx, req)
}

func (v *ProgressValidationService) GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.ProgressView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetProgress(ctx, key)
}

func (v *ProgressValidationService) CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.Progress{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CompleteProgress(ctx, key)
}

func (v *ProgressValidationService) GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetUserProfile(ctx, userID)
}

func (v *ProgressValidationService) Wrap(wrapped ProgressService) ProgressService {
	v.inner = wrapped
	return v
}
