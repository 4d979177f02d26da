package service

import (
	"context"

	"github.com/MKhiriev/recipe-tracker/models"
)

// AuthService manages accounts and the password reset flow.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, userID int64) error

	// RequestPasswordReset stores a fresh reset token for the account and
	// hands it to the notification gateway. Gateway failures are only logged.
	RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) error

	// ResetPassword redeems a reset token. The password update and the token
	// deletion are committed together.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// ProgressService reconciles per-user progress rows with recipe documents.
type ProgressService interface {
	StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error)
	UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error)
	GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error)
	CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error)
	GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error)
}

type RecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
}

// HealthService probes the backing stores.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProgressServiceWrapper defines middleware composition for ProgressService.
type ProgressServiceWrapper interface {
	Wrap(ProgressService) ProgressService
}
