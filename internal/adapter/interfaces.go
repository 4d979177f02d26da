// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the recipe-tracker REST API.
//
// [APIClient] mirrors every route the server exposes. Non-2xx answers are
// mapped by mapHTTPError to the sentinel values in errors.go, carrying the
// server's {"error": ...} message, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-tracker/models"
)

// APIClient talks to a running recipe-tracker server.
type APIClient interface {
	// Health fetches GET /healthz. On 503 it returns the decoded report
	// together with a wrapped [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, newPassword string) error
	DeleteUser(ctx context.Context, userID int64) error

	// ForgotPassword asks the server to email a reset link to email.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword redeems a reset token.
	ResetPassword(ctx context.Context, token, newPassword string) error

	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)

	StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error)
	UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error)
	GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error)
	CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error)
}
