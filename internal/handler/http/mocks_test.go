package http

import (
	"context"

	"github.com/MKhiriev/recipe-tracker/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	changePasswordFn func(ctx context.Context, req models.ChangePasswordRequest) error
	deleteUserFn     func(ctx context.Context, userID int64) error
	forgotFn         func(ctx context.Context, req models.ForgotPasswordRequest) error
	resetFn          func(ctx context.Context, req models.ResetPasswordRequest) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return []models.User{}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, req)
	}
	return nil
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) error {
	if m.forgotFn != nil {
		return m.forgotFn(ctx, req)
	}
	return nil
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if m.resetFn != nil {
		return m.resetFn(ctx, req)
	}
	return nil
}

// ---- Mock: ProgressService ----

type mockProgressService struct {
	startFn    func(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error)
	updateFn   func(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error)
	getFn      func(ctx context.Context, key models.ProgressKey) (models.ProgressView, error)
	completeFn func(ctx context.Context, key models.ProgressKey) (models.Progress, error)
	profileFn  func(ctx context.Context, userID int64) (models.UserProfile, error)
}

func (m *mockProgressService) StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error) {
	if m.startFn != nil {
		return m.startFn(ctx, key)
	}
	return models.StartProgressResult{}, nil
}

func (m *mockProgressService) UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return models.IngredientProgress{}, nil
}

func (m *mockProgressService) GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return models.ProgressView{}, nil
}

func (m *mockProgressService) CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, key)
	}
	return models.Progress{}, nil
}

func (m *mockProgressService) GetUserProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, userID)
	}
	return models.UserProfile{}, nil
}

// ---- Mock: RecipeService ----

type mockRecipeService struct {
	listFn func(ctx context.Context) ([]models.Recipe, error)
}

func (m *mockRecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Recipe{}, nil
}

// ---- Mock: HealthService ----

type mockHealthService struct {
	health models.HealthResponse
}

func (m *mockHealthService) Check(context.Context) models.HealthResponse {
	return m.health
}
