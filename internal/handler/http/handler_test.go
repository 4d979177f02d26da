package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/metrics"
	"github.com/MKhiriev/recipe-tracker/internal/service"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/internal/validators"
	"github.com/MKhiriev/recipe-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	auth     *mockAuthService
	progress *mockProgressService
	recipes  *mockRecipeService
	health   *mockHealthService
}

func newTestServices() testServices {
	return testServices{
		auth:     &mockAuthService{},
		progress: &mockProgressService{},
		recipes:  &mockRecipeService{},
		health:   &mockHealthService{health: models.HealthResponse{Status: models.HealthStatusOK}},
	}
}

func (s testServices) router() http.Handler {
	services := &service.Services{
		AuthService:     s.auth,
		ProgressService: s.progress,
		RecipeService:   s.recipes,
		HealthService:   s.health,
	}
	return NewHandler(services, metrics.New(), config.Server{}, logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// Init and route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestServices().router()

	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/users", ""},
		{http.MethodPost, "/register", `{}`},
		{http.MethodPost, "/login", `{}`},
		{http.MethodPut, "/user/1/password", `{}`},
		{http.MethodDelete, "/user/1", ""},
		{http.MethodPost, "/forgot-password", `{}`},
		{http.MethodPost, "/reset-password", `{}`},
		{http.MethodGet, "/recipes", ""},
		{http.MethodGet, "/profile/1", ""},
		{http.MethodPost, "/progress/1/r1/start", ""},
		{http.MethodPut, "/progress/1/r1/ingredient", `{}`},
		{http.MethodGet, "/progress/1/r1", ""},
		{http.MethodPut, "/progress/1/r1/complete", ""},
		{http.MethodGet, "/healthz", ""},
		{http.MethodGet, "/metrics", ""},
	}

	for _, rc := range routes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rr := do(t, router, rc.method, rc.path, rc.body)
			assert.Less(t, rr.Code, 300, "body: %s", rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteAndMethod(t *testing.T) {
	router := newTestServices().router()

	for _, rc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodPatch, "/users"},
		{http.MethodDelete, "/progress/1/r1"},
	} {
		rr := do(t, router, rc.method, rc.path, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	s := newTestServices()
	s.recipes.listFn = func(context.Context) ([]models.Recipe, error) { panic("boom") }

	rr := do(t, s.router(), http.MethodGet, "/recipes", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_RequestTimeout(t *testing.T) {
	s := newTestServices()
	s.recipes.listFn = func(ctx context.Context) ([]models.Recipe, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	services := &service.Services{AuthService: s.auth, ProgressService: s.progress, RecipeService: s.recipes, HealthService: s.health}
	router := NewHandler(services, nil, config.Server{RequestTimeout: 20 * time.Millisecond}, logger.Nop()).Init()

	rr := do(t, router, http.MethodGet, "/recipes", "")
	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation failure exposes the rule",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid data provided: email is invalid"}`,
		},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"invalid password"}`},
		{name: "expired token", err: service.ErrInvalidOrExpiredToken, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"invalid or expired token"}`},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"no user was found"}`,
		},
		{name: "no progress", err: store.ErrNoProgress, wantStatus: http.StatusNotFound, wantBody: `{"error":"no progress for this recipe"}`},
		{name: "recipe not found", err: store.ErrRecipeNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"recipe not found"}`},
		{name: "ingredient not found", err: store.ErrIngredientNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"ingredient not found in progress"}`},
		{name: "conflict", err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantBody: `{"error":"email already exists"}`},
		{
			name:       "store failure is opaque",
			err:        fmt.Errorf("%w: %w", store.ErrScanningRow, errors.New(`pq: column "secret" does not exist`)),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// Users
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	s := newTestServices()
	s.auth.registerFn = func(_ context.Context, req models.RegisterRequest) (models.User, error) {
		assert.Equal(t, models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "p1", Country: "CO"}, req)
		return models.User{UserID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$secret", Country: "CO",
			CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}, nil
	}

	rr := do(t, s.router(), http.MethodPost, "/register", `{"name":"Ana","email":"ana@example.com","password":"p1","country":"CO"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"message":"User registered successfully",
		"user":{"id":1,"name":"Ana","email":"ana@example.com","country":"CO","created_at":"2026-03-01T00:00:00Z"}
	}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed JSON", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: `{"email":"a@b.c"}`, err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "invalid data", body: `{"email":"abc"}`, err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.auth.registerFn = func(context.Context, models.RegisterRequest) (models.User, error) {
				return models.User{}, tt.err
			}

			rr := do(t, s.router(), http.MethodPost, "/register", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServices()
	s.auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.User, error) {
		if req.Password != "p1" {
			return models.User{}, service.ErrWrongPassword
		}
		return models.User{UserID: 1, Email: req.Email, PasswordHash: "hash"}, nil
	}
	router := s.router()

	rr := do(t, router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"p1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Login successful"`)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = do(t, router, http.MethodPost, "/login", `{"email":"ana@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListUsers(t *testing.T) {
	s := newTestServices()
	s.auth.listUsersFn = func(context.Context) ([]models.User, error) {
		return []models.User{{UserID: 1, Name: "Ana", PasswordHash: "hash"}}, nil
	}

	rr := do(t, s.router(), http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Ana"`)
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestChangePassword(t *testing.T) {
	s := newTestServices()
	s.auth.changePasswordFn = func(_ context.Context, req models.ChangePasswordRequest) error {
		assert.Equal(t, models.ChangePasswordRequest{UserID: 42, NewPassword: "n"}, req)
		return nil
	}
	router := s.router()

	rr := do(t, router, http.MethodPut, "/user/42/password", `{"newPassword":"n"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Password updated successfully"}`, rr.Body.String())

	rr = do(t, router, http.MethodPut, "/user/abc/password", `{"newPassword":"n"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid user id"}`, rr.Body.String())
}

func TestDeleteUser(t *testing.T) {
	s := newTestServices()
	s.auth.deleteUserFn = func(_ context.Context, userID int64) error {
		if userID == 404 {
			return store.ErrNoUserWasFound
		}
		return nil
	}
	router := s.router()

	rr := do(t, router, http.MethodDelete, "/user/7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rr.Body.String())

	rr = do(t, router, http.MethodDelete, "/user/404", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestForgotAndResetPassword(t *testing.T) {
	s := newTestServices()
	s.auth.forgotFn = func(_ context.Context, req models.ForgotPasswordRequest) error {
		if req.Email != "ana@example.com" {
			return store.ErrNoUserWasFound
		}
		return nil
	}
	s.auth.resetFn = func(_ context.Context, req models.ResetPasswordRequest) error {
		if req.Token != "good" {
			return service.ErrInvalidOrExpiredToken
		}
		assert.Equal(t, "n", req.NewPassword)
		return nil
	}
	router := s.router()

	rr := do(t, router, http.MethodPost, "/forgot-password", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = do(t, router, http.MethodPost, "/forgot-password", `{"email":"bob@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodPost, "/reset-password", `{"token":"good","newPassword":"n"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = do(t, router, http.MethodPost, "/reset-password", `{"token":"bad","newPassword":"n"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// Recipes and progress
// ─────────────────────────────────────────────

func TestListRecipes_StoreFailure(t *testing.T) {
	s := newTestServices()
	s.recipes.listFn = func(context.Context) ([]models.Recipe, error) {
		return nil, fmt.Errorf("%w: connection reset", store.ErrQueryingDocuments)
	}

	rr := do(t, s.router(), http.MethodGet, "/recipes", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

func TestGetProfile(t *testing.T) {
	s := newTestServices()
	s.progress.profileFn = func(_ context.Context, userID int64) (models.UserProfile, error) {
		assert.Equal(t, int64(3), userID)
		return models.UserProfile{CompletedRecipes: []models.Recipe{}, UnfinishedRecipes: []models.Recipe{}}, nil
	}

	rr := do(t, s.router(), http.MethodGet, "/profile/3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"completedRecipes":[],"unfinishedRecipes":[]}`, rr.Body.String())
}

func TestStartProgress(t *testing.T) {
	s := newTestServices()
	s.progress.startFn = func(_ context.Context, key models.ProgressKey) (models.StartProgressResult, error) {
		assert.Equal(t, models.ProgressKey{UserID: 1, RecipeID: "r1"}, key)
		return models.StartProgressResult{
			ProgressID:  5,
			Ingredients: []models.IngredientState{{Name: "flour", Quantity: "200g", IsDone: true}},
		}, nil
	}

	rr := do(t, s.router(), http.MethodPost, "/progress/1/r1/start", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"message":"Recipe progress started",
		"progressId":5,
		"ingredients":[{"name":"flour","quantity":"200g","isDone":true}]
	}`, rr.Body.String())
}

func TestUpdateIngredient(t *testing.T) {
	s := newTestServices()
	s.progress.updateFn = func(_ context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error) {
		assert.Equal(t, models.ProgressKey{UserID: 1, RecipeID: "r1"}, req.ProgressKey)
		if req.IngredientName != "flour" {
			return models.IngredientProgress{}, store.ErrIngredientNotFound
		}
		return models.IngredientProgress{ProgressID: 5, IngredientName: req.IngredientName, IsDone: req.IsDone}, nil
	}
	router := s.router()

	rr := do(t, router, http.MethodPut, "/progress/1/r1/ingredient", `{"ingredientName":"flour","isDone":true}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"message":"Ingredient updated",
		"ingredient":{"progress_id":5,"ingredient_name":"flour","is_done":true}
	}`, rr.Body.String())

	rr = do(t, router, http.MethodPut, "/progress/1/r1/ingredient", `{"ingredientName":"sugar","isDone":true}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetProgress_NoProgress(t *testing.T) {
	s := newTestServices()
	s.progress.getFn = func(context.Context, models.ProgressKey) (models.ProgressView, error) {
		return models.ProgressView{}, store.ErrNoProgress
	}

	rr := do(t, s.router(), http.MethodGet, "/progress/1/r1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"no progress for this recipe"}`, rr.Body.String())
}

func TestCompleteProgress(t *testing.T) {
	completedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := newTestServices()
	s.progress.completeFn = func(context.Context, models.ProgressKey) (models.Progress, error) {
		return models.Progress{ID: 5, UserID: 1, RecipeID: "r1", Status: models.ProgressCompleted, CompletedAt: &completedAt}, nil
	}

	rr := do(t, s.router(), http.MethodPut, "/progress/1/r1/complete", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"completed"`)
	assert.Contains(t, rr.Body.String(), `"completed_at":"2026-03-02T10:00:00Z"`)
}

// ─────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	s := newTestServices()
	router := s.router()

	rr := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	s.health.health = models.HealthResponse{Status: models.HealthStatusUnavailable, Relational: models.HealthStatusDown, Documents: models.HealthStatusUp}
	rr = do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable","relational":"down","documents":"up"}`, rr.Body.String())
}
