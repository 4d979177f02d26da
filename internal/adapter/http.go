package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config configures [NewHTTPAPIClient].
type Config struct {
	// BaseURL is the server address; a missing scheme defaults to http.
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient].
// It returns an error if cfg.BaseURL is empty or is not a valid URL.
func NewHTTPAPIClient(cfg Config, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAPIClient) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// do runs the prepared request and maps transport and status failures.
func (h *httpAPIClient) do(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("op", op).Int("status", resp.StatusCode()).Err(err).Msg("request failed")
		return err
	}
	return nil
}

func decodeBody(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func progressPath(key models.ProgressKey, suffix string) string {
	return "/progress/" + strconv.FormatInt(key.UserID, 10) + "/" + url.PathEscape(key.RecipeID) + suffix
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	// 503 still carries the report
	resp, err := h.request(ctx).Get("/healthz")
	if err = h.do("health", resp, err); err != nil && !errors.Is(err, ErrServiceUnavailable) {
		return models.HealthResponse{}, err
	}

	if decodeErr := decodeBody(resp, &health); decodeErr != nil {
		return models.HealthResponse{}, decodeErr
	}
	return health, err
}

func (h *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).SetResult(&users).Get("/users")
	if err = h.do("list users", resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var result models.UserResponse

	resp, err := h.jsonRequest(ctx, req).SetResult(&result).Post("/register")
	if err = h.do("register", resp, err); err != nil {
		return models.User{}, err
	}
	return result.User, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var result models.UserResponse

	resp, err := h.jsonRequest(ctx, req).SetResult(&result).Post("/login")
	if err = h.do("login", resp, err); err != nil {
		return models.User{}, err
	}
	return result.User, nil
}

func (h *httpAPIClient) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	resp, err := h.jsonRequest(ctx, models.ChangePasswordRequest{NewPassword: newPassword}).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Put("/user/{id}/password")
	return h.do("change password", resp, err)
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/user/{id}")
	return h.do("delete user", resp, err)
}

func (h *httpAPIClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := h.jsonRequest(ctx, models.ForgotPasswordRequest{Email: email}).Post("/forgot-password")
	return h.do("forgot password", resp, err)
}

func (h *httpAPIClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	resp, err := h.jsonRequest(ctx, models.ResetPasswordRequest{Token: token, NewPassword: newPassword}).
		Post("/reset-password")
	return h.do("reset password", resp, err)
}

func (h *httpAPIClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	resp, err := h.request(ctx).SetResult(&recipes).Get("/recipes")
	if err = h.do("list recipes", resp, err); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (h *httpAPIClient) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.request(ctx).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&profile).
		Get("/profile/{userId}")
	if err = h.do("get profile", resp, err); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (h *httpAPIClient) StartProgress(ctx context.Context, key models.ProgressKey) (models.StartProgressResult, error) {
	var result models.StartProgressResponse

	resp, err := h.request(ctx).SetResult(&result).Post(progressPath(key, "/start"))
	if err = h.do("start progress", resp, err); err != nil {
		return models.StartProgressResult{}, err
	}
	return result.StartProgressResult, nil
}

func (h *httpAPIClient) UpdateIngredient(ctx context.Context, req models.UpdateIngredientRequest) (models.IngredientProgress, error) {
	var result models.IngredientResponse

	resp, err := h.jsonRequest(ctx, req).SetResult(&result).Put(progressPath(req.ProgressKey, "/ingredient"))
	if err = h.do("update ingredient", resp, err); err != nil {
		return models.IngredientProgress{}, err
	}
	return result.Ingredient, nil
}

func (h *httpAPIClient) GetProgress(ctx context.Context, key models.ProgressKey) (models.ProgressView, error) {
	var view models.ProgressView

	resp, err := h.request(ctx).SetResult(&view).Get(progressPath(key, ""))
	if err = h.do("get progress", resp, err); err != nil {
		return models.ProgressView{}, err
	}
	return view, nil
}

func (h *httpAPIClient) CompleteProgress(ctx context.Context, key models.ProgressKey) (models.Progress, error) {
	var result models.ProgressResponse

	resp, err := h.request(ctx).SetResult(&result).Put(progressPath(key, "/complete"))
	if err = h.do("complete progress", resp, err); err != nil {
		return models.Progress{}, err
	}
	return result.Progress, nil
}
