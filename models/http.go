package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Country  string `json:"country"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of PUT /user/{id}/password.
// UserID comes from the path.
type ChangePasswordRequest struct {
	UserID      int64  `json:"-"`
	NewPassword string `json:"newPassword"`
}

// ForgotPasswordRequest is the body of POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UpdateIngredientRequest is the body of PUT /progress/{userId}/{recipeId}/ingredient.
// The embedded key comes from the path.
type UpdateIngredientRequest struct {
	ProgressKey    `json:"-"`
	IngredientName string `json:"ingredientName"`
	IsDone         bool   `json:"isDone"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of requests that return only a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse carries a confirmation together with the public user fields.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// StartProgressResponse is the body of POST /progress/{userId}/{recipeId}/start.
type StartProgressResponse struct {
	Message string `json:"message"`
	StartProgressResult
}

// IngredientResponse is the body of PUT /progress/{userId}/{recipeId}/ingredient.
type IngredientResponse struct {
	Message    string             `json:"message"`
	Ingredient IngredientProgress `json:"ingredient"`
}

// ProgressResponse is the body of PUT /progress/{userId}/{recipeId}/complete.
type ProgressResponse struct {
	Message  string   `json:"message"`
	Progress Progress `json:"progress"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status     string `json:"status"`
	Relational string `json:"relational"`
	Documents  string `json:"documents"`
	Version    string `json:"version,omitempty"`
}

// Healthy reports whether every backing store answered.
func (h HealthResponse) Healthy() bool {
	return h.Status == HealthStatusOK
}

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthStatusUp          = "up"
	HealthStatusDown        = "down"
)
