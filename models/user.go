package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication.
// The password hash is never serialized to clients.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	// It is stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is used only by the authentication layer and never leaves the server.
	PasswordHash string `json:"-"`

	// Country is a free-form country name supplied at registration.
	Country string `json:"country"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email
// address so that lookups and the uniqueness constraint agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PasswordResetToken is a single-use credential issued by the forgot-password
// flow. A token is valid iff it exists and ExpiresAt is after the current time.
type PasswordResetToken struct {
	// Token is the hex encoding of 32 random bytes.
	Token string `json:"-"`

	// UserID references the owner of the token.
	UserID int64 `json:"user_id"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the PasswordResetToken model.
func (t PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// IsValidAt reports whether the token is still redeemable at now.
func (t PasswordResetToken) IsValidAt(now time.Time) bool {
	return t.Token != "" && t.ExpiresAt.After(now)
}
