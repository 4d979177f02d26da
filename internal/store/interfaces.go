package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/recipe-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user and returns it with the assigned id.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdatePassword overwrites the stored hash; ErrNoUserWasFound if no row matched.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	// DeleteUser removes the user; tokens and progress cascade.
	DeleteUser(ctx context.Context, userID int64) error
}

// ResetTokenRepository persists single-use password reset tokens.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, token models.PasswordResetToken) error
	FindResetToken(ctx context.Context, token string) (models.PasswordResetToken, error)
	// DeleteResetToken returns ErrResetTokenNotFound when nothing was deleted.
	DeleteResetToken(ctx context.Context, token string) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// ProgressRepository persists progress headers and their ingredient rows.
type ProgressRepository interface {
	FindProgress(ctx context.Context, userID int64, recipeID string) (models.Progress, error)
	// CreateProgress yields ErrProgressAlreadyExists when a header for the
	// same (user, recipe) pair is already stored.
	CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error)
	ListUserProgress(ctx context.Context, userID int64) ([]models.Progress, error)
	CompleteProgress(ctx context.Context, progressID int64, completedAt time.Time) (models.Progress, error)

	// InsertIngredientsIfAbsent adds a not-done row for every name that has
	// no row yet. Existing rows are never modified.
	InsertIngredientsIfAbsent(ctx context.Context, progressID int64, names []string) error
	ListIngredientProgress(ctx context.Context, progressID int64) ([]models.IngredientProgress, error)
	UpdateIngredient(ctx context.Context, progressID int64, name string, isDone bool) (models.IngredientProgress, error)
}

// RecipeRepository reads recipe documents. Recipes are never written here.
type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	// FindRecipe yields ErrRecipeNotFound for malformed ids and missing documents.
	FindRecipe(ctx context.Context, recipeID string) (models.Recipe, error)
	// FindRecipesByIDs returns the existing recipes among ids, in the order
	// of ids. Malformed and dangling ids are skipped.
	FindRecipesByIDs(ctx context.Context, recipeIDs []string) ([]models.Recipe, error)
}

// TxRepositories are repositories bound to a single transaction.
type TxRepositories struct {
	Users       UserRepository
	ResetTokens ResetTokenRepository
	Progress    ProgressRepository
}

// Transactor runs fn inside a relational transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
