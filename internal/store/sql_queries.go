package store

import (
	"database/sql"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/recipe-tracker/models"
)

var (
	userColumns       = []string{"id", "name", "email", "password_hash", "country", "created_at"}
	resetTokenColumns = []string{"token", "user_id", "expires_at"}
	progressColumns   = []string{"id", "user_id", "recipe_id", "status", "started_at", "completed_at"}
	ingredientColumns = []string{"progress_id", "ingredient_name", "is_done"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func insertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(user.TableName()).
		Columns("name", "email", "password_hash", "country", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.Country, user.CreatedAt).
		Suffix(returning(userColumns))
}

func selectUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(models.User{}.TableName())
}

func updatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) sq.UpdateBuilder {
	return b.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID})
}

func deleteUserQuery(b sq.StatementBuilderType, userID int64) sq.DeleteBuilder {
	return b.Delete(models.User{}.TableName()).Where(sq.Eq{"id": userID})
}

// ── password reset tokens ────────────────────────────────────────────────────

func insertResetTokenQuery(b sq.StatementBuilderType, token models.PasswordResetToken) sq.InsertBuilder {
	return b.Insert(token.TableName()).
		Columns(resetTokenColumns...).
		Values(token.Token, token.UserID, token.ExpiresAt)
}

func selectResetTokenQuery(b sq.StatementBuilderType, token string) sq.SelectBuilder {
	return b.Select(resetTokenColumns...).
		From(models.PasswordResetToken{}.TableName()).
		Where(sq.Eq{"token": token})
}

func deleteResetTokenQuery(b sq.StatementBuilderType, token string) sq.DeleteBuilder {
	return b.Delete(models.PasswordResetToken{}.TableName()).Where(sq.Eq{"token": token})
}

func deleteExpiredResetTokensQuery(b sq.StatementBuilderType, now time.Time) sq.DeleteBuilder {
	return b.Delete(models.PasswordResetToken{}.TableName()).Where(sq.LtOrEq{"expires_at": now})
}

// ── recipe progress ──────────────────────────────────────────────────────────

func selectProgressQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(progressColumns...).From(models.Progress{}.TableName())
}

// insertProgressQuery returns no row when the (user_id, recipe_id) pair is
// already taken, so a losing concurrent insert leaves the transaction usable.
func insertProgressQuery(b sq.StatementBuilderType, progress models.Progress) sq.InsertBuilder {
	return b.Insert(progress.TableName()).
		Columns("user_id", "recipe_id", "status", "started_at").
		Values(progress.UserID, progress.RecipeID, string(progress.Status), progress.StartedAt).
		Suffix("ON CONFLICT (user_id, recipe_id) DO NOTHING").
		Suffix(returning(progressColumns))
}

func completeProgressQuery(b sq.StatementBuilderType, progressID int64, completedAt time.Time) sq.UpdateBuilder {
	return b.Update(models.Progress{}.TableName()).
		Set("status", string(models.ProgressCompleted)).
		Set("completed_at", completedAt).
		Where(sq.Eq{"id": progressID}).
		Suffix(returning(progressColumns))
}

// ── ingredient progress ──────────────────────────────────────────────────────

// insertIngredientsIfAbsentQuery inserts one not-done row per distinct name.
// Rows that already exist keep their flag.
func insertIngredientsIfAbsentQuery(b sq.StatementBuilderType, progressID int64, names []string) sq.InsertBuilder {
	query := b.Insert(models.IngredientProgress{}.TableName()).Columns(ingredientColumns...)
	for _, name := range uniqueNames(names) {
		query = query.Values(progressID, name, false)
	}
	return query.Suffix("ON CONFLICT (progress_id, ingredient_name) DO NOTHING")
}

func selectIngredientsQuery(b sq.StatementBuilderType, progressID int64) sq.SelectBuilder {
	return b.Select(ingredientColumns...).
		From(models.IngredientProgress{}.TableName()).
		Where(sq.Eq{"progress_id": progressID}).
		OrderBy("ingredient_name")
}

func updateIngredientQuery(b sq.StatementBuilderType, progressID int64, name string, isDone bool) sq.UpdateBuilder {
	return b.Update(models.IngredientProgress{}.TableName()).
		Set("is_done", isDone).
		Where(sq.Eq{"progress_id": progressID, "ingredient_name": name}).
		Suffix(returning(ingredientColumns))
}

func uniqueNames(names []string) []string {
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" && !slices.Contains(unique, name) {
			unique = append(unique, name)
		}
	}
	return unique
}

// ── scanning ─────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.Country, &user.CreatedAt)
	return user, err
}

func scanResetToken(row rowScanner) (models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := row.Scan(&token.Token, &token.UserID, &token.ExpiresAt)
	return token, err
}

func scanProgress(row rowScanner) (models.Progress, error) {
	var (
		progress    models.Progress
		status      string
		completedAt sql.NullTime
	)

	if err := row.Scan(&progress.ID, &progress.UserID, &progress.RecipeID, &status, &progress.StartedAt, &completedAt); err != nil {
		return models.Progress{}, err
	}

	progress.Status = models.ProgressStatus(status)
	if completedAt.Valid {
		t := completedAt.Time
		progress.CompletedAt = &t
	}
	return progress, nil
}

func scanIngredient(row rowScanner) (models.IngredientProgress, error) {
	var ingredient models.IngredientProgress
	err := row.Scan(&ingredient.ProgressID, &ingredient.IngredientName, &ingredient.IsDone)
	return ingredient, err
}
