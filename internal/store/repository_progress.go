package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/models"
)

// progressRepository is the SQL implementation of [ProgressRepository] over
// the "recipe_progress" and "ingredient_progress" tables.
type progressRepository struct {
	db     *DB
	q      DBTX
	logger *logger.Logger
}

func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

// FindProgress returns the header for the (user, recipe) pair or [ErrNoProgress].
func (r *progressRepository) FindProgress(ctx context.Context, userID int64, recipeID string) (models.Progress, error) {
	log := logger.FromContext(ctx)

	query := selectProgressQuery(r.db.builder()).Where(sq.Eq{"user_id": userID, "recipe_id": recipeID})
	row, err := r.db.queryRow(ctx, r.q, query)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.FindProgress").Msg("error building query")
		return models.Progress{}, err
	}

	progress, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Progress{}, ErrNoProgress
	}
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.FindProgress").
			Int64("user_id", userID).Str("recipe_id", recipeID).Msg("error selecting progress")
		return models.Progress{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return progress, nil
}

// CreateProgress inserts a new in-progress header.
//
// Error handling:
//   - the pair already has a header → [ErrProgressAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *progressRepository) CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error) {
	log := logger.FromContext(ctx)

	if progress.Status == "" {
		progress.Status = models.ProgressInProgress
	}
	if progress.StartedAt.IsZero() {
		progress.StartedAt = time.Now().UTC()
	}

	row, err := r.db.queryRow(ctx, r.q, insertProgressQuery(r.db.builder(), progress))
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.CreateProgress").Msg("error building query")
		return models.Progress{}, err
	}

	created, err := scanProgress(row)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, sql.ErrNoRows), r.db.isUniqueViolation(err):
		return models.Progress{}, ErrProgressAlreadyExists
	case r.db.isForeignKeyViolation(err):
		return models.Progress{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", "*progressRepository.CreateProgress").
			Bool("retryable", r.db.isRetryable(err)).Msg("error inserting progress")
		return models.Progress{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// ListUserProgress returns every header of the user, oldest first.
func (r *progressRepository) ListUserProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	log := logger.FromContext(ctx)

	query := selectProgressQuery(r.db.builder()).Where(sq.Eq{"user_id": userID}).OrderBy("started_at", "id")
	rows, err := r.db.query(ctx, r.q, query)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListUserProgress").Int64("user_id", userID).Msg("error selecting progress")
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Progress, 0)
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			log.Err(err).Str("func", "*progressRepository.ListUserProgress").Msg("error scanning progress row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list = append(list, progress)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// CompleteProgress marks the header completed. Calling it again overwrites
// completed_at with the new time.
func (r *progressRepository) CompleteProgress(ctx context.Context, progressID int64, completedAt time.Time) (models.Progress, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.q, completeProgressQuery(r.db.builder(), progressID, completedAt.UTC()))
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.CompleteProgress").Msg("error building query")
		return models.Progress{}, err
	}

	progress, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Progress{}, ErrNoProgress
	}
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.CompleteProgress").Int64("progress_id", progressID).Msg("error completing progress")
		return models.Progress{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return progress, nil
}

func (r *progressRepository) InsertIngredientsIfAbsent(ctx context.Context, progressID int64, names []string) error {
	log := logger.FromContext(ctx)

	if len(uniqueNames(names)) == 0 {
		return nil
	}

	if _, err := r.db.exec(ctx, r.q, insertIngredientsIfAbsentQuery(r.db.builder(), progressID, names)); err != nil {
		log.Err(err).Str("func", "*progressRepository.InsertIngredientsIfAbsent").
			Int64("progress_id", progressID).Int("names", len(names)).Msg("error inserting ingredient rows")
		return err
	}

	return nil
}

func (r *progressRepository) ListIngredientProgress(ctx context.Context, progressID int64) ([]models.IngredientProgress, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.q, selectIngredientsQuery(r.db.builder(), progressID))
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.ListIngredientProgress").Int64("progress_id", progressID).Msg("error selecting ingredient rows")
		return nil, err
	}
	defer rows.Close()

	list := make([]models.IngredientProgress, 0)
	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			log.Err(err).Str("func", "*progressRepository.ListIngredientProgress").Msg("error scanning ingredient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list = append(list, ingredient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// UpdateIngredient sets the done flag of an existing ingredient row.
// Returns [ErrIngredientNotFound] when the row does not exist.
func (r *progressRepository) UpdateIngredient(ctx context.Context, progressID int64, name string, isDone bool) (models.IngredientProgress, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.q, updateIngredientQuery(r.db.builder(), progressID, name, isDone))
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.UpdateIngredient").Msg("error building query")
		return models.IngredientProgress{}, err
	}

	ingredient, err := scanIngredient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IngredientProgress{}, ErrIngredientNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.UpdateIngredient").
			Int64("progress_id", progressID).Str("ingredient", name).Msg("error updating ingredient")
		return models.IngredientProgress{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return ingredient, nil
}
