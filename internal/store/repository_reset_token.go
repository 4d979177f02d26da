package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/models"
)

type resetTokenRepository struct {
	db     *DB
	q      DBTX
	logger *logger.Logger
}

func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token models.PasswordResetToken) error {
	log := logger.FromContext(ctx)

	token.ExpiresAt = token.ExpiresAt.UTC()
	if _, err := r.db.exec(ctx, r.q, insertResetTokenQuery(r.db.builder(), token)); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.CreateResetToken").Int64("user_id", token.UserID).Msg("error saving reset token")
		return err
	}

	return nil
}

func (r *resetTokenRepository) FindResetToken(ctx context.Context, token string) (models.PasswordResetToken, error) {
	log := logger.FromContext(ctx)

	row, err := r.db.queryRow(ctx, r.q, selectResetTokenQuery(r.db.builder(), token))
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindResetToken").Msg("error building query")
		return models.PasswordResetToken{}, err
	}

	found, err := scanResetToken(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindResetToken").Msg("error selecting reset token")
		return models.PasswordResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *resetTokenRepository) DeleteResetToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.q, deleteResetTokenQuery(r.db.builder(), token))
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteResetToken").Msg("error deleting reset token")
		return err
	}
	if affected == 0 {
		return ErrResetTokenNotFound
	}

	return nil
}

// DeleteExpiredResetTokens removes tokens that expired at or before now and
// reports how many were removed.
func (r *resetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.q, deleteExpiredResetTokensQuery(r.db.builder(), now.UTC()))
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteExpiredResetTokens").Msg("error purging reset tokens")
		return 0, err
	}

	return affected, nil
}
