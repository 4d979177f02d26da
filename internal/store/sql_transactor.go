package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/logger"
)

// sqlTransactor implements [Transactor] on top of *DB. Every call gets a
// fresh set of repositories bound to the transaction.
type sqlTransactor struct {
	db     *DB
	logger *logger.Logger
}

func NewTransactor(db *DB, logger *logger.Logger) Transactor {
	return &sqlTransactor{db: db, logger: logger}
}

// WithinTransaction commits when fn returns nil and rolls back on error or
// panic. Panics are rethrown after the rollback.
func (t *sqlTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*sqlTransactor.WithinTransaction").Msg("error rolling back transaction")
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).Str("func", "*sqlTransactor.WithinTransaction").Msg("error committing transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	repos := TxRepositories{
		Users:       &userRepository{db: t.db, q: tx, logger: t.logger},
		ResetTokens: &resetTokenRepository{db: t.db, q: tx, logger: t.logger},
		Progress:    &progressRepository{db: t.db, q: tx, logger: t.logger},
	}

	return fn(ctx, repos)
}
