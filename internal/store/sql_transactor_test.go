package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_BeginError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := NewTransactor(db, logger.Nop()).WithinTransaction(context.Background(), func(context.Context, TxRepositories) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
}

func TestWithinTransaction_CommitError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := NewTransactor(db, logger.Nop()).WithinTransaction(context.Background(), func(context.Context, TxRepositories) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_UsesTransactionForRepositories(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM password_reset_tokens WHERE token = \\$1").
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := NewTransactor(db, logger.Nop()).WithinTransaction(context.Background(), func(ctx context.Context, repos TxRepositories) error {
		return repos.ResetTokens.DeleteResetToken(ctx, "abc")
	})

	assert.ErrorIs(t, err, ErrResetTokenNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
