package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		retryable bool
		unique    bool
		fk        bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), unique: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), unique: true},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), fk: true},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), retryable: true},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), retryable: true},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), retryable: true},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), retryable: true},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, c.Classify(tt.err) == Retryable)
			assert.Equal(t, tt.unique, c.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.fk, c.IsForeignKeyViolation(tt.err))
		})
	}
}

func TestClassifyPgError(t *testing.T) {
	assert.Equal(t, Retryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.ConnectionException}))
	assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primaryKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	locked := sqlite3.Error{Code: sqlite3.ErrLocked}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", primaryKey)))
	assert.False(t, c.IsUniqueViolation(foreignKey))
	assert.False(t, c.IsUniqueViolation(errors.New("boom")))
	assert.True(t, c.IsForeignKeyViolation(foreignKey))
	assert.False(t, c.IsForeignKeyViolation(unique))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, Retryable, c.Classify(locked))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
