package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT into users violates
	// the unique constraint on email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup, update or delete by id or
	// email matches no user row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResetTokenNotFound is returned when a password reset token does not
	// exist, including when it was deleted by a concurrent redemption.
	ErrResetTokenNotFound = errors.New("reset token was not found")

	// ErrNoProgress is returned when no progress header exists for the
	// requested (user, recipe) pair.
	ErrNoProgress = errors.New("no progress for this recipe")

	// ErrProgressAlreadyExists is returned when inserting a progress header
	// violates the (user_id, recipe_id) uniqueness constraint.
	ErrProgressAlreadyExists = errors.New("progress already exists")

	// ErrIngredientNotFound is returned when an ingredient row does not
	// exist under the given progress header.
	ErrIngredientNotFound = errors.New("ingredient not found in progress")

	// ErrRecipeNotFound is returned when the recipe id is not a valid
	// ObjectID or no recipe document has that id.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a storage operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrQueryingDocuments is returned when a MongoDB find or decode fails.
	ErrQueryingDocuments = errors.New("error querying documents")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// relational driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
