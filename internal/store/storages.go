package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
)

// Storages groups every repository of the server together with the
// connections backing them.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
	ProgressRepository   ProgressRepository
	RecipeRepository     RecipeRepository
	Transactor           Transactor

	// Relational and Documents are probed by the health check.
	Relational Pinger
	Documents  Pinger

	closers []func(ctx context.Context) error
}

// NewStorages initialises the storage layer:
//  1. Opens the relational database selected by cfg.DB.DSN.
//  2. Applies pending schema migrations.
//  3. Connects to the recipe document store.
//  4. Constructs the repositories.
//
// Connections opened before a failing step are closed.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	documents, err := NewConnectMongo(ctx, cfg.Documents, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("document store connection error: %w", err)
	}

	storages := NewStoragesFrom(db, documents, cfg.Documents.RecipesCollection, logger)
	storages.closers = []func(ctx context.Context) error{
		func(context.Context) error { return db.Close() },
		documents.Close,
	}
	return storages, nil
}

// NewStoragesFrom builds the repositories on already opened connections.
func NewStoragesFrom(db *DB, documents *MongoDB, recipesCollection string, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		ResetTokenRepository: NewResetTokenRepository(db, logger),
		ProgressRepository:   NewProgressRepository(db, logger),
		RecipeRepository:     NewRecipeRepository(documents.DB.Collection(recipesCollection), logger),
		Transactor:           NewTransactor(db, logger),
		Relational:           db,
		Documents:            documents,
	}
}

// Close releases all connections opened by [NewStorages].
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
