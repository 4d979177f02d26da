package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB is a connected document store client bound to one database.
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB and verifies the connection with a ping.
func NewConnectMongo(ctx context.Context, cfg config.Documents, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50),
	)
	if err != nil {
		log.Err(err).Str("func", "store.NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	db := &MongoDB{
		Client: client,
		DB:     client.Database(cfg.Database),
		logger: log,
	}

	if err := db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "store.NewConnectMongo").Msg("error pinging mongo")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("connected to document store")
	return db, nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
