package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-trip-journal/internal/config"
	"github.com/MKhiriev/go-trip-journal/internal/logger"
)

// DB wraps the shared MongoDB client and the trip collection handle.
// One DB is created at process start and reused by every request; the
// driver's connection pool handles concurrency.
type DB struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewConnectMongo establishes the MongoDB connection, pings it, and returns
// a DB bound to the configured trip collection.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %s", ErrDatabaseConnection, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to database successfully")

	db := &DB{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     log,
	}

	return db, nil
}

// Close disconnects the underlying client. Call once at shutdown.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
