package store

import (
	"context"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
)

// Storages bundles every repository backed by the database connection.
type Storages struct {
	TripRepository
}

// NewStorages wires the repositories over an established connection and
// creates the indexes they rely on.
func NewStorages(ctx context.Context, db *DB, log *logger.Logger) (*Storages, error) {
	tripRepository := NewTripRepositoryMongo(db, log)
	if err := tripRepository.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return &Storages{TripRepository: tripRepository}, nil
}
