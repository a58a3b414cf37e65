package service

import (
	"context"

	"github.com/MKhiriev/go-trip-journal/models"
)

type TripService interface {
	CreateTrip(ctx context.Context, userID string, payload models.TripPayload) (models.TripCreated, error)

	// DeleteTrip returns the removed trip, or nil when nothing matched the
	// id+owner pair. A nil trip is not an error.
	DeleteTrip(ctx context.Context, userID, tripID string) (*models.Trip, error)

	GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error)
	GetPublicTrips(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error)

	UpdateTrip(ctx context.Context, userID, tripID string, payload models.TripPayload) (models.TripUpdated, error)

	// NewUploadURL mints a storage key and signs an upload URL for a photo
	// of the given content type.
	NewUploadURL(ctx context.Context, contentType string) (models.UploadCredential, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ImageCleanupQueue accepts storage keys for best-effort background
// deletion. Enqueue never blocks the caller.
type ImageCleanupQueue interface {
	Enqueue(keys []string)
}
