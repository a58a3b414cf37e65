package store

import (
	"context"

	"github.com/MKhiriev/go-trip-journal/models"
)

// TripRepository defines all persistence operations over the trip
// collection. The service layer depends on this interface, never on the
// MongoDB implementation directly.
type TripRepository interface {
	// CreateTrip inserts a new trip document and returns the hex form of
	// the generated ObjectID.
	CreateTrip(ctx context.Context, trip models.Trip) (string, error)

	// DeleteTrip removes at most one trip matching both id and owner and
	// returns the removed document. A nil trip with a nil error means no
	// document matched: a wrong id and a wrong owner are indistinguishable.
	DeleteTrip(ctx context.Context, tripID, userID string) (*models.Trip, error)

	// GetUserTrips returns every trip of the owner sorted by
	// (endDate desc, startDate desc, _id desc). Unbounded.
	GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error)

	// GetPublicTrips returns one page of publicly visible trips under the
	// same fixed sort. A nil cursor requests the first page; otherwise only
	// rows sorting strictly after the cursor are returned. When the returned
	// page is the final one, its last element carries NoMoreRecords=true.
	GetPublicTrips(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error)

	// UpdateTrip replaces the mutable fields of at most one trip matching
	// id and owner. The returned count is zero both when nothing matched and
	// when the matched document already held the submitted values.
	UpdateTrip(ctx context.Context, tripID, userID string, update models.TripUpdate) (int64, error)

	// GetTripImages fetches only the image list of the given trip, for
	// ownership probing and image-set diffing. found is false when no
	// document matched the id+owner pair.
	GetTripImages(ctx context.Context, tripID, userID string) (images []models.Image, found bool, err error)

	// NewFileURLName mints a globally unique storage key for a
	// not-yet-uploaded photo, using the same id scheme as trip documents.
	NewFileURLName() string
}
