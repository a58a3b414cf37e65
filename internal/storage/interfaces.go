// Package storage provides the object storage gateway for trip photos.
// Uploads go to a short-lived temporary bucket via pre-signed URLs and are
// promoted into the permanent bucket once their trip is saved.
package storage

import (
	"context"

	"github.com/MKhiriev/go-trip-journal/models"
)

// ObjectStorage is the photo storage surface used by the trip service.
type ObjectStorage interface {
	// SignedUploadURL issues an upload credential for one photo: a
	// pre-signed PUT into the temporary bucket, locked to the given
	// content type.
	SignedUploadURL(ctx context.Context, key, contentType string) (models.UploadCredential, error)

	// Promote copies the object from the temporary bucket into the
	// permanent one. The temporary copy is left for its bucket expiry
	// policy to reap.
	Promote(ctx context.Context, key string) error

	// Remove deletes the given keys from the permanent bucket, continuing
	// past individual failures and reporting the first one.
	Remove(ctx context.Context, keys []string) error

	// ViewURL returns the public download URL of a promoted object.
	ViewURL(key string) string
}
