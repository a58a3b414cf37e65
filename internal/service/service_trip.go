// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/storage"
	"github.com/MKhiriev/go-trip-journal/internal/store"
	"github.com/MKhiriev/go-trip-journal/models"
)

// tripService orchestrates trip persistence and photo storage. Photo
// promotion happens before the document write, so a trip is never saved
// pointing at photos that are not in the permanent bucket. Photo deletion is
// best-effort and runs in the background; a failed deletion leaves an orphan
// object, never a broken trip.
type tripService struct {
	tripRepository store.TripRepository
	objectStorage  storage.ObjectStorage
	cleanup        ImageCleanupQueue

	logger *logger.Logger
}

func NewTripService(tripRepository store.TripRepository, objectStorage storage.ObjectStorage, cleanup ImageCleanupQueue, logger *logger.Logger) TripService {
	return &tripService{
		tripRepository: tripRepository,
		objectStorage:  objectStorage,
		cleanup:        cleanup,
		logger:         logger,
	}
}

// CreateTrip promotes every attached photo out of the temporary bucket and
// then inserts the trip document. A promotion failure aborts the whole
// operation and nothing is inserted.
func (t *tripService) CreateTrip(ctx context.Context, userID string, payload models.TripPayload) (models.TripCreated, error) {
	log := logger.FromContext(ctx)

	trip := tripFromPayload(userID, payload)

	for _, image := range trip.Images {
		if err := t.objectStorage.Promote(ctx, image.FileURLName); err != nil {
			log.Err(err).Str("fileUrlName", image.FileURLName).Msg("image promotion failed, trip not saved")
			return models.TripCreated{}, fmt.Errorf("image promotion failed: %w", err)
		}
	}

	insertedID, err := t.tripRepository.CreateTrip(ctx, trip)
	if err != nil {
		log.Err(err).Msg("trip creation ended with error")
		return models.TripCreated{}, fmt.Errorf("trip creation ended with error: %w", err)
	}

	return models.TripCreated{InsertedID: insertedID}, nil
}

// DeleteTrip removes the trip document and queues its photos for background
// deletion. The returned trip is nil when no document matched; the caller
// cannot tell a wrong id from a trip owned by someone else.
func (t *tripService) DeleteTrip(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	log := logger.FromContext(ctx)

	trip, err := t.tripRepository.DeleteTrip(ctx, tripID, userID)
	if err != nil {
		log.Err(err).Str("tripId", tripID).Msg("trip deletion ended with error")
		return nil, fmt.Errorf("trip deletion ended with error: %w", err)
	}
	if trip == nil {
		return nil, nil
	}

	if keys := imageKeys(trip.Images); len(keys) > 0 {
		t.cleanup.Enqueue(keys)
	}

	t.attachViewURLs(trip.Images)
	return trip, nil
}

func (t *tripService) GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	trips, err := t.tripRepository.GetUserTrips(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user trips lookup ended with error")
		return nil, fmt.Errorf("user trips lookup ended with error: %w", err)
	}

	for i := range trips {
		t.attachViewURLs(trips[i].Images)
	}
	return trips, nil
}

func (t *tripService) GetPublicTrips(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error) {
	trips, err := t.tripRepository.GetPublicTrips(ctx, cursor)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("public trips lookup ended with error")
		return nil, fmt.Errorf("public trips lookup ended with error: %w", err)
	}

	for i := range trips {
		t.attachViewURLs(trips[i].Images)
	}
	return trips, nil
}

// UpdateTrip reconciles the stored photo set against the submitted one:
// photos present only in the submission are promoted from the temporary
// bucket, photos present only in storage are queued for deletion, and then
// the document fields are replaced. When no trip matches the id+owner pair
// the update reports zero modifications and object storage is not touched.
func (t *tripService) UpdateTrip(ctx context.Context, userID, tripID string, payload models.TripPayload) (models.TripUpdated, error) {
	log := logger.FromContext(ctx)

	storedImages, found, err := t.tripRepository.GetTripImages(ctx, tripID, userID)
	if err != nil {
		log.Err(err).Str("tripId", tripID).Msg("trip images lookup ended with error")
		return models.TripUpdated{}, fmt.Errorf("trip images lookup ended with error: %w", err)
	}
	if !found {
		return models.TripUpdated{}, nil
	}

	update := tripUpdateFromPayload(payload)

	added, removed := diffImages(storedImages, update.Images)
	for _, image := range added {
		if err := t.objectStorage.Promote(ctx, image.FileURLName); err != nil {
			log.Err(err).Str("fileUrlName", image.FileURLName).Msg("image promotion failed, trip not updated")
			return models.TripUpdated{}, fmt.Errorf("image promotion failed: %w", err)
		}
	}
	if keys := imageKeys(removed); len(keys) > 0 {
		t.cleanup.Enqueue(keys)
	}

	modifiedCount, err := t.tripRepository.UpdateTrip(ctx, tripID, userID, update)
	if err != nil {
		log.Err(err).Str("tripId", tripID).Msg("trip update ended with error")
		return models.TripUpdated{}, fmt.Errorf("trip update ended with error: %w", err)
	}

	return models.TripUpdated{ModifiedCount: modifiedCount}, nil
}

// NewUploadURL mints a fresh storage key and signs a short-lived upload URL
// for it, locked to the declared content type.
func (t *tripService) NewUploadURL(ctx context.Context, contentType string) (models.UploadCredential, error) {
	if contentType == "" {
		return models.UploadCredential{}, ErrMissingContentType
	}

	key := t.tripRepository.NewFileURLName()
	credential, err := t.objectStorage.SignedUploadURL(ctx, key, contentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("fileUrlName", key).Msg("upload url signing ended with error")
		return models.UploadCredential{}, fmt.Errorf("upload url signing ended with error: %w", err)
	}

	return credential, nil
}

// attachViewURLs fills in the public view URL of every image in place.
func (t *tripService) attachViewURLs(images []models.Image) {
	for i := range images {
		images[i].S3URL = t.objectStorage.ViewURL(images[i].FileURLName)
	}
}
