// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/models"
)

// publicTripsPageSize is the number of trips served per public page.
// Queries fetch one extra row to detect whether a further page exists.
const publicTripsPageSize = 25

// sortConditions is the single trip ordering used everywhere: most recently
// ended first, ties broken by start date, then by _id so the order is total.
// The public pagination cursor is built against this exact sort.
var sortConditions = bson.D{
	{Key: "endDate", Value: -1},
	{Key: "startDate", Value: -1},
	{Key: "_id", Value: -1},
}

// TripRepositoryMongo implements TripRepository on top of a MongoDB
// collection.
type TripRepositoryMongo struct {
	db     *DB
	logger *logger.Logger
}

func NewTripRepositoryMongo(db *DB, log *logger.Logger) *TripRepositoryMongo {
	return &TripRepositoryMongo{db: db, logger: log.GetChildLogger()}
}

// EnsureIndexes creates the compound index backing the public trips page
// query. Index creation is idempotent, so this runs on every start.
func (r *TripRepositoryMongo) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "public", Value: 1},
			{Key: "endDate", Value: -1},
			{Key: "startDate", Value: -1},
			{Key: "_id", Value: -1},
		},
	}

	if _, err := r.db.collection.Indexes().CreateOne(ctx, model); err != nil {
		r.logger.Err(err).Str("func", "EnsureIndexes").Msg("error creating collection index")
		return fmt.Errorf("%w: %s", ErrCreatingIndex, err)
	}

	return nil
}

func (r *TripRepositoryMongo) CreateTrip(ctx context.Context, trip models.Trip) (string, error) {
	trip.ID = primitive.NewObjectID()

	result, err := r.db.collection.InsertOne(ctx, trip)
	if err != nil {
		r.logger.Err(err).Str("func", "CreateTrip").Msg("error inserting trip document")
		return "", fmt.Errorf("%w: %s", ErrTripNotSaved, err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		r.logger.Error().Str("func", "CreateTrip").Msg("inserted id has unexpected type")
		return "", ErrTripNotSaved
	}

	return insertedID.Hex(), nil
}

// DeleteTrip removes the trip in a single findOneAndDelete so the caller
// receives the removed document atomically. No match is not an error.
func (r *TripRepositoryMongo) DeleteTrip(ctx context.Context, tripID, userID string) (*models.Trip, error) {
	id, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTripID, tripID)
	}

	var trip models.Trip
	err = r.db.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "userId": userID}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.logger.Err(err).Str("func", "DeleteTrip").Msg("error deleting trip document")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}

	return &trip, nil
}

func (r *TripRepositoryMongo) GetUserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	cursor, err := r.db.collection.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(sortConditions))
	if err != nil {
		r.logger.Err(err).Str("func", "GetUserTrips").Msg("error querying user trips")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		r.logger.Err(err).Str("func", "GetUserTrips").Msg("error decoding user trips")
		return nil, fmt.Errorf("%w: %s", ErrDecodingDocument, err)
	}

	return trips, nil
}

func (r *TripRepositoryMongo) GetPublicTrips(ctx context.Context, pageCursor *models.PageCursor) ([]models.Trip, error) {
	filter, err := buildPublicTripsFilter(pageCursor)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(sortConditions).
		SetLimit(publicTripsPageSize + 1)

	cursor, err := r.db.collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Err(err).Str("func", "GetPublicTrips").Msg("error querying public trips")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}

	trips := []models.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		r.logger.Err(err).Str("func", "GetPublicTrips").Msg("error decoding public trips")
		return nil, fmt.Errorf("%w: %s", ErrDecodingDocument, err)
	}

	return applyPageWindow(trips), nil
}

// buildPublicTripsFilter translates a page cursor into the seek condition
// matching sortConditions. The three disjuncts cover: strictly older endDate,
// equal endDate with strictly older startDate, and both dates equal with a
// smaller _id. A nil cursor selects the whole public set.
func buildPublicTripsFilter(pageCursor *models.PageCursor) (bson.M, error) {
	filter := bson.M{"public": true}
	if pageCursor == nil {
		return filter, nil
	}

	id, err := primitive.ObjectIDFromHex(pageCursor.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTripID, pageCursor.TripID)
	}

	filter["$or"] = bson.A{
		bson.M{"endDate": bson.M{"$lt": pageCursor.EndDate}},
		bson.M{
			"endDate":   pageCursor.EndDate,
			"startDate": bson.M{"$lt": pageCursor.StartDate},
		},
		bson.M{
			"endDate":   pageCursor.EndDate,
			"startDate": pageCursor.StartDate,
			"_id":       bson.M{"$lt": id},
		},
	}

	return filter, nil
}

// applyPageWindow turns the fetched page-plus-one rows into the page to
// serve. An overfull fetch proves a next page exists, so the extra row is
// dropped and no marker is set. A short fetch is the final page and its last
// trip is flagged so clients stop paging.
func applyPageWindow(trips []models.Trip) []models.Trip {
	if len(trips) == publicTripsPageSize+1 {
		return trips[:publicTripsPageSize]
	}
	if len(trips) > 0 {
		trips[len(trips)-1].NoMoreRecords = true
	}
	return trips
}

func (r *TripRepositoryMongo) UpdateTrip(ctx context.Context, tripID, userID string, update models.TripUpdate) (int64, error) {
	id, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTripID, tripID)
	}

	result, err := r.db.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": update},
	)
	if err != nil {
		r.logger.Err(err).Str("func", "UpdateTrip").Msg("error updating trip document")
		return 0, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}

	return result.ModifiedCount, nil
}

// GetTripImages reads only the images field via projection. It is used to
// probe ownership before an update and to diff the stored image set against
// an incoming one.
func (r *TripRepositoryMongo) GetTripImages(ctx context.Context, tripID, userID string) ([]models.Image, bool, error) {
	id, err := primitive.ObjectIDFromHex(tripID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidTripID, tripID)
	}

	projection := options.FindOne().SetProjection(bson.M{"_id": 0, "images": 1})

	var doc struct {
		Images []models.Image `bson:"images"`
	}
	err = r.db.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}, projection).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		r.logger.Err(err).Str("func", "GetTripImages").Msg("error querying trip images")
		return nil, false, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}

	return doc.Images, true, nil
}

// NewFileURLName mints a fresh ObjectID hex string to use as the storage key
// of a photo about to be uploaded.
func (r *TripRepositoryMongo) NewFileURLName() string {
	return primitive.NewObjectID().Hex()
}
