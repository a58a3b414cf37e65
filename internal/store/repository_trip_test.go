package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-trip-journal/models"
)

func TestBuildPublicTripsFilter(t *testing.T) {
	t.Run("nil cursor selects all public trips", func(t *testing.T) {
		filter, err := buildPublicTripsFilter(nil)

		require.NoError(t, err)
		assert.Equal(t, bson.M{"public": true}, filter)
	})

	t.Run("cursor produces three seek clauses", func(t *testing.T) {
		id := primitive.NewObjectID()
		endDate := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
		startDate := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
		cursor := &models.PageCursor{
			TripID:    id.Hex(),
			EndDate:   endDate,
			StartDate: startDate,
		}

		filter, err := buildPublicTripsFilter(cursor)

		require.NoError(t, err)
		assert.Equal(t, true, filter["public"])

		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 3)
		assert.Equal(t, bson.M{"endDate": bson.M{"$lt": endDate}}, or[0])
		assert.Equal(t, bson.M{
			"endDate":   endDate,
			"startDate": bson.M{"$lt": startDate},
		}, or[1])
		assert.Equal(t, bson.M{
			"endDate":   endDate,
			"startDate": startDate,
			"_id":       bson.M{"$lt": id},
		}, or[2])
	})

	t.Run("malformed trip id is rejected", func(t *testing.T) {
		cursor := &models.PageCursor{TripID: "not-an-object-id"}

		filter, err := buildPublicTripsFilter(cursor)

		assert.Nil(t, filter)
		assert.ErrorIs(t, err, ErrInvalidTripID)
	})
}

func TestApplyPageWindow(t *testing.T) {
	makeTrips := func(n int) []models.Trip {
		trips := make([]models.Trip, n)
		for i := range trips {
			trips[i].Title = fmt.Sprintf("trip %d", i)
		}
		return trips
	}

	t.Run("overfull fetch drops the probe row and sets no marker", func(t *testing.T) {
		trips := applyPageWindow(makeTrips(publicTripsPageSize + 1))

		require.Len(t, trips, publicTripsPageSize)
		for _, trip := range trips {
			assert.False(t, trip.NoMoreRecords)
		}
	})

	t.Run("short fetch flags the last trip", func(t *testing.T) {
		trips := applyPageWindow(makeTrips(3))

		require.Len(t, trips, 3)
		assert.False(t, trips[0].NoMoreRecords)
		assert.False(t, trips[1].NoMoreRecords)
		assert.True(t, trips[2].NoMoreRecords)
	})

	t.Run("exactly full fetch flags the last trip", func(t *testing.T) {
		trips := applyPageWindow(makeTrips(publicTripsPageSize))

		require.Len(t, trips, publicTripsPageSize)
		assert.True(t, trips[publicTripsPageSize-1].NoMoreRecords)
	})

	t.Run("empty fetch stays empty", func(t *testing.T) {
		trips := applyPageWindow(makeTrips(0))

		assert.Empty(t, trips)
	})
}

func TestNewFileURLName(t *testing.T) {
	repository := &TripRepositoryMongo{}

	first := repository.NewFileURLName()
	second := repository.NewFileURLName()

	_, err := primitive.ObjectIDFromHex(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
