package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trip-journal/models"
)

func TestGetPublicTrips(t *testing.T) {
	t.Run("no query means initial page", func(t *testing.T) {
		var gotCursor *models.PageCursor
		cursorCaptured := false
		svc := &mockTripSvc{
			getPublicTripsFn: func(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error) {
				gotCursor = cursor
				cursorCaptured = true
				return []models.Trip{{Title: "Dolomites", NoMoreRecords: true}}, nil
			},
		}
		router := newTestRouter(t, svc, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publicTrips", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, cursorCaptured)
		assert.Nil(t, gotCursor)

		var trips []models.Trip
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
		require.Len(t, trips, 1)
		assert.True(t, trips[0].NoMoreRecords)
	})

	t.Run("cursor parameters are parsed", func(t *testing.T) {
		endDate := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
		startDate := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

		var gotCursor *models.PageCursor
		svc := &mockTripSvc{
			getPublicTripsFn: func(ctx context.Context, cursor *models.PageCursor) ([]models.Trip, error) {
				gotCursor = cursor
				return nil, nil
			},
		}
		router := newTestRouter(t, svc, nil)

		query := url.Values{}
		query.Set("tripId", "64b7f1c2a9d013e4f5a6b7c8")
		query.Set("endDate", endDate.Format(time.RFC3339))
		query.Set("startDate", startDate.Format(time.RFC3339))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publicTrips?"+query.Encode(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotCursor)
		assert.Equal(t, "64b7f1c2a9d013e4f5a6b7c8", gotCursor.TripID)
		assert.True(t, gotCursor.EndDate.Equal(endDate))
		assert.True(t, gotCursor.StartDate.Equal(startDate))
	})

	t.Run("400 on unparsable cursor dates", func(t *testing.T) {
		router := newTestRouter(t, &mockTripSvc{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publicTrips?tripId=64b7f1c2a9d013e4f5a6b7c8&endDate=yesterday", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid_request", body.Kind)
	})

	t.Run("no authorization required", func(t *testing.T) {
		router := newTestRouter(t, &mockTripSvc{}, &mockAuthSvc{
			parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
				t.Fatal("auth must not run for public routes")
				return models.Token{}, nil
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/publicTrips", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
