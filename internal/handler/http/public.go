package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/utils"
	"github.com/MKhiriev/go-trip-journal/models"
)

// getPublicTrips serves one page of publicly visible trips. The page cursor
// arrives as three loose query parameters (tripId, endDate, startDate)
// echoing the last element of the previous page; their absence requests the
// first page.
func (h *Handler) getPublicTrips(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cursor, err := cursorFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPublicTrips").Msg("invalid pagination cursor")
		writeError(w, r, err)
		return
	}

	trips, err := h.services.TripService.GetPublicTrips(r.Context(), cursor)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPublicTrips").Msg("error getting public trips")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trips, http.StatusOK)
}

// cursorFromQuery parses the pagination parameters. An absent tripId means
// the initial page; a present tripId requires both dates in RFC 3339 form.
func cursorFromQuery(r *http.Request) (*models.PageCursor, error) {
	tripID := r.URL.Query().Get("tripId")
	if tripID == "" {
		return nil, nil
	}

	endDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("endDate"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}
	startDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("startDate"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}

	return &models.PageCursor{
		TripID:    tripID,
		EndDate:   endDate,
		StartDate: startDate,
	}, nil
}
