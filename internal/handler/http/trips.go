// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/utils"
	"github.com/MKhiriev/go-trip-journal/models"
)

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	var payload models.TripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createTrip").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	created, err := h.services.TripService.CreateTrip(r.Context(), userID, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTrip").Msg("error creating trip")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// deleteTrip responds 200 with the removed trip, or with a JSON null when
// nothing matched. A caller probing someone else's trip id learns nothing
// beyond "no such trip of yours".
func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	tripID := chi.URLParam(r, "tripId")

	trip, err := h.services.TripService.DeleteTrip(r.Context(), userID, tripID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTrip").Msg("error deleting trip")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) getUserTrips(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	trips, err := h.services.TripService.GetUserTrips(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserTrips").Msg("error getting user trips")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trips, http.StatusOK)
}

func (h *Handler) updateTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyToken)
		return
	}

	tripID := chi.URLParam(r, "tripId")

	var payload models.TripPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.updateTrip").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	updated, err := h.services.TripService.UpdateTrip(r.Context(), userID, tripID, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTrip").Msg("error updating trip")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
