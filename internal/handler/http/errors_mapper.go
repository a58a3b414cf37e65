package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/service"
	"github.com/MKhiriev/go-trip-journal/internal/storage"
	"github.com/MKhiriev/go-trip-journal/internal/store"
	"github.com/MKhiriev/go-trip-journal/internal/utils"
	"github.com/MKhiriev/go-trip-journal/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSONBody:            http.StatusBadRequest,
	ErrInvalidCursor:              http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidTripPayload:      http.StatusBadRequest,
	service.ErrMissingContentType:      http.StatusBadRequest,

	store.ErrInvalidTripID:    http.StatusBadRequest,
	store.ErrTripNotSaved:     http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrDecodingDocument: http.StatusInternalServerError,

	storage.ErrSigningUploadURL: http.StatusInternalServerError,
	storage.ErrCopyingObject:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// kindFromStatus labels the error class reported to clients. The label is
// part of the response contract, not free text.
func kindFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	default:
		return "internal_error"
	}
}

// writeError maps err to an HTTP status and writes the structured error
// body. Internal errors are logged in full but reported to clients only by
// their class, never by their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	kind := kindFromStatus(status)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, status)
}
