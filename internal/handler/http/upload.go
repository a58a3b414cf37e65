package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/internal/utils"
)

// getSignedUploadURL issues a pre-signed upload URL for one photo. The
// client declares the file's content type in the "type" query parameter and
// must send exactly that type when uploading; the signature covers it.
func (h *Handler) getSignedUploadURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contentType := r.URL.Query().Get("type")

	credential, err := h.services.TripService.NewUploadURL(r.Context(), contentType)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSignedUploadURL").Msg("error signing upload url")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}
