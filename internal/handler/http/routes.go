package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/publicTrips", h.getPublicTrips)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/trips", h.createTrip)
		r.Get("/trips", h.getUserTrips)
		r.Delete("/trips/{tripId}", h.deleteTrip)
		r.Put("/trips/{tripId}", h.updateTrip)
		r.Get("/get-signed-url", h.getSignedUploadURL)
	})

	return router
}
