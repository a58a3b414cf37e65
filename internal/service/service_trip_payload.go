package service

import (
	"math"
	"strconv"

	"github.com/MKhiriev/go-trip-journal/models"
)

// tripFromPayload builds a persistable trip from a request body. The owner
// identity always comes from the auth token, never from the payload.
func tripFromPayload(userID string, payload models.TripPayload) models.Trip {
	return models.Trip{
		UserID:    userID,
		UserName:  payload.UserName,
		UserEmail: payload.UserEmail,
		Title:     payload.Title,
		Details:   payload.Details,
		Public:    payload.Public,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Locations: locationsFromPayload(payload.Locations),
		Images:    payload.Images,
	}
}

// tripUpdateFromPayload builds the replacement field set for a trip update.
func tripUpdateFromPayload(payload models.TripPayload) models.TripUpdate {
	return models.TripUpdate{
		Title:     payload.Title,
		StartDate: payload.StartDate,
		EndDate:   payload.EndDate,
		Public:    payload.Public,
		Details:   payload.Details,
		Locations: locationsFromPayload(payload.Locations),
		Images:    payload.Images,
	}
}

// locationsFromPayload converts submitted locations, parsing the string
// coordinates into floats. Unparsable coordinates become NaN rather than an
// error; the document is stored either way.
func locationsFromPayload(payloadLocations []models.LocationPayload) []models.Location {
	if payloadLocations == nil {
		return nil
	}

	locations := make([]models.Location, len(payloadLocations))
	for i, l := range payloadLocations {
		locations[i] = models.Location{
			Address: l.Address,
			LatLng:  [2]float64{parseCoordinate(l.LatLng[0]), parseCoordinate(l.LatLng[1])},
			City:    l.City,
			State:   l.State,
			Country: l.Country,
		}
	}
	return locations
}

func parseCoordinate(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return parsed
}
