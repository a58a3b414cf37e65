package models

import "time"

// TripPayload is the request body for trip creation and update. It mirrors
// Trip except that the owner identity comes from the auth token (never the
// body) and location coordinates arrive as strings, exactly as the web client
// submits them.
type TripPayload struct {
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Title     string            `json:"title"`
	Details   string            `json:"details"`
	Public    bool              `json:"public"`
	StartDate time.Time         `json:"startDate"`
	EndDate   time.Time         `json:"endDate"`
	Locations []LocationPayload `json:"locations"`
	Images    []Image           `json:"images"`
}

// LocationPayload is a Location as submitted by the client: coordinates are
// strings and are normalized to floats by the service layer.
type LocationPayload struct {
	Address string    `json:"address"`
	LatLng  [2]string `json:"latLng"`
	City    string    `json:"city"`
	State   string    `json:"state"`
	Country string    `json:"country"`
}
