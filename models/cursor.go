package models

import "time"

// PageCursor identifies the last row of a previously returned public-trips
// page under the fixed sort order (endDate desc, startDate desc, _id desc).
// Clients echo back the trip id and both dates of the final element they
// received; a nil *PageCursor means the initial page.
type PageCursor struct {
	// TripID is the hex string of the last loaded trip's ObjectID.
	TripID string

	EndDate   time.Time
	StartDate time.Time
}
