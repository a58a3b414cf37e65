// Package models defines the data types shared between the transport,
// service, and storage layers of the trip-journal application: persisted
// documents (Trip, Location, Image), inbound request payloads, pagination
// cursors, and response envelopes.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a single journal entry: one journey of one user, with its date
// range, visited locations, and uploaded photos. Trips are stored as whole
// documents in the "tripInfo" collection; the BSON field names below are the
// on-disk document layout and must not change without a data migration.
type Trip struct {
	// ID is the document identifier. ObjectIDs are monotonically ordered by
	// creation time, which the public-trips pagination relies on as the final
	// sort tie-break.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// UserID is the owner's subject identifier taken from the auth token.
	// Immutable after creation; every mutation is filtered by it.
	UserID string `bson:"userId" json:"userId"`

	UserName  string `bson:"userName" json:"userName"`
	UserEmail string `bson:"userEmail" json:"userEmail"`

	Title   string `bson:"title" json:"title"`
	Details string `bson:"details" json:"details"`

	// Public marks the trip as visible to anonymous visitors via the
	// public-trips listing.
	Public bool `bson:"public" json:"public"`

	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`

	Locations []Location `bson:"locations" json:"locations"`
	Images    []Image    `bson:"images" json:"images"`

	// NoMoreRecords is set on the last element of a public-trips page when no
	// further pages exist. Response-only; never persisted.
	NoMoreRecords bool `bson:"-" json:"noMoreRecords,omitempty"`
}

// Location is a place visited during a trip. Embedded in the trip document,
// not independently addressable.
type Location struct {
	Address string `bson:"address" json:"address"`

	// LatLng holds latitude and longitude, in that order. Values arrive from
	// the client as strings and are parsed before persistence; unparsable
	// input is stored as NaN rather than rejected.
	LatLng [2]float64 `bson:"latLng" json:"latLng"`

	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

// Image is a photo attached to a trip. The FileURLName is the object-storage
// key and the only durable link between the document and the stored object.
type Image struct {
	Name string `bson:"name" json:"name"`

	// FileURLName is the storage key minted when the upload URL was issued.
	FileURLName string `bson:"fileUrlName" json:"fileUrlName"`

	// S3URL is the public view URL, recomputed from FileURLName on every
	// read. Never persisted.
	S3URL string `bson:"-" json:"S3Url,omitempty"`
}

// TripUpdate carries the mutable fields of a trip for a full-field
// replacement update. Owner and identity fields are deliberately absent.
type TripUpdate struct {
	Title     string     `bson:"title"`
	StartDate time.Time  `bson:"startDate"`
	EndDate   time.Time  `bson:"endDate"`
	Public    bool       `bson:"public"`
	Details   string     `bson:"details"`
	Locations []Location `bson:"locations"`
	Images    []Image    `bson:"images"`
}
