package store

import "errors"

var (
	ErrInvalidTripID      = errors.New("trip id is not a valid object id")
	ErrTripNotSaved       = errors.New("trip was not saved")
	ErrExecutingQuery     = errors.New("error executing query")
	ErrDecodingDocument   = errors.New("error decoding document")
	ErrCreatingIndex      = errors.New("error creating collection index")
	ErrDatabaseConnection = errors.New("error connecting to database")
)
