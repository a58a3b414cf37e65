package service

import "errors"

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidTripPayload    = errors.New("invalid trip payload")
	ErrMissingContentType    = errors.New("no content type provided for upload")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
