package storage

import "errors"

var (
	ErrSigningUploadURL  = errors.New("error signing upload url")
	ErrCopyingObject     = errors.New("error copying object to permanent bucket")
	ErrRemovingObjects   = errors.New("error removing objects from permanent bucket")
	ErrStorageConnection = errors.New("error creating object storage client")
)
