package models

// TripCreated is the response body for a successful trip creation.
type TripCreated struct {
	// InsertedID is the hex form of the new trip document's ObjectID.
	InsertedID string `json:"insertedId"`
}

// TripUpdated reports the outcome of a trip update. ModifiedCount is zero
// both when no document matched the id+owner pair and when the matched
// document already held the submitted values; the two cases are not
// distinguished.
type TripUpdated struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// UploadCredential is the response for an upload-URL request: a short-lived
// pre-signed PUT URL into the temporary bucket, the minted storage key, and
// the view URL the object will have once promoted.
type UploadCredential struct {
	SignedURL      string `json:"signedUrl"`
	FileURLName    string `json:"fileUrlName"`
	PendingFileURL string `json:"pendingFileUrl"`
}

// ErrorResponse is the structured error body returned for any failed
// request.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
