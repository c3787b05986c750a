package cerrors

import "errors"

var (
	// Credential errors
	NoCredentialsError = errors.New("no Canvas credentials available")

	// Remote errors
	RemoteFetchError     = errors.New("failed to fetch data from Canvas")
	MalformedRecordError = errors.New("malformed Canvas record")
)
