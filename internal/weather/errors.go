package weather

import "errors"

var (
	// ErrZipNotFound is returned when the geocoding service has no match for a postal code.
	ErrZipNotFound = errors.New("no geocode match for postal code")

	// ErrTransport is returned when an outbound call cannot complete
	// (network failure, timeout, or a non-2xx response).
	ErrTransport = errors.New("transport failure")

	// ErrPersistence is returned on storage connectivity or constraint
	// failures other than the intended uniqueness upsert path.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotFound is returned when no record is stored for a (zip, date) key.
	// It is a normal result, not a failure.
	ErrNotFound = errors.New("no weather record for key")
)
