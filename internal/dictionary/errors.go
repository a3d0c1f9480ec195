package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a term is absent from the dictionary, the Jyutping table or the index.
	ErrNotFound = errors.New("not found")
	// ErrNoMatch is returned when a random filter matches no term of the index.
	ErrNoMatch = errors.New("no term matches the filter")
	// ErrNotConfigured is returned when the URL of an optional service is empty.
	ErrNotConfigured = errors.New("not configured")
)

// ServiceError is a non-404 failure status of a remote service.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("response status code: %d", e.StatusCode)
}

// MalformedResponseError is returned when a payload cannot be decoded.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response > %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// CacheRefreshError is returned when a dataset could not be fetched or written to the cache.
type CacheRefreshError struct {
	Dataset string
	Err     error
}

func (e *CacheRefreshError) Error() string {
	return fmt.Sprintf("failed to refresh the %s dataset > %v", e.Dataset, e.Err)
}

func (e *CacheRefreshError) Unwrap() error {
	return e.Err
}
