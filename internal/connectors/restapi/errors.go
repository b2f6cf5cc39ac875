package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// APIError represents a non-200 response from a catalogue.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("restapi: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap makes every APIError match domain.ErrFetchFailed, and 404s also
// match domain.ErrNotFound.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{domain.ErrFetchFailed, domain.ErrNotFound}
	}
	return []error{domain.ErrFetchFailed}
}

// IsNotFound checks if the error indicates the record does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
