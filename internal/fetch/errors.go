// internal/fetch/errors.go
package fetch

import "fmt"

// FetchError represents a failed page fetch: a network-layer failure or
// a non-2xx response. Callers treat it as "no data for this row".
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s: HTTP %d %s", e.URL, e.StatusCode, e.Status)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// GetStatusCode returns the HTTP status code, 0 for transport failures
func (e *FetchError) GetStatusCode() int {
	return e.StatusCode
}
