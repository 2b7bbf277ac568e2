package clients

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx reply from a backend or the identity provider.
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d for %s: %s", e.StatusCode, e.Path, e.Message)
	}
	return fmt.Sprintf("backend returned %d for %s", e.StatusCode, e.Path)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsConflict reports whether a create/update was rejected as a duplicate.
func IsConflict(err error) bool {
	return IsStatus(err, http.StatusConflict)
}
