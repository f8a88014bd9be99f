package upstream

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the task API. Message carries the
// optional human-readable message from the error body; it is empty when the
// body had none or could not be decoded.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream responded %d", e.StatusCode)
}

// ErrorMessage extracts the upstream-supplied message from err, if any.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
