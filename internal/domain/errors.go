package domain

import (
	"errors"
	"fmt"
)

var ErrProfileNotFound = errors.New("profile not found")

// APIError is a control-plane call failure. StatusCode is the HTTP status
// when a response was received, zero when the failure happened before one
// (network error, malformed response).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
