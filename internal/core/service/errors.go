package service

import (
	"errors"
	"fmt"

	"github.com/just-nibble/commit-tracker/internal/adapters/api"
)

// ValidationError reports missing input. No request was issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError reports a failed round trip: a non-success status, a
// transport failure or an unreadable response. StatusCode is zero unless
// the endpoint answered.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func newCommitRequestError(err error) *RequestError {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return &RequestError{
			StatusCode: statusErr.StatusCode,
			Message:    fmt.Sprintf("Error fetching commits: Repository not found or API error: %d", statusErr.StatusCode),
			Err:        err,
		}
	}
	return &RequestError{
		Message: fmt.Sprintf("Error fetching commits: %v", err),
		Err:     err,
	}
}
