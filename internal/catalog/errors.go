package catalog

import (
	"errors"
	"fmt"
)

// UpstreamError is returned by adapters when a catalog answers with a non-success status.
type UpstreamError struct {
	Source     Source
	StatusCode int
	Message    string
	Err        error
}

// Error returns the error message.
func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Source.DisplayName(), e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Source.DisplayName(), e.Message, e.StatusCode)
}

// Unwrap returns the underlying client error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps a client error for the given catalog.
func NewUpstreamError(source Source, statusCode int, err error) *UpstreamError {
	msg := "request failed"
	if err != nil {
		msg = err.Error()
	}
	return &UpstreamError{
		Source:     source,
		StatusCode: statusCode,
		Message:    msg,
		Err:        err,
	}
}

// IsUpstream reports whether err is (or wraps) an *UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
