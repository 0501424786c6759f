package curseforge

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for CurseForge API operations.
var (
	// ErrModNotFound is returned when a mod id does not exist.
	ErrModNotFound = errors.New("mod not found")

	// ErrRateLimitExceeded is returned when the API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrMissingAPIKey is returned when a request is attempted without a key.
	ErrMissingAPIKey = errors.New("CurseForge API key required")

	// ErrInvalidModID is returned for identifiers that are not numeric ids.
	ErrInvalidModID = errors.New("invalid mod id")
)

// APIError represents an API error response.
type APIError struct {
	ErrorMsg   string `json:"errorMessage"`
	StatusCode int    `json:"-"`
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.ErrorMsg, e.StatusCode)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, msg string) *APIError {
	return &APIError{ErrorMsg: msg, StatusCode: statusCode}
}

func statusCode(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, ErrRateLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrModNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingAPIKey):
		return http.StatusUnauthorized
	default:
		return 0
	}
}
