package modrinth

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for Modrinth API operations.
var (
	// ErrProjectNotFound is returned when a project cannot be found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRateLimitExceeded is returned when the API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidSearchQuery is returned when the search query is invalid.
	ErrInvalidSearchQuery = errors.New("invalid search query")
)

// APIError represents an API error response.
type APIError struct {
	ErrorMsg    string `json:"error"`
	Description string `json:"description"`
	StatusCode  int    `json:"-"`
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.ErrorMsg, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.ErrorMsg, e.StatusCode)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, errorMsg, description string) *APIError {
	return &APIError{
		ErrorMsg:    errorMsg,
		Description: description,
		StatusCode:  statusCode,
	}
}

// statusCode maps a client error to the HTTP status it came from, or 0.
func statusCode(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.Is(err, ErrRateLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return 0
	}
}
