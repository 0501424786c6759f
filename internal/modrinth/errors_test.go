package modrinth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errorMsg    string
		description string
		statusCode  int
		want        string
	}{
		{
			name:        "error with description",
			errorMsg:    "not found",
			description: "project does not exist",
			statusCode:  404,
			want:        "not found: project does not exist (status 404)",
		},
		{
			name:       "error without description",
			errorMsg:   "internal error",
			statusCode: 500,
			want:       "internal error (status 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.statusCode, tt.errorMsg, tt.description)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "api error", err: NewAPIError(503, "down", ""), want: 503},
		{name: "wrapped api error", err: fmt.Errorf("search request: %w", NewAPIError(400, "bad", "")), want: 400},
		{name: "rate limit sentinel", err: fmt.Errorf("x: %w", ErrRateLimitExceeded), want: 429},
		{name: "not found sentinel", err: ErrProjectNotFound, want: 404},
		{name: "transport error", err: fmt.Errorf("do request: dial tcp: refused"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusCode(tt.err))
		})
	}
}
