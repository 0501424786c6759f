package modlist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped when a file cannot be decoded at all.
	ErrMalformed = errors.New("malformed file")

	// ErrUnrecognized is wrapped when a file decodes but matches no known shape.
	ErrUnrecognized = errors.New("unrecognized format")
)

// ParseError reports a mod list that could not be parsed. It only affects that file.
type ParseError struct {
	Filename string
	Reason   string
	Err      error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Filename, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Filename, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(filename, reason string, err error) *ParseError {
	return &ParseError{Filename: filename, Reason: reason, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
}

func unrecognized(filename, detail string) *ParseError {
	return &ParseError{Filename: filename, Reason: detail, Err: ErrUnrecognized}
}
