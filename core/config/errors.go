package config

import "errors"

var (
	// ErrNilConfig is returned when Load is called with a nil pointer.
	ErrNilConfig = errors.New("config pointer is nil")

	// ErrParseFailed is returned when environment parsing fails.
	// The underlying env parsing error is joined for inspection.
	ErrParseFailed = errors.New("failed to parse environment config")
)
