package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: destination must not be nil")
	// ErrParsingConfig wraps failures from environment variable parsing.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
