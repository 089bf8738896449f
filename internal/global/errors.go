package global

import "errors"

var (
	// Caller misuse: empty message, unknown level value
	ErrInvalidArgument = errors.New("invalid argument")

	// Lookup with creation disabled found no entry
	ErrUnregisteredApplication = errors.New("unregistered application")

	// Environment/runtime failure in a sink: directory, open, write, lock, randomness
	ErrLogging = errors.New("logging failure")
)
