package logging

import (
	"loglib/internal/global"
	"loglib/pkg/level"
)

var (
	// Empty message, unknown level or other unusable input
	ErrInvalidArgument = global.ErrInvalidArgument
	// Level outside the defined set; always also matches ErrInvalidArgument from this package
	ErrInvalidLevel = level.ErrInvalidLevel
	// Lookup without create for a name that was never registered
	ErrUnregisteredApplication = global.ErrUnregisteredApplication
	// A sink could not write (directory, file, lock, terminal, color assignment)
	ErrLogging = global.ErrLogging
)
