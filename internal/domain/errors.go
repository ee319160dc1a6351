// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// Package-specific errors wrap it so callers can classify them with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfRange is returned when a value is well formed but lies outside
	// the range the application has data for.
	ErrOutOfRange = errors.New("out of supported range")
)
