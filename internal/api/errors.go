package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/lunisolar-api/internal/domain"
)

// Client-facing messages.
const (
	msgParseInput = "Couldn't parse input"
	msgUnexpected = "An unexpected error occurred"
	msgNotFound   = "Not found"
	msgNotAllowed = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrParseInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for errors whose
// message does not depend on the request. Conversion failures are reported
// by the handlers with the requested date instead.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgUnexpected
	case errors.Is(err, ErrParseInput):
		return msgParseInput
	default:
		return msgUnexpected
	}
}
