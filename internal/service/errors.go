package service

import "github.com/phrazzld/lunisolar-api/internal/domain/lunisolar"

// Conversion errors surfaced by ConversionService, re-exported so callers do
// not need to import the domain package to classify them with errors.Is.
//
// Error handling principles:
// 1. Failed conversions return a wrapped sentinel from the lunisolar package
// 2. Callers use errors.Is to check for specific conditions
// 3. The API layer maps all of them to HTTP 400 Bad Request
var (
	// ErrInvalidSolarDate indicates the triple is not a Gregorian date.
	ErrInvalidSolarDate = lunisolar.ErrInvalidSolarDate

	// ErrOutOfRange indicates a date outside the lunisolar table.
	ErrOutOfRange = lunisolar.ErrOutOfRange
)
