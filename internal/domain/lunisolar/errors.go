package lunisolar

import (
	"fmt"

	"github.com/phrazzld/lunisolar-api/internal/domain"
)

// Conversion errors. All of them match domain.ErrValidation or
// domain.ErrOutOfRange through errors.Is.
var (
	// ErrInvalidSolarDate is returned when a year/month/day triple is not a
	// Gregorian calendar date.
	ErrInvalidSolarDate = fmt.Errorf("invalid solar date: %w", domain.ErrValidation)

	// ErrInvalidLunarDate is returned when a month or day does not exist in
	// the requested lunisolar year.
	ErrInvalidLunarDate = fmt.Errorf("invalid lunisolar date: %w", domain.ErrValidation)

	// ErrLeapMonthMismatch is returned when the leap flag is set for a month
	// that is not the leap month of its year.
	ErrLeapMonthMismatch = fmt.Errorf("%w: not a leap month", ErrInvalidLunarDate)

	// ErrOutOfRange is returned for dates outside the lunisolar table.
	ErrOutOfRange = fmt.Errorf("lunisolar table: %w", domain.ErrOutOfRange)
)
