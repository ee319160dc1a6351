package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/lunisolar-api/internal/domain/lunisolar"
	"github.com/phrazzld/lunisolar-api/internal/platform/logger"
)

// ConversionService converts dates between the Gregorian and the Chinese
// lunisolar calendar.
type ConversionService interface {
	// SolarToLunar returns the lunisolar month and day of a Gregorian date.
	// The error wraps ErrInvalidSolarDate or ErrOutOfRange.
	SolarToLunar(ctx context.Context, year uint16, month, day uint8) (lunisolar.LunarResult, error)

	// LunarToSolar returns every Gregorian date that month/day of the
	// lunisolar year can denote: none, the ordinary month's, the leap month's,
	// or both in that order. It never fails.
	LunarToSolar(ctx context.Context, year uint16, month, day uint8) []lunisolar.SolarResult
}

// conversionServiceImpl implements ConversionService on top of the embedded
// lunisolar table.
type conversionServiceImpl struct {
	logger *slog.Logger
}

// NewConversionService creates a ConversionService.
// A nil logger falls back to slog.Default().
func NewConversionService(logger *slog.Logger) ConversionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &conversionServiceImpl{
		logger: logger.With(slog.String("component", "conversion_service")),
	}
}

// SolarToLunar implements ConversionService.
func (s *conversionServiceImpl) SolarToLunar(
	ctx context.Context,
	year uint16,
	month, day uint8,
) (lunisolar.LunarResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := lunisolar.SolarToLunar(year, month, day)
	if err != nil {
		log.Debug("solar date not convertible",
			slog.Int("year", int(year)),
			slog.Int("month", int(month)),
			slog.Int("day", int(day)),
			slog.String("error", err.Error()))
		return lunisolar.LunarResult{}, err
	}

	log.Debug("converted solar date",
		slog.Int("year", int(year)),
		slog.Int("month", int(month)),
		slog.Int("day", int(day)),
		slog.Int("lunar_month", int(result.Month)),
		slog.Int("lunar_day", int(result.Day)))
	return result, nil
}

// LunarToSolar implements ConversionService.
func (s *conversionServiceImpl) LunarToSolar(
	ctx context.Context,
	year uint16,
	month, day uint8,
) []lunisolar.SolarResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	results := lunisolar.LunarToSolar(year, month, day)

	log.Debug("converted lunisolar date",
		slog.Int("year", int(year)),
		slog.Int("month", int(month)),
		slog.Int("day", int(day)),
		slog.Int("candidates", len(results)))
	return results
}
