package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ErrParseInput is returned when a path parameter is not a decimal integer
// that fits its field.
var ErrParseInput = errors.New("couldn't parse input")

// Path parameter names shared by both conversion routes.
const (
	paramYear  = "year"
	paramMonth = "month"
	paramDay   = "day"
)

// dateParams is the year/month/day triple taken from the request path.
// Widths match the conversion core: year is 16 bits, month and day 8 bits.
type dateParams struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// parseDateParams extracts the year, month and day path parameters.
// Whitespace around a value and a single leading plus sign are accepted;
// anything else that is not an unsigned
// decimal integer within the field's width yields an error wrapping
// ErrParseInput. Whether the triple is a real date is left to the core.
func parseDateParams(r *http.Request) (dateParams, error) {
	year, err := parseUintParam(r, paramYear, 16)
	if err != nil {
		return dateParams{}, err
	}
	month, err := parseUintParam(r, paramMonth, 8)
	if err != nil {
		return dateParams{}, err
	}
	day, err := parseUintParam(r, paramDay, 8)
	if err != nil {
		return dateParams{}, err
	}
	return dateParams{
		Year:  uint16(year),
		Month: uint8(month),
		Day:   uint8(day),
	}, nil
}

// parseUintParam parses a path parameter as an unsigned integer of bitSize bits.
func parseUintParam(r *http.Request, name string, bitSize int) (uint64, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(chi.URLParam(r, name)), "+")
	value, err := strconv.ParseUint(raw, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrParseInput, name, err)
	}
	return value, nil
}
