package lunisolar

import "fmt"

// LunisolarDate is a date in the Chinese lunisolar calendar. Leap reports
// whether Month refers to the inserted leap month of the year rather than the
// ordinary month with the same number.
type LunisolarDate struct {
	year  uint16
	month uint8
	leap  bool
	day   uint8
}

// NewLunisolarDate validates the date against the lunisolar table. It fails
// with ErrOutOfRange for years the table does not cover, ErrLeapMonthMismatch
// when leap is set for a month that is not the year's leap month, and
// ErrInvalidLunarDate for any other month or day the year does not have.
func NewLunisolarDate(year uint16, month uint8, leap bool, day uint8) (LunisolarDate, error) {
	layout, ok := layoutFor(year)
	if !ok {
		return LunisolarDate{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if month < 1 || month > 12 {
		return LunisolarDate{}, fmt.Errorf("%w: month %d", ErrInvalidLunarDate, month)
	}
	m, ok := layout.month(month, leap)
	if !ok {
		return LunisolarDate{}, fmt.Errorf("%w: %d/%d", ErrLeapMonthMismatch, year, month)
	}
	if day < 1 || int(day) > m.days {
		return LunisolarDate{}, fmt.Errorf("%w: day %d in %s month of %d days",
			ErrInvalidLunarDate, day, monthLabel(year, month, leap), m.days)
	}
	return LunisolarDate{year: year, month: month, leap: leap, day: day}, nil
}

func (d LunisolarDate) Year() uint16      { return d.year }
func (d LunisolarDate) Month() uint8      { return d.month }
func (d LunisolarDate) IsLeapMonth() bool { return d.leap }
func (d LunisolarDate) Day() uint8        { return d.day }

// String formats d as YYYY-MM-DD, with an L after the month for leap months.
func (d LunisolarDate) String() string {
	return fmt.Sprintf("%s-%02d", monthLabel(d.year, d.month, d.leap), d.day)
}

// ToSolar converts d to its Gregorian date. Any LunisolarDate built by
// NewLunisolarDate has one.
func (d LunisolarDate) ToSolar() SolarDate {
	layout, _ := layoutFor(d.year)
	m, _ := layout.month(d.month, d.leap)
	return solarFromEpochDays(layout.start + m.offset + int(d.day) - 1)
}

func monthLabel(year uint16, month uint8, leap bool) string {
	if leap {
		return fmt.Sprintf("%04d-%02dL", year, month)
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// LeapMonth returns the leap month of year, if it has one.
func LeapMonth(year uint16) (uint8, bool) {
	layout, ok := layoutFor(year)
	if !ok || layout.leapMonth == 0 {
		return 0, false
	}
	return layout.leapMonth, true
}

// DaysInLunarMonth returns the length of a month, 29 or 30.
func DaysInLunarMonth(year uint16, month uint8, leap bool) (int, error) {
	layout, ok := layoutFor(year)
	if !ok {
		return 0, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	m, ok := layout.month(month, leap)
	if !ok {
		if leap {
			return 0, fmt.Errorf("%w: %d/%d", ErrLeapMonthMismatch, year, month)
		}
		return 0, fmt.Errorf("%w: month %d", ErrInvalidLunarDate, month)
	}
	return m.days, nil
}

// DaysInLunarYear returns the length of a lunisolar year, leap month included.
func DaysInLunarYear(year uint16) (int, error) {
	layout, ok := layoutFor(year)
	if !ok {
		return 0, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	return layout.days, nil
}
