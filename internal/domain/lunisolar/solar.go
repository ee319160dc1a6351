package lunisolar

import (
	"fmt"
	"sort"
	"time"

	"cloudeng.io/datetime"
)

const secondsPerDay = 24 * 60 * 60

// SolarDate is a date in the proleptic Gregorian calendar.
type SolarDate struct {
	year  uint16
	month uint8
	day   uint8
}

// NewSolarDate validates the triple and returns the corresponding SolarDate.
// It fails with ErrInvalidSolarDate for a month outside 1-12 or a day that
// the month does not have.
func NewSolarDate(year uint16, month, day uint8) (SolarDate, error) {
	if month < 1 || month > 12 {
		return SolarDate{}, fmt.Errorf("%w: month %d", ErrInvalidSolarDate, month)
	}
	if day < 1 || int(day) > datetime.DaysInMonth(int(year), datetime.Month(month)) {
		return SolarDate{}, fmt.Errorf("%w: day %d in %04d-%02d", ErrInvalidSolarDate, day, year, month)
	}
	return SolarDate{year: year, month: month, day: day}, nil
}

// solarFromEpochDays returns the solar date that lies days after epoch.
func solarFromEpochDays(days int) SolarDate {
	y, m, d := epoch.AddDate(0, 0, days).Date()
	return SolarDate{year: uint16(y), month: uint8(m), day: uint8(d)}
}

func (d SolarDate) Year() uint16 { return d.year }
func (d SolarDate) Month() uint8 { return d.month }
func (d SolarDate) Day() uint8   { return d.day }

// Time returns midnight UTC on d.
func (d SolarDate) Time() time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, time.UTC)
}

func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Before reports whether d falls on an earlier day than other.
func (d SolarDate) Before(other SolarDate) bool {
	return d.epochDays() < other.epochDays()
}

// epochDays counts days from epoch to d; negative before epoch. Unix
// seconds are used rather than time.Sub, which saturates after ~292 years.
func (d SolarDate) epochDays() int {
	return int((d.Time().Unix() - epoch.Unix()) / secondsPerDay)
}

// ToLunisolar converts d to its lunisolar date. It fails with ErrOutOfRange
// when d lies outside the lunisolar table.
func (d SolarDate) ToLunisolar() (LunisolarDate, error) {
	days := d.epochDays()
	if days < 0 || days >= tableEnd {
		return LunisolarDate{}, fmt.Errorf("%w: %s", ErrOutOfRange, d)
	}

	i := sort.Search(len(layouts), func(i int) bool { return layouts[i].start > days }) - 1
	layout := &layouts[i]
	dayOfYear := days - layout.start
	for _, m := range layout.months {
		if dayOfYear < m.offset+m.days {
			return LunisolarDate{
				year:  uint16(MinYear + i),
				month: m.number,
				leap:  m.leap,
				day:   uint8(dayOfYear - m.offset + 1),
			}, nil
		}
	}
	// Unreachable: every year's months sum to its length.
	return LunisolarDate{}, fmt.Errorf("%w: %s", ErrOutOfRange, d)
}
