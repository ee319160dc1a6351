package lunisolar

// LunarResult is the outcome of a solar to lunisolar conversion. The
// lunisolar year is not part of it: callers already know the solar year they
// asked about.
type LunarResult struct {
	Month uint8 `json:"month"`
	Day   uint8 `json:"day"`
}

// SolarResult is one outcome of a lunisolar to solar conversion.
type SolarResult struct {
	Year  uint16 `json:"year"`
	Month uint8  `json:"month"`
	Day   uint8  `json:"day"`
}

// leapCandidates is the fixed order in which LunarToSolar interprets a month
// number: the ordinary month first, then the leap month.
var leapCandidates = [2]bool{false, true}

// SolarToLunar converts a Gregorian date to the month and day of its
// lunisolar date. The error wraps ErrInvalidSolarDate when the triple is not a
// Gregorian date and ErrOutOfRange when the date is outside the table.
func SolarToLunar(year uint16, month, day uint8) (LunarResult, error) {
	solar, err := NewSolarDate(year, month, day)
	if err != nil {
		return LunarResult{}, err
	}
	lunar, err := solar.ToLunisolar()
	if err != nil {
		return LunarResult{}, err
	}
	return LunarResult{Month: lunar.Month(), Day: lunar.Day()}, nil
}

// LunarToSolar returns the Gregorian dates of month/day in lunisolar year.
// Without a leap flag the input is ambiguous, so both the ordinary and the
// leap reading are tried and every one that exists is returned, ordinary
// first. The result has zero, one or two entries and is never nil.
func LunarToSolar(year uint16, month, day uint8) []SolarResult {
	results := make([]SolarResult, 0, len(leapCandidates))
	for _, leap := range leapCandidates {
		lunar, err := NewLunisolarDate(year, month, leap, day)
		if err != nil {
			continue
		}
		solar := lunar.ToSolar()
		results = append(results, SolarResult{
			Year:  solar.Year(),
			Month: solar.Month(),
			Day:   solar.Day(),
		})
	}
	return results
}
