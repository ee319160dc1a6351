// Package lunisolar converts between Gregorian (solar) dates and Chinese
// lunisolar dates.
//
// Lunisolar data comes from an embedded table covering lunisolar years
// MinYear through MaxYear, which corresponds to solar dates 1900-01-31 through
// 2101-01-28. Dates outside that span are rejected with ErrOutOfRange.
//
// A lunisolar year may contain one leap month that repeats the number of the
// month before it. LunisolarDate carries an explicit leap flag to tell the two
// apart; LunarToSolar, which receives only three integers, tries both
// interpretations and returns every one that exists.
//
//	res, err := lunisolar.SolarToLunar(1991, 6, 6)  // {Month: 4, Day: 24}
//	dates := lunisolar.LunarToSolar(2020, 4, 4)     // 2020-04-26, 2020-05-26
package lunisolar
