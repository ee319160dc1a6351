package lunisolar

import "time"

// Supported lunisolar years. The table below has one entry per year in
// [MinYear, MaxYear].
const (
	MinYear = 1900
	MaxYear = 2100
)

// yearTable encodes one lunisolar year per entry:
//
//	bits 0-3   leap month number, 0 when the year has none
//	bits 4-15  month lengths; bit 0x10000>>m set means month m has 30 days
//	bit  16    set when the leap month has 30 days
var yearTable = [MaxYear - MinYear + 1]uint32{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2, // 1900
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977, // 1910
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970, // 1920
	0x06566, 0x0d4a0, 0x0ea50, 0x16a95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950, // 1930
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557, // 1940
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5b0, 0x14573, 0x052b0, 0x0a9a8, 0x0e950, 0x06aa0, // 1950
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0, // 1960
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b6a0, 0x195a6, // 1970
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570, // 1980
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0, // 1990
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5, // 2000
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930, // 2010
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530, // 2020
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45, // 2030
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0, // 2040
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0, // 2050
	0x092e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4, // 2060
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0, // 2070
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160, // 2080
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252, // 2090
	0x0d520, // 2100
}

// epoch is the solar date of the first day of lunisolar year MinYear.
var epoch = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)

// lunarMonth is one month of a lunisolar year in calendar order.
type lunarMonth struct {
	number uint8
	leap   bool
	days   int
	offset int // days from the first day of the year
}

// yearLayout is the decoded form of a yearTable entry.
type yearLayout struct {
	start     int // days from epoch to the first day of the year
	leapMonth uint8
	months    []lunarMonth
	days      int
}

var (
	layouts [MaxYear - MinYear + 1]yearLayout
	// tableEnd is the number of days from epoch to the day after the last
	// supported date.
	tableEnd int
)

func init() {
	start := 0
	for i, word := range yearTable {
		layouts[i] = decodeYear(word, start)
		start += layouts[i].days
	}
	tableEnd = start
}

func decodeYear(word uint32, start int) yearLayout {
	y := yearLayout{
		start:     start,
		leapMonth: uint8(word & 0xf),
		months:    make([]lunarMonth, 0, 13),
	}
	for m := uint8(1); m <= 12; m++ {
		days := 29
		if word&(0x10000>>m) != 0 {
			days = 30
		}
		y.months = append(y.months, lunarMonth{number: m, days: days, offset: y.days})
		y.days += days

		if m == y.leapMonth {
			leapDays := 29
			if word&0x10000 != 0 {
				leapDays = 30
			}
			y.months = append(y.months, lunarMonth{number: m, leap: true, days: leapDays, offset: y.days})
			y.days += leapDays
		}
	}
	return y
}

// layoutFor returns the decoded layout for a lunisolar year.
func layoutFor(year uint16) (*yearLayout, bool) {
	if year < MinYear || year > MaxYear {
		return nil, false
	}
	return &layouts[year-MinYear], true
}

// month finds a month of the year by number and leap flag.
func (y *yearLayout) month(number uint8, leap bool) (lunarMonth, bool) {
	for _, m := range y.months {
		if m.number == number && m.leap == leap {
			return m, true
		}
	}
	return lunarMonth{}, false
}
