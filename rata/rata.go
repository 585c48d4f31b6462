// Package rata converts between civil calendar dates and Rata Die day
// numbers, a linear day count spanning the 1752 switch from the Julian
// to the Gregorian calendar.
//
// Day 1 is 01 January of year 1 CE. Date labels on or before
// 01 September 1752 are read under Julian leap rules, labels on or
// after 15 September 1752 under Gregorian rules, and the labels in
// between were removed by the calendar reform and convert to an error.
package rata

import (
	"errors"
	"strconv"
	"time"
)

// RataDie is a day number counted from a fixed epoch, independent of
// calendar regime. Distinct valid dates map to distinct values and the
// mapping follows calendar order.
type RataDie uint64

var (
	// ErrEra is returned for dates before year 1 CE.
	ErrEra = errors.New("invalid era (must be CE)")
	// ErrAdjustment is returned for the calendar labels removed by the
	// Gregorian reform, 02 through 14 September 1752.
	ErrAdjustment = errors.New("within Gregorian adjustment")
)

const (
	// adjustment is the day number of the last valid Julian label,
	// 01 September 1752. The inverse conversion decomposes larger day
	// numbers under Gregorian cycle lengths and the rest under Julian
	// cycle lengths.
	adjustment RataDie = 639795

	days400Gregorian = 146097 // 400 Gregorian years
	days100Gregorian = 36524  // 100 Gregorian years
	days400Julian    = 146100 // 400 Julian years
	days100Julian    = 36525  // 100 Julian years
	days4            = 1461   // 4 years containing one leap day
)

// FromDate converts a civil date to its day number. Only the year,
// month and day of t are considered.
//
// Dates before year 1 CE fail with ErrEra. The labels 02 through
// 14 September 1752 fail with ErrAdjustment. Julian 01 and 02 January
// of year 1 CE also fail with ErrEra: they precede day 1, falling in
// 1 BCE under the Gregorian anchor.
func FromDate(t time.Time) (RataDie, error) {
	year, month, day := t.Date()

	if year < 1 {
		return 0, ErrEra
	}
	if year == 1752 && month == time.September && day >= 2 && day <= 14 {
		return 0, ErrAdjustment
	}

	// Complete years preceding this one.
	py := int64(year - 1)

	// Baseline of 365 days per prior year, one extra day per 4-year
	// Julian leap cycle, plus the day of year.
	rata := 365*py + py/4 + int64(t.YearDay())

	if isGregorian(year, month, day) {
		// Remove Julian century leap days, restore the Gregorian
		// ones every 400 years.
		rata -= py / 100
		rata += py / 400
	} else {
		// Julian 02 January of year 1 is Gregorian 31 December of
		// 1 BCE, so Julian day-of-year counting overshoots the
		// Gregorian-anchored epoch by two.
		rata -= 2
	}

	if rata < 1 {
		return 0, ErrEra
	}
	return RataDie(rata), nil
}

// isGregorian reports whether a date label falls after the start of the
// calendar adjustment, placing it under Gregorian leap rules.
func isGregorian(year int, month time.Month, day int) bool {
	if year != 1752 {
		return year > 1752
	}
	if month != time.September {
		return month > time.September
	}
	return day > 2
}

// Date converts a day number back to its civil date. Every value maps
// to exactly one date; there is no error path.
//
// The decomposition follows the footnote on page 384 of "Calendrical
// Calculations, Part II: Three Historical Calendars" by Reingold,
// Dershowitz, and Clamen, Software--Practice and Experience 23(4),
// April 1993.
func (r RataDie) Date() time.Time {
	var l0, n400, day1, n100, day2 uint64
	if r > adjustment {
		// Count days from Gregorian 31 December 1 BCE.
		l0 = uint64(r) - 1
		n400 = l0 / days400Gregorian
		day1 = l0 % days400Gregorian
		n100 = day1 / days100Gregorian
		day2 = day1 % days100Gregorian
	} else {
		// Gregorian 31 December 1 BCE is Julian 02 January 1 CE, so
		// shift by two to count from Julian 31 December 1 BCE.
		l0 = uint64(r) + 1
		n400 = l0 / days400Julian
		day1 = l0 % days400Julian
		n100 = day1 / days100Julian
		day2 = day1 % days100Julian
	}

	// 4-year periods and single years into the current period.
	n4 := day2 / days4
	d3 := day2 % days4
	n1 := d3 / 365
	dd := d3 % 365

	years := 400*n400 + 100*n100 + 4*n4 + n1

	// A full fourth century block or a full fourth single year means
	// the count landed on 31 December of a leap year, not 01 January
	// of the year after: day 366 of the year the blocks already sum
	// to. A sum of zero targets 1 BCE, itself a leap year, and day
	// 366 still holds.
	if n100 == 4 || n1 == 4 {
		return date(int(years), time.January, 1).AddDate(0, 0, 365)
	}

	// There is no year zero, so block index zero is year 1 CE.
	return date(int(years)+1, time.January, 1).AddDate(0, 0, int(dd))
}

// Weekday returns the day of the week. Day 1, 01 January 1 CE, is a
// Monday, so the weekday is the day number modulo seven.
func (r RataDie) Weekday() time.Weekday {
	return time.Weekday(r % 7)
}

func (r RataDie) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
