package solar

import (
	"math"
	"time"
)

const (
	EpochJulianDate = 2440587.5 // Julian date of the unix epoch
	SecondsPerDay   = 86400     // not including leap seconds

	// J2000 is the Julian date of the J2000 epoch, 12:00 TT on
	// 01 January 2000.
	J2000 = 2451545.0

	// deltaT is the offset of terrestrial time from UTC: 32.184
	// seconds of TT-TAI plus 37 accumulated leap seconds.
	deltaT = 69.184
)

// JulianDate returns the Julian date for a particular time.
func JulianDate(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return sec/SecondsPerDay + EpochJulianDate
}

// TimeFromJulian converts a Julian date to a wall-clock instant in UTC.
func TimeFromJulian(j float64) time.Time {
	sec := (j - EpochJulianDate) * SecondsPerDay
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}
