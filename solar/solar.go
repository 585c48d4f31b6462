// Package solar calculates sunrise and sunset times using the standard
// sunrise equation.
//
// https://en.wikipedia.org/wiki/Sunrise_equation
package solar

import (
	"errors"
	"math"
	"time"
)

// ErrNoCrossing is returned when the sun does not cross the requested
// altitude on a given day, as during polar day and polar night.
var ErrNoCrossing = errors.New("sun does not cross the requested altitude")

// Location is a geographic coordinate on Earth. Latitude and Longitude
// are degrees, north and east positive. Elevation is meters above sea
// level.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation,omitempty"`
}

// Day holds the sunrise and sunset instants for a civil date at a
// location. Instants are UTC.
type Day struct {
	Date  time.Time
	Place Location
	Rise  time.Time
	Down  time.Time
}

// Suntimes calculates the sunrise and sunset instants for the civil
// date of t at a location. Only the year, month and day of t are
// considered.
func Suntimes(t time.Time, place Location) (Day, error) {
	rise, down, err := RiseSetAt(t, place, horizonAltitude(place.Elevation))
	if err != nil {
		return Day{}, err
	}

	year, month, day := t.Date()
	return Day{
		Date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Place: place,
		Rise:  rise,
		Down:  down,
	}, nil
}

// RiseSetAt calculates the two instants on the civil date of t at
// which the center of the sun crosses the given altitude, in degrees
// relative to the horizon with negative values below it. The first
// instant is on the rising side of solar noon, the second on the
// setting side.
func RiseSetAt(t time.Time, place Location, altitude float64) (rise, set time.Time, err error) {
	// Anchor the calculation to noon UTC on the target date.
	year, month, day := t.Date()
	noon := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)

	jdate := JulianDate(noon)
	dayNumber := math.Ceil(jdate - J2000 - 0.0009 + deltaT/SecondsPerDay)

	meanNoon := MeanSolarNoon(dayNumber, place.Longitude)
	anomaly := SolarMeanAnomaly(meanNoon)
	center := EquationOfTheCenter(anomaly)
	longitude := EclipticLongitude(anomaly, center)
	transit := SolarTransit(meanNoon, anomaly, longitude)

	hourAngle, err := HourAngle(place.Latitude, SolarDeclination(longitude), altitude)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	rise = TimeFromJulian(transit - hourAngle/360)
	set = TimeFromJulian(transit + hourAngle/360)
	return rise, set, nil
}

// horizonAltitude is the altitude of the solar center at rise and set:
// 0.833 degrees for refraction and the solar radius, plus a horizon
// dip correction for observer elevation in meters.
func horizonAltitude(elevation float64) float64 {
	return -0.833 - 2.076*math.Sqrt(elevation)/60
}
