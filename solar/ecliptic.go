package solar

import (
	"math"
)

// obliquity is the axial tilt of the Earth in degrees.
const obliquity = 23.4397

// MeanSolarNoon approximates solar noon for the mean sun for a given
// day number since J2000 at a given longitude. Longitude is degrees
// east, with negative values for degrees west.
func MeanSolarNoon(dayNumber, longitude float64) float64 {
	return dayNumber + 0.0009 - longitude/360
}

// SolarMeanAnomaly calculates the angular position of the mean sun
// along its orbit since perihelion, in degrees.
func SolarMeanAnomaly(meanSolarNoon float64) float64 {
	return math.Mod(357.5291+0.98560028*meanSolarNoon, 360)
}

// EquationOfTheCenter calculates the angular difference between the
// position of the actual sun (with an elliptical orbit) and the mean
// sun (with a circular orbit). This can be expressed as a function of
// mean anomaly and orbital eccentricity.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(meanAnomaly float64) float64 {
	m := radians(meanAnomaly)

	firstOrder := 1.9148 * math.Sin(m)
	secondOrder := 0.0200 * math.Sin(2*m)
	thirdOrder := 0.0003 * math.Sin(3*m)

	return firstOrder + secondOrder + thirdOrder
}

// EclipticLongitude calculates the sun's position along the ecliptic
// in degrees, including the 102.9372 degree argument of perihelion.
func EclipticLongitude(meanAnomaly, center float64) float64 {
	return math.Mod(meanAnomaly+center+180+102.9372, 360)
}

// SolarTransit is the Julian date of local true solar noon, correcting
// the mean noon for the equation of time.
func SolarTransit(meanSolarNoon, meanAnomaly, eclipticLongitude float64) float64 {
	return J2000 + meanSolarNoon +
		0.0053*math.Sin(radians(meanAnomaly)) -
		0.0069*math.Sin(2*radians(eclipticLongitude))
}

// SolarDeclination returns the sine of the sun's declination for an
// ecliptic longitude.
func SolarDeclination(eclipticLongitude float64) float64 {
	return math.Sin(radians(eclipticLongitude)) * math.Sin(radians(obliquity))
}

// HourAngle returns the angle, in degrees, between local solar noon
// and the point where the center of the sun reaches the given altitude
// relative to the horizon (negative below). ErrNoCrossing is returned
// when the sun stays entirely above or below that altitude for the
// whole day.
func HourAngle(latitude, sinDeclination, altitude float64) (float64, error) {
	lat := radians(latitude)
	cosDeclination := math.Cos(math.Asin(sinDeclination))

	cosAngle := (math.Sin(radians(altitude)) - math.Sin(lat)*sinDeclination) /
		(math.Cos(lat) * cosDeclination)
	if cosAngle < -1 || cosAngle > 1 {
		return 0, ErrNoCrossing
	}

	return degrees(math.Acos(cosAngle)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
