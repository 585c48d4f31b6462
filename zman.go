// Package zmanim derives named halakhic times of day from sunrise and
// sunset.
//
// Proportional ("halakhic") hours divide the interval from sunrise to
// sunset into twelve parts. Angular zmanim are instead fixed by the
// depth of the sun below the horizon.
package zmanim

import (
	"fmt"
	"strings"
	"time"

	"github.com/subtlepseudonym/zmanim/solar"
)

// Anchor selects which side of the day an angular time-point falls on.
type Anchor int

const (
	Sunrise Anchor = iota
	Sundown
)

// Timepoint describes a moment of the halakhic day: either a number of
// proportional hours after sunrise, or a solar depression angle
// measured on the sunrise or sundown side of the day.
type Timepoint struct {
	hours      float64
	anchor     Anchor
	depression float64
	angular    bool
}

// Hour is a time-point a given number of proportional hours after
// sunrise. Hour(0) is sunrise itself and Hour(12) is sunset.
func Hour(hours float64) Timepoint {
	return Timepoint{hours: hours}
}

// Angle is a time-point at which the center of the sun sits the given
// number of degrees below the horizon.
func Angle(anchor Anchor, depression float64) Timepoint {
	return Timepoint{anchor: anchor, depression: depression, angular: true}
}

// Compute resolves the time-point to an instant on a given day.
func (p Timepoint) Compute(day solar.Day) (time.Time, error) {
	if !p.angular {
		span := day.Down.Sub(day.Rise)
		offset := time.Duration(float64(span) * p.hours / 12)
		return day.Rise.Add(offset), nil
	}

	rise, set, err := solar.RiseSetAt(day.Date, day.Place, -p.depression)
	if err != nil {
		return time.Time{}, fmt.Errorf("altitude crossing: %w", err)
	}

	if p.anchor == Sunrise {
		return rise, nil
	}
	return set, nil
}

// Zman names a halakhic time of day.
type Zman int

const (
	// Alot Hashachar, daybreak: the first rays of light are visible,
	// with the sun 16.1 degrees below the horizon before sunrise.
	Alot Zman = iota

	// Netz Hachama: the ball of the sun rises above the horizon.
	Netz

	// Sof Zman Kriyat Shema, the latest time to say the morning
	// Shema: three proportional hours into the day.
	Shema

	// Sof Zman Tefilla, the latest time to say the Shacharit Amidah:
	// four proportional hours into the day.
	Tefilla

	// Chatzot: midday, the midpoint between sunrise and sunset.
	Chatzot

	// Mincha Gedola, the earliest time to recite Mincha: half a
	// proportional hour after midday.
	MinchaGedola

	// Mincha Ketana, the preferable earliest time to recite Mincha:
	// two and a half proportional hours before sunset.
	MinchaKetana

	// Plag HaMincha: the midpoint between Mincha Ketana and sunset.
	PlagHaMincha

	// Shekiah: the ball of the sun falls below the horizon. The next
	// day of the Hebrew calendar begins at this point, or shortly
	// after at Tzet for most purposes.
	Shekiah

	// Tzet Hakochavim, nightfall: the point after which it is
	// considered definitely the following day, with the sun 8.5
	// degrees below the horizon after sundown.
	Tzet
)

// Zmanim lists every named zman in order of occurrence through the day.
var Zmanim = []Zman{
	Alot,
	Netz,
	Shema,
	Tefilla,
	Chatzot,
	MinchaGedola,
	MinchaKetana,
	PlagHaMincha,
	Shekiah,
	Tzet,
}

var zmanNames = map[Zman]string{
	Alot:         "alot",
	Netz:         "netz",
	Shema:        "shema",
	Tefilla:      "tefilla",
	Chatzot:      "chatzot",
	MinchaGedola: "mincha_gedola",
	MinchaKetana: "mincha_ketana",
	PlagHaMincha: "plag_hamincha",
	Shekiah:      "shekiah",
	Tzet:         "tzet",
}

// Timepoint returns the time-point specification for the zman.
func (z Zman) Timepoint() Timepoint {
	switch z {
	case Alot:
		return Angle(Sunrise, 16.1)
	case Netz:
		return Hour(0)
	case Shema:
		return Hour(3)
	case Tefilla:
		return Hour(4)
	case Chatzot:
		return Hour(6)
	case MinchaGedola:
		return Hour(6.5)
	case MinchaKetana:
		return Hour(9.5)
	case PlagHaMincha:
		return Hour(10.75)
	case Shekiah:
		return Hour(12)
	case Tzet:
		return Angle(Sundown, 8.5)
	}
	return Timepoint{}
}

// Compute resolves the zman to an instant on a given day.
func (z Zman) Compute(day solar.Day) (time.Time, error) {
	return z.Timepoint().Compute(day)
}

func (z Zman) String() string {
	if name, ok := zmanNames[z]; ok {
		return name
	}
	return fmt.Sprintf("zman(%d)", int(z))
}

// ParseZman resolves a zman by its name, as used in config files.
func ParseZman(name string) (Zman, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for zman, known := range zmanNames {
		if want == known {
			return zman, nil
		}
	}
	return 0, fmt.Errorf("unknown zman %q", name)
}
