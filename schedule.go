package zmanim

import (
	"log"
	"time"

	"github.com/subtlepseudonym/zmanim/solar"
)

// searchLimit bounds how many days ahead Next scans for a day on which
// the zman exists. Angular zmanim can be absent for weeks at a time at
// high latitudes.
const searchLimit = 366

// Schedule fires at a zman each day, shifted by a fixed offset.
// Negative offsets fire before the zman proper.
type Schedule struct {
	Zman   Zman
	Place  solar.Location
	Offset time.Duration
}

// Next determines the next instant of the schedule's zman after now,
// rolling forward past days on which it does not occur.
//
// This implements robfig/cron.Schedule
func (s Schedule) Next(now time.Time) time.Time {
	day := now
	for i := 0; i < searchLimit; i++ {
		sun, err := solar.Suntimes(day, s.Place)
		if err != nil {
			day = day.AddDate(0, 0, 1)
			continue
		}

		at, err := s.Zman.Compute(sun)
		if err != nil {
			day = day.AddDate(0, 0, 1)
			continue
		}

		at = at.Add(s.Offset)
		if at.After(now) {
			log.Printf("next %s: %s", s.Zman, at.Local().Format(time.RFC3339))
			return at
		}

		day = day.AddDate(0, 0, 1)
	}

	return time.Time{}
}
