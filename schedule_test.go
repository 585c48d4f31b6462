package zmanim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/solar"
)

var toronto = solar.Location{Latitude: 43.70643, Longitude: -79.39864}

func Test_Schedule_Next_SameDay(t *testing.T) {
	// Well before sunrise, the next netz is later the same day.
	now := time.Date(2025, time.November, 4, 10, 0, 0, 0, time.UTC)

	sched := zmanim.Schedule{Zman: zmanim.Netz, Place: toronto}
	next := sched.Next(now)

	require.False(t, next.IsZero())
	assert.True(t, next.After(now))
	assert.True(t, next.Before(now.Add(3*time.Hour)), "sunrise in Toronto is close to 12:00 UTC in November")
}

func Test_Schedule_Next_RollsToTomorrow(t *testing.T) {
	// After sunset, the next shekiah is the following evening.
	now := time.Date(2025, time.November, 4, 23, 0, 0, 0, time.UTC)

	sched := zmanim.Schedule{Zman: zmanim.Shekiah, Place: toronto}
	next := sched.Next(now)

	require.False(t, next.IsZero())
	assert.True(t, next.After(now))
	assert.True(t, next.Before(now.Add(26*time.Hour)))
	assert.Equal(t, 5, next.UTC().Day())
}

func Test_Schedule_Next_Offset(t *testing.T) {
	now := time.Date(2025, time.November, 4, 10, 0, 0, 0, time.UTC)

	plain := zmanim.Schedule{Zman: zmanim.Shekiah, Place: toronto}
	early := zmanim.Schedule{Zman: zmanim.Shekiah, Place: toronto, Offset: -18 * time.Minute}

	// Candle-lighting style offset fires exactly that much earlier.
	assert.Equal(t, plain.Next(now).Add(-18*time.Minute), early.Next(now))
}

func Test_Schedule_Next_SkipsMissingDays(t *testing.T) {
	// Midsummer on Svalbard: no sunset at all for weeks. The schedule
	// must scan forward to the first day the sun sets again rather
	// than fail.
	svalbard := solar.Location{Latitude: 78.22, Longitude: 15.65}
	now := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)

	sched := zmanim.Schedule{Zman: zmanim.Shekiah, Place: svalbard}
	next := sched.Next(now)

	require.False(t, next.IsZero())
	assert.True(t, next.After(now.AddDate(0, 0, 14)), "the midnight sun lasts well past mid-July")
	assert.True(t, next.Before(now.AddDate(0, 0, 90)))
}
