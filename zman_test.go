package zmanim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/zmanim"
	"github.com/subtlepseudonym/zmanim/solar"
)

// clockDay builds a Day with fixed rise and down instants for exact
// proportional-hour arithmetic.
func clockDay(rise, down time.Time) solar.Day {
	return solar.Day{
		Date: time.Date(rise.Year(), rise.Month(), rise.Day(), 0, 0, 0, 0, time.UTC),
		Rise: rise,
		Down: down,
	}
}

func Test_Timepoint_ProportionalHours(t *testing.T) {
	rise := time.Date(2025, time.March, 20, 6, 0, 0, 0, time.UTC)
	down := time.Date(2025, time.March, 20, 18, 0, 0, 0, time.UTC)
	day := clockDay(rise, down)

	tests := []struct {
		name string
		zman zmanim.Zman
		want time.Time
	}{
		{name: "netz_is_sunrise", zman: zmanim.Netz, want: rise},
		{name: "shema_three_hours", zman: zmanim.Shema, want: rise.Add(3 * time.Hour)},
		{name: "tefilla_four_hours", zman: zmanim.Tefilla, want: rise.Add(4 * time.Hour)},
		{name: "chatzot_is_midday", zman: zmanim.Chatzot, want: rise.Add(6 * time.Hour)},
		{name: "mincha_gedola", zman: zmanim.MinchaGedola, want: rise.Add(6*time.Hour + 30*time.Minute)},
		{name: "mincha_ketana", zman: zmanim.MinchaKetana, want: rise.Add(9*time.Hour + 30*time.Minute)},
		{name: "plag_hamincha", zman: zmanim.PlagHaMincha, want: rise.Add(10*time.Hour + 45*time.Minute)},
		{name: "shekiah_is_sunset", zman: zmanim.Shekiah, want: down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.zman.Compute(day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Timepoint_SeasonalHours(t *testing.T) {
	// A ten hour day: each proportional hour is fifty minutes.
	rise := time.Date(2025, time.November, 20, 7, 0, 0, 0, time.UTC)
	down := time.Date(2025, time.November, 20, 17, 0, 0, 0, time.UTC)
	day := clockDay(rise, down)

	shema, err := zmanim.Shema.Compute(day)
	require.NoError(t, err)
	assert.Equal(t, rise.Add(150*time.Minute), shema)

	chatzot, err := zmanim.Chatzot.Compute(day)
	require.NoError(t, err)
	assert.Equal(t, rise.Add(5*time.Hour), chatzot)

	plag, err := zmanim.PlagHaMincha.Compute(day)
	require.NoError(t, err)
	assert.Equal(t, rise.Add(time.Duration(10.75*float64(50*time.Minute))), plag)
}

func Test_Zmanim_Ordering(t *testing.T) {
	day, err := solar.Suntimes(
		time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC),
		solar.Location{Latitude: 43.70643, Longitude: -79.39864},
	)
	require.NoError(t, err)

	var prev time.Time
	for _, zman := range zmanim.Zmanim {
		got, err := zman.Compute(day)
		require.NoError(t, err, "compute %s", zman)

		if !prev.IsZero() {
			assert.True(t, got.After(prev), "%s must follow the previous zman", zman)
		}
		prev = got
	}
}

func Test_Zmanim_AngularBracketTheDay(t *testing.T) {
	day, err := solar.Suntimes(
		time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC),
		solar.Location{Latitude: 43.70643, Longitude: -79.39864},
	)
	require.NoError(t, err)

	alot, err := zmanim.Alot.Compute(day)
	require.NoError(t, err)
	tzet, err := zmanim.Tzet.Compute(day)
	require.NoError(t, err)

	assert.True(t, alot.Before(day.Rise), "daybreak precedes sunrise")
	assert.True(t, tzet.After(day.Down), "nightfall follows sundown")

	// 16.1 degrees of depression takes longer to cover than 8.5.
	assert.Greater(t, day.Rise.Sub(alot), tzet.Sub(day.Down))
}

func Test_Timepoint_AngularMissing(t *testing.T) {
	// White nights: at 60 degrees north in midsummer the sun sets but
	// never reaches 16.1 degrees below the horizon.
	day, err := solar.Suntimes(
		time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
		solar.Location{Latitude: 59.93863, Longitude: 30.31413},
	)
	require.NoError(t, err)

	_, err = zmanim.Alot.Compute(day)
	assert.ErrorIs(t, err, solar.ErrNoCrossing)

	// Proportional zmanim remain well defined on the same day.
	_, err = zmanim.Chatzot.Compute(day)
	assert.NoError(t, err)
}

func Test_ParseZman(t *testing.T) {
	for _, zman := range zmanim.Zmanim {
		parsed, err := zmanim.ParseZman(zman.String())
		require.NoError(t, err)
		assert.Equal(t, zman, parsed)
	}

	parsed, err := zmanim.ParseZman(" Mincha_Gedola ")
	require.NoError(t, err)
	assert.Equal(t, zmanim.MinchaGedola, parsed)

	_, err = zmanim.ParseZman("bedtime")
	assert.Error(t, err)
}
