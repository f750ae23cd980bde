package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedule "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	t.Run("accepts HH:MM", func(t *testing.T) {
		t.Parallel()
		got, err := schedule.ParseTime("14:05")
		require.NoError(t, err)
		assert.Equal(t, schedule.TimeOfDay{Hour: 14, Minute: 5}, got)
	})

	t.Run("reads only the first five characters of HH:MM:SS", func(t *testing.T) {
		t.Parallel()
		got, err := schedule.ParseTime("09:30:00")
		require.NoError(t, err)
		assert.Equal(t, schedule.TimeOfDay{Hour: 9, Minute: 30}, got)
	})

	t.Run("snaps stored minutes to the 5-minute grid", func(t *testing.T) {
		t.Parallel()
		got, err := schedule.ParseTime("17:37:00")
		require.NoError(t, err)
		assert.Equal(t, 35, got.Minute)
		assert.Equal(t, "17:35", got.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "17", "7:30", "ab:cd", "24:00", "12:60"} {
			_, err := schedule.ParseTime(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestSnap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   schedule.TimeOfDay
		want string
	}{
		{schedule.TimeOfDay{Hour: 17, Minute: 37}, "17:35"},
		{schedule.TimeOfDay{Hour: 17, Minute: 38}, "17:40"},
		{schedule.TimeOfDay{Hour: 10, Minute: 0}, "10:00"},
		// rounding up carries into the next hour
		{schedule.TimeOfDay{Hour: 9, Minute: 58}, "10:00"},
		// the day boundary clamps instead of wrapping
		{schedule.TimeOfDay{Hour: 23, Minute: 59}, "23:55"},
	}

	for _, tc := range cases {
		snapped := tc.in.Snap()
		assert.Equal(t, tc.want, snapped.String())

		// snapping is idempotent
		assert.Equal(t, snapped, snapped.Snap())
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	t.Parallel()

	tod := schedule.TimeOfDay{Hour: 14, Minute: 5}
	assert.Equal(t, 845, tod.Minutes())
	assert.Equal(t, tod, schedule.FromMinutes(845))
	assert.Equal(t, "14:05:00", tod.Storage())
}

func TestClock12(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     schedule.TimeOfDay
		hour12 int
		mer    schedule.Meridiem
	}{
		{schedule.TimeOfDay{Hour: 0}, 12, schedule.AM},
		{schedule.TimeOfDay{Hour: 12}, 12, schedule.PM},
		{schedule.TimeOfDay{Hour: 9}, 9, schedule.AM},
		{schedule.TimeOfDay{Hour: 14}, 2, schedule.PM},
		{schedule.TimeOfDay{Hour: 23}, 11, schedule.PM},
	}

	for _, tc := range cases {
		h, _, m := tc.in.Clock12()
		assert.Equal(t, tc.hour12, h, "hour of %s", tc.in)
		assert.Equal(t, tc.mer, m, "meridiem of %s", tc.in)

		// composing back yields the original 24-hour value
		assert.Equal(t, tc.in, schedule.Compose12(h, tc.in.Minute, m))
	}
}
