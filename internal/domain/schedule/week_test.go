package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedule "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

func TestDefaultWeek(t *testing.T) {
	t.Parallel()

	w := schedule.DefaultWeek()

	for d := schedule.Sunday; d <= schedule.Saturday; d++ {
		day := w[d]
		assert.Equal(t, d, day.Weekday)
		assert.True(t, day.Working, "%s should default to working", d)
		assert.Equal(t, "20:00", day.End.String())

		if d == schedule.Friday {
			assert.Equal(t, "14:00", day.Start.String())
		} else {
			assert.Equal(t, "10:00", day.Start.String())
		}
	}

	assert.True(t, w.Valid())
}

func TestWeekValidity(t *testing.T) {
	t.Parallel()

	day := func(working bool, start, end string) schedule.Day {
		s, err := schedule.ParseTime(start)
		require.NoError(t, err)
		e, err := schedule.ParseTime(end)
		require.NoError(t, err)
		return schedule.Day{Working: working, Start: s, End: e}
	}

	t.Run("all non-working is always valid", func(t *testing.T) {
		t.Parallel()
		var w schedule.Week
		for d := range w {
			// end == start would be invalid on a working day
			w[d] = day(false, "14:00", "14:00")
			w[d].Weekday = schedule.Weekday(d)
		}
		assert.True(t, w.Valid())
	})

	t.Run("working day boundaries", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			start, end string
			valid      bool
		}{
			{"14:00", "14:00", false},
			{"14:00", "13:55", false},
			{"14:00", "14:05", true},
		}

		for _, tc := range cases {
			w := schedule.DefaultWeek()
			w[schedule.Monday] = schedule.Day{
				Weekday: schedule.Monday,
				Working: true,
				Start:   day(true, tc.start, tc.end).Start,
				End:     day(true, tc.start, tc.end).End,
			}
			assert.Equal(t, tc.valid, w.Valid(), "start %s end %s", tc.start, tc.end)
		}
	})
}

func TestWeekFromRows(t *testing.T) {
	t.Parallel()

	rows := []models.BarberSchedule{
		{BarberID: 7, DayOfWeek: 1, Working: true, StartTime: "09:00:00", EndTime: "18:00:00"},
		{BarberID: 7, DayOfWeek: 3, Working: false, StartTime: "", EndTime: ""},
	}

	w := schedule.WeekFromRows(rows)

	assert.True(t, w[schedule.Monday].Working)
	assert.Equal(t, "09:00", w[schedule.Monday].Start.String())
	assert.Equal(t, "18:00", w[schedule.Monday].End.String())

	// row with blank times keeps the default hours, not working
	assert.False(t, w[schedule.Wednesday].Working)
	assert.Equal(t, "10:00", w[schedule.Wednesday].Start.String())

	// gap days default to non-working
	assert.False(t, w[schedule.Sunday].Working)
	assert.False(t, w[schedule.Saturday].Working)
}

func TestWeekRows(t *testing.T) {
	t.Parallel()

	rows := schedule.DefaultWeek().Rows(42)
	require.Len(t, rows, schedule.DaysPerWeek)

	for i, row := range rows {
		assert.Equal(t, uint(42), row.BarberID)
		assert.Equal(t, i, row.DayOfWeek)
		assert.Equal(t, "20:00:00", row.EndTime)
	}
	assert.Equal(t, "14:00:00", rows[int(schedule.Friday)].StartTime)
	assert.Equal(t, "10:00:00", rows[int(schedule.Monday)].StartTime)
}
