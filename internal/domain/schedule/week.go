package schedule

import (
	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/models"
)

// ===============================
// Weekly schedule draft
// ===============================

// Day is the editable form of one weekday's working hours.
type Day struct {
	Weekday Weekday   `json:"day_of_week"`
	Working bool      `json:"is_working"`
	Start   TimeOfDay `json:"start_time"`
	End     TimeOfDay `json:"end_time"`
}

// Week always holds exactly seven entries, indexed by Weekday.
type Week [DaysPerWeek]Day

var (
	defaultStart       = TimeOfDay{Hour: 10}
	defaultEnd         = TimeOfDay{Hour: 20}
	defaultFridayStart = TimeOfDay{Hour: 14}
)

// DefaultWeek is the pattern a brand-new barber starts from: every day
// working 10:00-20:00, Friday 14:00-20:00.
func DefaultWeek() Week {
	var w Week
	for d := Sunday; d <= Saturday; d++ {
		day := Day{Weekday: d, Working: true, Start: defaultStart, End: defaultEnd}
		if d == Friday {
			day.Start = defaultFridayStart
		}
		w[d] = day
	}
	return w
}

// EmptyWeek is the all-non-working seed; default times are kept so a
// day has something to show once toggled on.
func EmptyWeek() Week {
	w := DefaultWeek()
	for d := range w {
		w[d].Working = false
		w[d].Start = defaultStart
	}
	return w
}

// WeekFromRows seeds a draft from persisted rows, mapped 1:1 by
// day_of_week. Days with no row, or with unparseable times, fall back
// to the non-working default.
func WeekFromRows(rows []models.BarberSchedule) Week {
	w := EmptyWeek()
	for _, row := range rows {
		d := Weekday(row.DayOfWeek)
		if !d.Valid() {
			continue
		}
		day := Day{Weekday: d, Working: row.Working, Start: defaultStart, End: defaultEnd}
		if start, err := ParseTime(row.StartTime); err == nil {
			day.Start = start
		}
		if end, err := ParseTime(row.EndTime); err == nil {
			day.End = end
		}
		w[d] = day
	}
	return w
}

// Valid is the derived validity flag: false iff any working day has
// end <= start. Non-working days never invalidate the draft.
func (w Week) Valid() bool {
	return w.Validate() == nil
}

func (w Week) Validate() error {
	for _, day := range w {
		if day.Working && day.End.Minutes() <= day.Start.Minutes() {
			return httperr.ErrBusiness("end_before_start")
		}
	}
	return nil
}

// Rows converts the draft into persistable rows for barberID. Times are
// written for every day, working or not, so toggling a day back on
// restores its last hours.
func (w Week) Rows(barberID uint) []models.BarberSchedule {
	rows := make([]models.BarberSchedule, 0, DaysPerWeek)
	for _, day := range w {
		rows = append(rows, models.BarberSchedule{
			BarberID:  barberID,
			DayOfWeek: int(day.Weekday),
			Working:   day.Working,
			StartTime: day.Start.Storage(),
			EndTime:   day.End.Storage(),
		})
	}
	return rows
}
