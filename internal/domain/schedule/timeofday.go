package schedule

import (
	"fmt"

	"github.com/fadehouse/fadehouse-api/internal/httperr"
)

// ===============================
// TimeOfDay
// ===============================

// Step is the minute granularity of every editable time.
const Step = 5

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time held in 24-hour form.
// Parsed values are always snapped to the 5-minute grid.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTime accepts "HH:MM" or "HH:MM:SS" (only the first five
// characters are read) and snaps the minute to the nearest step.
func ParseTime(s string) (TimeOfDay, error) {
	if len(s) < 5 || s[2] != ':' {
		return TimeOfDay{}, httperr.ErrBusiness("invalid_time")
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, httperr.ErrBusiness("invalid_time")
		}
	}

	t := TimeOfDay{
		Hour:   int(s[0]-'0')*10 + int(s[1]-'0'),
		Minute: int(s[3]-'0')*10 + int(s[4]-'0'),
	}
	if t.Hour > 23 || t.Minute > 59 {
		return TimeOfDay{}, httperr.ErrBusiness("invalid_time")
	}

	return t.Snap(), nil
}

// Snap rounds the minute to the nearest 5-minute step, carrying past
// the hour when needed. The day boundary clamps at 23:55. Snapping an
// already-snapped value is a no-op.
func (t TimeOfDay) Snap() TimeOfDay {
	m := t.Minutes()
	snapped := ((m + Step/2) / Step) * Step
	if snapped > minutesPerDay-Step {
		snapped = minutesPerDay - Step
	}
	return FromMinutes(snapped)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func FromMinutes(m int) TimeOfDay {
	if m < 0 {
		m = 0
	}
	if m >= minutesPerDay {
		m = minutesPerDay - 1
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// String renders the wire form "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Storage renders the persisted form "HH:MM:SS".
func (t TimeOfDay) Storage() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// ===============================
// 12-hour clock
// ===============================

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Clock12 converts to display form: hour 1-12 plus meridiem.
// Midnight is 12 AM, noon is 12 PM.
func (t TimeOfDay) Clock12() (hour12 int, minute int, m Meridiem) {
	hour12 = t.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	m = AM
	if t.Hour >= 12 {
		m = PM
	}
	return hour12, t.Minute, m
}

// Compose12 builds the 24-hour value from display form.
func Compose12(hour12, minute int, m Meridiem) TimeOfDay {
	h := hour12 % 12
	if m == PM {
		h += 12
	}
	return TimeOfDay{Hour: h, Minute: minute}
}
