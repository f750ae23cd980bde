package schedule

// ===============================
// Time picker
// ===============================

// Picker models the constrained time selector: an hour wheel (1-12),
// a minute wheel in 5-minute steps and an AM/PM toggle, with an
// optional floor below which no value may be composed. It emits the
// composed 24-hour value after every mutation.
type Picker struct {
	hour12   int
	minute   int
	meridiem Meridiem

	floor *TimeOfDay
}

func NewPicker(initial TimeOfDay) *Picker {
	h, m, mer := initial.Snap().Clock12()
	return &Picker{hour12: h, minute: m, meridiem: mer}
}

// NewPickerWithFloor builds the picker used for an "end" value, floored
// at its paired "start" value.
func NewPickerWithFloor(initial, floor TimeOfDay) *Picker {
	p := NewPicker(initial)
	f := floor.Snap()
	p.floor = &f
	p.ensureAboveFloor()
	return p
}

// Value is the composed 24-hour selection.
func (p *Picker) Value() TimeOfDay {
	return Compose12(p.hour12, p.minute, p.meridiem)
}

// HourEnabled reports whether an hour option can be selected: an hour
// is disabled only when both its AM and PM readings (with the currently
// selected minute) fall below the floor.
func (p *Picker) HourEnabled(hour12 int) bool {
	return p.eitherMeridiemAllowed(hour12, p.minute)
}

// MinuteEnabled mirrors HourEnabled for the minute wheel.
func (p *Picker) MinuteEnabled(minute int) bool {
	return p.eitherMeridiemAllowed(p.hour12, minute)
}

// MeridiemEnabled reports whether toggling to m keeps the current
// hour/minute combination at or above the floor.
func (p *Picker) MeridiemEnabled(m Meridiem) bool {
	return p.allowed(p.hour12, p.minute, m)
}

func (p *Picker) SetHour(hour12 int) TimeOfDay {
	if hour12 >= 1 && hour12 <= 12 {
		p.hour12 = hour12
		p.ensureAboveFloor()
	}
	return p.Value()
}

func (p *Picker) SetMinute(minute int) TimeOfDay {
	if minute >= 0 && minute < 60 && minute%Step == 0 {
		p.minute = minute
		p.ensureAboveFloor()
	}
	return p.Value()
}

func (p *Picker) SetMeridiem(m Meridiem) TimeOfDay {
	if (m == AM || m == PM) && p.allowed(p.hour12, p.minute, m) {
		p.meridiem = m
	}
	return p.Value()
}

func (p *Picker) allowed(hour12, minute int, m Meridiem) bool {
	if p.floor == nil {
		return true
	}
	return Compose12(hour12, minute, m).Minutes() >= p.floor.Minutes()
}

func (p *Picker) eitherMeridiemAllowed(hour12, minute int) bool {
	return p.allowed(hour12, minute, AM) || p.allowed(hour12, minute, PM)
}

// ensureAboveFloor flips the meridiem when the current selection fell
// below the floor but the opposite meridiem would not.
func (p *Picker) ensureAboveFloor() {
	if p.allowed(p.hour12, p.minute, p.meridiem) {
		return
	}
	other := AM
	if p.meridiem == AM {
		other = PM
	}
	if p.allowed(p.hour12, p.minute, other) {
		p.meridiem = other
	}
}
