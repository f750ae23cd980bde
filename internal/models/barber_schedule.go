package models

import "time"

// BarberSchedule is one weekday row of a barber's working hours.
// Times are stored as "HH:MM:SS" strings; 0 = Sunday, 6 = Saturday.
type BarberSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_barber_day" json:"barber_id"`

	DayOfWeek int `gorm:"index:idx_barber_day" json:"day_of_week"`

	Working   bool   `json:"is_working"`
	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
