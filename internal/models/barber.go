package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Title    string `gorm:"size:100" json:"title"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"is_active"`

	Schedules []BarberSchedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
