package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AuthorName string `gorm:"size:100;not null" json:"author_name"`
	Quote      string `gorm:"size:500;not null" json:"quote"`
	Rating     int    `gorm:"default:5" json:"rating"`
	Published  bool   `gorm:"default:false" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
