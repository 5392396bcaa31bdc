package models

import "time"

// WorkingHours is the weekly template for one stylist. A weekday without a
// row (or with Active=false) means the stylist is off that day.
// Times are "HH:MM" strings interpreted in the salon timezone.
type WorkingHours struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_wh_stylist_weekday" json:"stylist_id"`

	Weekday int `gorm:"index:idx_wh_stylist_weekday" json:"weekday"`

	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
