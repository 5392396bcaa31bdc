package models

import "time"

// BlockedInterval is date-specific time off layered on top of the weekly
// template (vacation, training, a long lunch out).
type BlockedInterval struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_blocked_stylist_date" json:"stylist_id"`

	Date      string `gorm:"size:10;index:idx_blocked_stylist_date" json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`                                         // HH:MM
	EndTime   string `json:"end_time"`                                           // HH:MM
	Reason    string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
