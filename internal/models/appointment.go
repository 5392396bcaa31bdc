package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ClientID is nil for walk-ins, which carry name/phone inline instead.
	ClientID *uint `gorm:"index" json:"client_id"`
	Client   *User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	WalkInName  string `gorm:"size:100" json:"walk_in_name,omitempty"`
	WalkInPhone string `gorm:"size:20" json:"walk_in_phone,omitempty"`

	StylistID uint `gorm:"index" json:"stylist_id"`
	Stylist   User `gorm:"foreignKey:StylistID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// EndTime is derived from the service duration at commit time and never
	// resized afterwards, even if the catalog entry changes.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status   string `gorm:"size:20;default:'pending'" json:"status"`
	IsWalkIn bool   `gorm:"default:false" json:"is_walk_in"`

	CreatedBy uint   `json:"created_by"`
	Notes     string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
