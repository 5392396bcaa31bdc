package appointment

import "time"

type AvailabilityQuery struct {
	Date      time.Time
	ServiceID uint
	StylistID *uint
}

type StylistAvailability struct {
	StylistID      uint     `json:"stylist_id"`
	StylistName    string   `json:"stylist_name"`
	AvailableSlots []string `json:"available_slots"`
}
