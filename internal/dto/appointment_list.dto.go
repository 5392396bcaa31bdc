package dto

import (
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type AppointmentListItem struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	IsWalkIn    bool      `json:"is_walk_in"`
	ClientName  string    `json:"client_name"`
	StylistName string    `json:"stylist_name"`
	ServiceName string    `json:"service_name"`
}

func ToAppointmentList(appointments []models.Appointment) []AppointmentListItem {
	out := make([]AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		name := ap.WalkInName
		if ap.Client != nil {
			name = ap.Client.Name
		}
		out = append(out, AppointmentListItem{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			IsWalkIn:    ap.IsWalkIn,
			ClientName:  name,
			StylistName: ap.Stylist.Name,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
