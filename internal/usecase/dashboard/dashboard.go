package dashboard

// ====== Role-scoped dashboard rollups ======
//
// Every payload is recomputed from the database on each request; nothing is
// cached or denormalized. The admin view aggregates over the current month,
// the stylist view over the current ISO week.

import (
	"context"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/dto"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// NameCount ranks an entity (stylist, service) by appointment volume.
type NameCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ClientDashboard struct {
	TotalAppointments    int64  `json:"total_appointments"`
	UpcomingAppointments int64  `json:"upcoming_appointments"`
	FavoriteService      string `json:"favorite_service"`
}

type AdminDashboard struct {
	AppointmentsStats map[string]int64 `json:"appointments_stats"`
	TopStylists       []NameCount      `json:"top_stylists"`
	TopServices       []NameCount      `json:"top_services"`
	WalkInPercentage  float64          `json:"walk_in_percentage"`
}

type ReceptionistDashboard struct {
	TodayTotal           int64                     `json:"today_total"`
	TodayByStatus        map[string]int64          `json:"today_by_status"`
	PendingConfirmations []dto.AppointmentListItem `json:"pending_confirmations"`
}

type StylistDashboard struct {
	TodayCount        int64                     `json:"today_count"`
	WeekCount         int64                     `json:"week_count"`
	TodayAppointments []dto.AppointmentListItem `json:"today_appointments"`
}

// Repository is the read-only query surface the rollups are built from.
type Repository interface {
	CountByClient(ctx context.Context, clientID uint, upcomingAfter time.Time) (total, upcoming int64, err error)
	ServiceCountsByClient(ctx context.Context, clientID uint) ([]NameCount, error)
	StatusCounts(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	TopStylists(ctx context.Context, from, to time.Time, limit int) ([]NameCount, error)
	TopServices(ctx context.Context, from, to time.Time, limit int) ([]NameCount, error)
	WalkInSplit(ctx context.Context, from, to time.Time) (walkIns, total int64, err error)
	AppointmentsBetween(ctx context.Context, stylistID uint, from, to time.Time) ([]models.Appointment, error)
	PendingBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}

const topLimit = 5

type Service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

func (s *Service) ForClient(ctx context.Context, clientID uint) (*ClientDashboard, error) {
	now := time.Now().In(s.loc)

	total, upcoming, err := s.repo.CountByClient(ctx, clientID, now)
	if err != nil {
		return nil, err
	}
	perService, err := s.repo.ServiceCountsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &ClientDashboard{
		TotalAppointments:    total,
		UpcomingAppointments: upcoming,
		FavoriteService:      favoriteService(perService),
	}, nil
}

func (s *Service) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	from, to := monthBounds(time.Now().In(s.loc))

	statuses, err := s.repo.StatusCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stylists, err := s.repo.TopStylists(ctx, from, to, topLimit)
	if err != nil {
		return nil, err
	}
	services, err := s.repo.TopServices(ctx, from, to, topLimit)
	if err != nil {
		return nil, err
	}
	walkIns, total, err := s.repo.WalkInSplit(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		AppointmentsStats: statusMap(statuses),
		TopStylists:       stylists,
		TopServices:       services,
		WalkInPercentage:  walkInPercentage(walkIns, total),
	}, nil
}

func (s *Service) ForReceptionist(ctx context.Context) (*ReceptionistDashboard, error) {
	from, to := dayBounds(time.Now().In(s.loc))

	today, err := s.repo.AppointmentsBetween(ctx, 0, from, to)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.PendingBetween(ctx, from, to.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int64{}
	for _, ap := range today {
		byStatus[ap.Status]++
	}

	return &ReceptionistDashboard{
		TodayTotal:           int64(len(today)),
		TodayByStatus:        byStatus,
		PendingConfirmations: dto.ToAppointmentList(pending),
	}, nil
}

func (s *Service) ForStylist(ctx context.Context, stylistID uint) (*StylistDashboard, error) {
	now := time.Now().In(s.loc)
	dayFrom, dayTo := dayBounds(now)
	weekFrom, weekTo := weekBounds(now)

	today, err := s.repo.AppointmentsBetween(ctx, stylistID, dayFrom, dayTo)
	if err != nil {
		return nil, err
	}
	week, err := s.repo.AppointmentsBetween(ctx, stylistID, weekFrom, weekTo)
	if err != nil {
		return nil, err
	}

	return &StylistDashboard{
		TodayCount:        int64(len(today)),
		WeekCount:         int64(len(week)),
		TodayAppointments: dto.ToAppointmentList(today),
	}, nil
}

// ------- pure helpers -------

func favoriteService(counts []NameCount) string {
	var best NameCount
	for _, c := range counts {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Name
}

func walkInPercentage(walkIns, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(walkIns) / float64(total) * 100
}

func statusMap(counts []StatusCount) map[string]int64 {
	out := map[string]int64{}
	for _, c := range counts {
		out[c.Status] = c.Count
	}
	return out
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

func weekBounds(now time.Time) (time.Time, time.Time) {
	// Week starts Monday.
	offset := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func monthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
