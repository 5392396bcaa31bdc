package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type fakeDashRepo struct {
	total, upcoming int64
	perService      []NameCount
	statuses        []StatusCount
	topStylists     []NameCount
	topServices     []NameCount
	walkIns, all    int64
	byStylist       map[uint][]models.Appointment
	pending         []models.Appointment
}

func (f *fakeDashRepo) CountByClient(context.Context, uint, time.Time) (int64, int64, error) {
	return f.total, f.upcoming, nil
}

func (f *fakeDashRepo) ServiceCountsByClient(context.Context, uint) ([]NameCount, error) {
	return f.perService, nil
}

func (f *fakeDashRepo) StatusCounts(context.Context, time.Time, time.Time) ([]StatusCount, error) {
	return f.statuses, nil
}

func (f *fakeDashRepo) TopStylists(context.Context, time.Time, time.Time, int) ([]NameCount, error) {
	return f.topStylists, nil
}

func (f *fakeDashRepo) TopServices(context.Context, time.Time, time.Time, int) ([]NameCount, error) {
	return f.topServices, nil
}

func (f *fakeDashRepo) WalkInSplit(context.Context, time.Time, time.Time) (int64, int64, error) {
	return f.walkIns, f.all, nil
}

func (f *fakeDashRepo) AppointmentsBetween(_ context.Context, stylistID uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.byStylist[stylistID], nil
}

func (f *fakeDashRepo) PendingBetween(context.Context, time.Time, time.Time) ([]models.Appointment, error) {
	return f.pending, nil
}

var _ Repository = (*fakeDashRepo)(nil)

func TestClientDashboard(t *testing.T) {
	repo := &fakeDashRepo{
		total: 12, upcoming: 2,
		perService: []NameCount{
			{ID: 1, Name: "Corte", Count: 7},
			{ID: 2, Name: "Tinte", Count: 5},
		},
	}
	svc := NewService(repo, time.UTC)

	got, err := svc.ForClient(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalAppointments)
	assert.Equal(t, int64(2), got.UpcomingAppointments)
	assert.Equal(t, "Corte", got.FavoriteService)
}

func TestClientDashboardNoHistory(t *testing.T) {
	svc := NewService(&fakeDashRepo{}, time.UTC)

	got, err := svc.ForClient(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, got.TotalAppointments)
	assert.Empty(t, got.FavoriteService)
}

func TestAdminDashboard(t *testing.T) {
	repo := &fakeDashRepo{
		statuses: []StatusCount{
			{Status: "confirmed", Count: 8},
			{Status: "cancelled", Count: 2},
		},
		topStylists: []NameCount{{ID: 10, Name: "Sofia", Count: 6}},
		topServices: []NameCount{{ID: 1, Name: "Corte", Count: 9}},
		walkIns:     3, all: 12,
	}
	svc := NewService(repo, time.UTC)

	got, err := svc.ForAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.AppointmentsStats["confirmed"])
	assert.Equal(t, int64(2), got.AppointmentsStats["cancelled"])
	assert.Equal(t, "Sofia", got.TopStylists[0].Name)
	assert.InDelta(t, 25.0, got.WalkInPercentage, 0.001)
}

func TestReceptionistDashboard(t *testing.T) {
	stylist := models.User{Name: "Sofia"}
	service := models.Service{Name: "Corte"}
	repo := &fakeDashRepo{
		byStylist: map[uint][]models.Appointment{
			0: {
				{ID: 1, Status: "confirmed", Stylist: stylist, Service: service},
				{ID: 2, Status: "pending", Stylist: stylist, Service: service},
				{ID: 3, Status: "pending", Stylist: stylist, Service: service},
			},
		},
		pending: []models.Appointment{
			{ID: 2, Status: "pending", Stylist: stylist, Service: service},
		},
	}
	svc := NewService(repo, time.UTC)

	got, err := svc.ForReceptionist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TodayTotal)
	assert.Equal(t, int64(2), got.TodayByStatus["pending"])
	require.Len(t, got.PendingConfirmations, 1)
	assert.Equal(t, uint(2), got.PendingConfirmations[0].ID)
}

func TestStylistDashboard(t *testing.T) {
	stylist := models.User{Name: "Sofia"}
	service := models.Service{Name: "Corte"}
	repo := &fakeDashRepo{
		byStylist: map[uint][]models.Appointment{
			10: {{ID: 1, Status: "confirmed", Stylist: stylist, Service: service}},
		},
	}
	svc := NewService(repo, time.UTC)

	got, err := svc.ForStylist(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TodayCount)
	assert.Equal(t, int64(1), got.WeekCount)
	require.Len(t, got.TodayAppointments, 1)
	assert.Equal(t, "Sofia", got.TodayAppointments[0].StylistName)
}

func TestWalkInPercentage(t *testing.T) {
	assert.Zero(t, walkInPercentage(0, 0))
	assert.InDelta(t, 50.0, walkInPercentage(1, 2), 0.001)
	assert.InDelta(t, 100.0, walkInPercentage(4, 4), 0.001)
}

func TestWeekBoundsStartsMonday(t *testing.T) {
	// 2026-09-16 is a Wednesday.
	wed := time.Date(2026, 9, 16, 14, 30, 0, 0, time.UTC)
	from, to := weekBounds(wed)
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, from.AddDate(0, 0, 7), to)

	// A Monday stays put.
	from2, _ := weekBounds(from.Add(2 * time.Hour))
	assert.Equal(t, from, from2)
}
