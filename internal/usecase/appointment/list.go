package appointment

import (
	"context"
	"time"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/dto"
)

// ListByDate feeds the reception and stylist day views. stylistID 0 means
// every stylist.
type ListByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListByDate(repo domain.Repository, loc *time.Location) *ListByDate {
	return &ListByDate{repo: repo, loc: loc}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]dto.AppointmentListItem, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.ToAppointmentList(appointments), nil
}

// ListByMonth feeds the month calendar.
type ListByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListByMonth(repo domain.Repository, loc *time.Location) *ListByMonth {
	return &ListByMonth{repo: repo, loc: loc}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	stylistID uint,
	year int,
	month int,
) ([]dto.AppointmentListItem, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	return dto.ToAppointmentList(appointments), nil
}
