package appointment

import (
	"context"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/audit"
	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type CreateStaffInput struct {
	ClientID  uint
	ServiceID uint
	StylistID uint
	Start     time.Time
	CreatedBy uint
	Notes     string
}

// CreateStaff is the front-desk booking: an admin or receptionist books on
// behalf of an explicit client. It commits directly as confirmed and skips
// the lead-time rule (the desk may backfill), but keeps the working-hours
// and overlap checks.
type CreateStaff struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateStaff(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *CreateStaff {
	return &CreateStaff{repo: repo, audit: auditor, loc: loc}
}

func (uc *CreateStaff) Execute(
	ctx context.Context,
	in CreateStaffInput,
) (*models.Appointment, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	start := in.Start.In(uc.loc)
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	cal, err := CalendarFor(ctx, uc.repo, stylist.ID, start)
	if err != nil {
		return nil, err
	}
	if !cal.FitsWorkingHours(start, end.Sub(start)) {
		return nil, httperr.ErrBusiness(httperr.CodeOutOfHours)
	}

	clientID := in.ClientID
	now := time.Now().In(uc.loc)
	ap := &models.Appointment{
		ClientID:    &clientID,
		StylistID:   stylist.ID,
		ServiceID:   service.ID,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.StatusConfirmed),
		ConfirmedAt: &now,
		CreatedBy:   in.CreatedBy,
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
