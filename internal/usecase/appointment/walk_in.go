package appointment

import (
	"context"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/audit"
	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type WalkInInput struct {
	ClientName  string
	ClientPhone string
	ServiceID   uint
	StylistID   uint
	CreatedBy   uint
}

// WalkIn commits an appointment for a client standing at the desk: start is
// now, status goes straight to confirmed, is_walk_in is set. The working
// hours and lead-time rules don't apply (the receptionist is the judge of
// whether the stylist can take it), but the overlap check always does.
type WalkIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewWalkIn(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *WalkIn {
	return &WalkIn{repo: repo, audit: auditor, loc: loc}
}

func (uc *WalkIn) Execute(
	ctx context.Context,
	in WalkInInput,
) (*models.Appointment, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	stylist, err := uc.repo.GetStylist(ctx, in.StylistID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	now := time.Now().In(uc.loc).Truncate(time.Minute)
	end := now.Add(time.Duration(service.DurationMin) * time.Minute)

	ap := &models.Appointment{
		WalkInName:  in.ClientName,
		WalkInPhone: in.ClientPhone,
		StylistID:   stylist.ID,
		ServiceID:   service.ID,
		StartTime:   now,
		EndTime:     end,
		Status:      string(domain.StatusConfirmed),
		ConfirmedAt: &now,
		IsWalkIn:    true,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   "walk_in_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
