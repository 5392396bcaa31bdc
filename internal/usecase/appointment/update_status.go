package appointment

import (
	"context"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/audit"
	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
)

type UpdateStatusInput struct {
	AppointmentID uint
	Status        string

	ActorID   uint
	ActorRole roles.Role
}

// UpdateStatus drives the lifecycle endpoint. Staff may touch any
// appointment, a stylist only their own, a client only their own and only to
// cancel. Confirming a pending appointment re-validates the overlap in case
// the calendar changed underneath it.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateStatus(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: auditor, loc: loc}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	to, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := authorize(ap, in.ActorID, in.ActorRole, to); err != nil {
		return nil, err
	}

	if to == domain.StatusConfirmed {
		if err := uc.repo.AssertNoOverlap(
			ctx, ap.StylistID, ap.StartTime, ap.EndTime, ap.ID,
		); err != nil {
			return nil, err
		}
	}

	now := time.Now().In(uc.loc)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func authorize(ap *models.Appointment, actorID uint, role roles.Role, to domain.Status) error {
	switch role {
	case roles.Admin, roles.Receptionist:
		return nil
	case roles.Stylist:
		if ap.StylistID != actorID {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil
	case roles.Client:
		if ap.ClientID == nil || *ap.ClientID != actorID {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		if to != domain.StatusCancelled {
			return httperr.ErrBusiness(httperr.CodeInvalidTransition)
		}
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}
