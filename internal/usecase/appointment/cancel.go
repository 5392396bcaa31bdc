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

// Cancel backs the DELETE endpoint: a soft cancel that keeps the row for
// history and frees the slot for the next availability query.
type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCancel(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *Cancel {
	return &Cancel{repo: repo, audit: auditor, loc: loc}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	actorRole roles.Role,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := authorize(ap, actorID, actorRole, domain.StatusCancelled); err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
