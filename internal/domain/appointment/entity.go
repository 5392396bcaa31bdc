package appointment

import (
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies a lifecycle change, stamping the matching timestamp.
// The caller persists the row; overlap re-validation for pending→confirmed
// happens in the usecase against the repository.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}
