package appointment

import (
	"context"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog / people --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListStylists(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Calendar reads --------
	GetWorkingHours(
		ctx context.Context,
		stylistID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBlockedIntervals(
		ctx context.Context,
		stylistID uint,
		date string,
	) ([]models.BlockedInterval, error)

	ListAppointmentsForDay(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Booking commit (atomic) --------
	// CreateAppointment re-checks overlap and inserts in one transaction;
	// the loser of a race gets slot_conflict.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoOverlap is the standalone re-validation used by
	// pending→confirmed; excludeID skips the appointment's own row.
	AssertNoOverlap(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- State changes / listings --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Payments --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
