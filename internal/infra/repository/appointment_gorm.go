package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog / people
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetStylist(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var stylist models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = ?", id, string(roles.Stylist), true).
		First(&stylist).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *AppointmentGormRepository) ListStylists(
	ctx context.Context,
) ([]models.User, error) {

	var stylists []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", string(roles.Stylist), true).
		Order("name ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

// --------------------------------------------------
// Calendar reads
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListBlockedIntervals(
	ctx context.Context,
	stylistID uint,
	date string,
) ([]models.BlockedInterval, error) {

	var blocked []models.BlockedInterval
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND date = ?", stylistID, date).
		Order("start_time ASC").
		Find(&blocked).Error; err != nil {
		return nil, err
	}
	return blocked, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"stylist_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			stylistID, domain.BlockingStatuses(), start, end,
		).
		Order("start_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

// --------------------------------------------------
// Booking commit
// --------------------------------------------------

// CreateAppointment is the commit step of the booking transaction: it locks
// conflicting rows, re-checks overlap and inserts in one transaction. The
// exclusion constraint on (stylist_id, tstzrange) backstops the check, so the
// loser of a race gets slot_conflict either way, never a double booking.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"stylist_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.StylistID, domain.BlockingStatuses(), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

func (r *AppointmentGormRepository) AssertNoOverlap(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"stylist_id = ? AND id <> ? AND status IN ? AND start_time < ? AND end_time > ?",
			stylistID, excludeID, domain.BlockingStatuses(), end, start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return nil
}

// --------------------------------------------------
// State changes / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", start, end)

	// stylistID 0 means all stylists (reception calendar)
	if stylistID != 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}

	var appts []models.Appointment
	if err := q.Order("start_time ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AppointmentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
