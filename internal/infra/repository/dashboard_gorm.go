package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/usecase/dashboard"
)

// DashboardGormRepository serves the read-only aggregate queries behind the
// role dashboards. All aggregation happens in SQL; Go only reshapes rows.
type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) CountByClient(
	ctx context.Context,
	clientID uint,
	upcomingAfter time.Time,
) (int64, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var upcoming int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND start_time > ? AND status IN ?",
			clientID, upcomingAfter, []string{"pending", "confirmed"},
		).
		Count(&upcoming).Error; err != nil {
		return 0, 0, err
	}

	return total, upcoming, nil
}

func (r *DashboardGormRepository) ServiceCountsByClient(
	ctx context.Context,
	clientID uint,
) ([]dashboard.NameCount, error) {

	var out []dashboard.NameCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, COUNT(*) AS count
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.client_id = ? AND a.status <> 'cancelled'
		GROUP BY s.id, s.name
		ORDER BY count DESC
	`, clientID).Scan(&out).Error
	return out, err
}

func (r *DashboardGormRepository) StatusCounts(
	ctx context.Context,
	from, to time.Time,
) ([]dashboard.StatusCount, error) {

	var out []dashboard.StatusCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM appointments
		WHERE start_time >= ? AND start_time < ?
		GROUP BY status
	`, from, to).Scan(&out).Error
	return out, err
}

func (r *DashboardGormRepository) TopStylists(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]dashboard.NameCount, error) {

	var out []dashboard.NameCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.name, COUNT(*) AS count
		FROM appointments a
		JOIN users u ON u.id = a.stylist_id
		WHERE a.start_time >= ? AND a.start_time < ? AND a.status <> 'cancelled'
		GROUP BY u.id, u.name
		ORDER BY count DESC
		LIMIT ?
	`, from, to, limit).Scan(&out).Error
	return out, err
}

func (r *DashboardGormRepository) TopServices(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]dashboard.NameCount, error) {

	var out []dashboard.NameCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, COUNT(*) AS count
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.start_time >= ? AND a.start_time < ? AND a.status <> 'cancelled'
		GROUP BY s.id, s.name
		ORDER BY count DESC
		LIMIT ?
	`, from, to, limit).Scan(&out).Error
	return out, err
}

func (r *DashboardGormRepository) WalkInSplit(
	ctx context.Context,
	from, to time.Time,
) (int64, int64, error) {

	var row struct {
		WalkIns int64
		Total   int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN is_walk_in THEN 1 ELSE 0 END), 0) AS walk_ins,
			COUNT(*) AS total
		FROM appointments
		WHERE start_time >= ? AND start_time < ? AND status <> 'cancelled'
	`, from, to).Scan(&row).Error
	return row.WalkIns, row.Total, err
}

func (r *DashboardGormRepository) AppointmentsBetween(
	ctx context.Context,
	stylistID uint,
	from, to time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", from, to)

	if stylistID != 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}

	var appts []models.Appointment
	if err := q.Order("start_time ASC").Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *DashboardGormRepository) PendingBetween(
	ctx context.Context,
	from, to time.Time,
) ([]models.Appointment, error) {

	var appts []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Stylist").
		Preload("Service").
		Where("status = ? AND start_time >= ? AND start_time < ?", "pending", from, to).
		Order("start_time ASC").
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

var _ dashboard.Repository = (*DashboardGormRepository)(nil)
