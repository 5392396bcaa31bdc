package appointment

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. CreateAppointment holds the mutex
// across the overlap check and the insert, mirroring the row-lock +
// exclusion-constraint atomicity of the real one.
type fakeRepo struct {
	mu sync.Mutex

	services     map[uint]models.Service
	stylists     map[uint]models.User
	workingHours map[uint]map[int]models.WorkingHours // stylist → weekday
	blocked      map[uint][]models.BlockedInterval
	appointments []models.Appointment
	payments     []models.Payment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uint]models.Service{},
		stylists:     map[uint]models.User{},
		workingHours: map[uint]map[int]models.WorkingHours{},
		blocked:      map[uint][]models.BlockedInterval{},
		nextID:       1,
	}
}

func (f *fakeRepo) addService(id uint, durationMin int, price float64) {
	f.services[id] = models.Service{ID: id, Name: "service", DurationMin: durationMin, Price: price, Active: true}
}

func (f *fakeRepo) addStylist(id uint, name string) {
	f.stylists[id] = models.User{ID: id, Name: name, Role: "stylist", Active: true}
}

func (f *fakeRepo) setHours(stylistID uint, weekday int, start, end string) {
	if f.workingHours[stylistID] == nil {
		f.workingHours[stylistID] = map[int]models.WorkingHours{}
	}
	f.workingHours[stylistID][weekday] = models.WorkingHours{
		StylistID: stylistID, Weekday: weekday,
		StartTime: start, EndTime: end, Active: true,
	}
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if svc, ok := f.services[id]; ok {
		return &svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetStylist(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st, ok := f.stylists[id]; ok {
		return &st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListStylists(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, st := range f.stylists {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, stylistID uint, weekday int) (*models.WorkingHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if wh, ok := f.workingHours[stylistID][weekday]; ok {
		return &wh, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBlockedIntervals(_ context.Context, stylistID uint, date string) ([]models.BlockedInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlockedInterval
	for _, b := range f.blocked[stylistID] {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StylistID != stylistID || !domain.Status(ap.Status).Blocking() {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.StylistID != ap.StylistID || !domain.Status(existing.Status).Blocking() {
			continue
		}
		if existing.StartTime.Before(ap.EndTime) && existing.EndTime.After(ap.StartTime) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) AssertNoOverlap(_ context.Context, stylistID uint, start, end time.Time, excludeID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.appointments {
		if existing.StylistID != stylistID || existing.ID == excludeID {
			continue
		}
		if !domain.Status(existing.Status).Blocking() {
			continue
		}
		if existing.StartTime.Before(end) && existing.EndTime.After(start) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ap := range f.appointments {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, stylistID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if stylistID != 0 && ap.StylistID != stylistID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeRepo) UpdatePayment(_ context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.payments {
		if f.payments[i].ID == p.ID {
			f.payments[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)
