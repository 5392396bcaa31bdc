package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

// GetAvailability answers the availability query: per eligible stylist, the
// ordered "HH:MM" start times on the requested date at which the service's
// full duration fits. Reads run at plain read consistency; a stale answer is
// re-validated at commit time by the booking transaction.
type GetAvailability struct {
	repo domain.Repository
	step time.Duration
	lead time.Duration
	loc  *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	step time.Duration,
	lead time.Duration,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{repo: repo, step: step, lead: lead, loc: loc}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	q domain.AvailabilityQuery,
) ([]domain.StylistAvailability, error) {

	service, err := uc.repo.GetService(ctx, q.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	var stylists []models.User
	if q.StylistID != nil {
		stylist, err := uc.repo.GetStylist(ctx, *q.StylistID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		stylists = []models.User{*stylist}
	} else {
		stylists, err = uc.repo.ListStylists(ctx)
		if err != nil {
			return nil, err
		}
	}

	date := q.Date.In(uc.loc)
	duration := time.Duration(service.DurationMin) * time.Minute

	// Candidates on today's date start no earlier than now + lead time.
	var notBefore time.Time
	now := time.Now().In(uc.loc)
	if sameDay(date, now) {
		notBefore = now.Add(uc.lead)
	}

	out := make([]domain.StylistAvailability, 0, len(stylists))
	for _, stylist := range stylists {
		slots, err := uc.slotsFor(ctx, stylist.ID, date, duration, notBefore)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.StylistAvailability{
			StylistID:      stylist.ID,
			StylistName:    stylist.Name,
			AvailableSlots: slots,
		})
	}

	return out, nil
}

func (uc *GetAvailability) slotsFor(
	ctx context.Context,
	stylistID uint,
	date time.Time,
	duration time.Duration,
	notBefore time.Time,
) ([]string, error) {

	cal, err := CalendarFor(ctx, uc.repo, stylistID, date)
	if err != nil {
		return nil, err
	}

	return domain.Slots(cal, duration, uc.step, notBefore), nil
}

// CalendarFor assembles the read-only calendar for one (stylist, date):
// template row for the weekday (a missing row is a day off), date-specific
// blocked intervals, and that day's blocking appointments.
func CalendarFor(
	ctx context.Context,
	repo domain.Repository,
	stylistID uint,
	date time.Time,
) (domain.Calendar, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	wh, err := repo.GetWorkingHours(ctx, stylistID, int(date.Weekday()))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Calendar{}, err
		}
		wh = nil
	}

	blocked, err := repo.ListBlockedIntervals(ctx, stylistID, dayStart.Format("2006-01-02"))
	if err != nil {
		return domain.Calendar{}, err
	}

	appts, err := repo.ListAppointmentsForDay(ctx, stylistID, dayStart, dayEnd)
	if err != nil {
		return domain.Calendar{}, err
	}

	return domain.BuildCalendar(dayStart, wh, blocked, appts), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
