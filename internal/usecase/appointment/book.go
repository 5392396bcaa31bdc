package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NovaSalonTech/salon-scheduler/internal/audit"
	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uint
	ServiceID uint
	StylistID uint
	Start     time.Time

	// Card checkout: token from the hosted widget, charged before commit.
	PaymentToken string
	PayerEmail   string
}

// ======================================================
// USE CASE
// ======================================================

// Book is the self-service booking transaction. Validation order: service
// and stylist exist, start is inside working hours, start is not in the past
// (plus lead time), then the atomic overlap-check-and-insert. Availability
// reads are optimistic; this commit is where a stale slot choice fails.
type Book struct {
	repo     domain.Repository
	charger  payments.Charger
	audit    *audit.Dispatcher
	loc      *time.Location
	lead     time.Duration
	currency string
}

func NewBook(
	repo domain.Repository,
	charger payments.Charger,
	auditor *audit.Dispatcher,
	loc *time.Location,
	lead time.Duration,
	currency string,
) *Book {
	return &Book{
		repo:     repo,
		charger:  charger,
		audit:    auditor,
		loc:      loc,
		lead:     lead,
		currency: currency,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
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

	now := time.Now().In(uc.loc)
	if start.Before(now.Add(uc.lead)) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// Payment is a precondition gate in front of the commit, not part of
	// the scheduling core. A declined charge aborts the booking.
	var pay *models.Payment
	if uc.charger != nil && in.PaymentToken != "" {
		pay, err = uc.chargeCard(ctx, in, service)
		if err != nil {
			return nil, err
		}
	}

	clientID := in.ClientID
	ap := &models.Appointment{
		ClientID:  &clientID,
		StylistID: stylist.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.StatusPending),
		CreatedBy: in.ClientID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if pay != nil {
		pay.AppointmentID = &ap.ID
		if err := uc.repo.UpdatePayment(ctx, pay); err != nil {
			// The booking stands; the payment row just lost its link.
			uc.audit.Dispatch(audit.Event{
				UserID:   &in.ClientID,
				Action:   "payment_link_failed",
				Entity:   "payment",
				EntityID: &pay.ID,
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *Book) chargeCard(
	ctx context.Context,
	in BookInput,
	service *models.Service,
) (*models.Payment, error) {

	receipt, err := uc.charger.Charge(
		ctx,
		in.PaymentToken,
		service.Price,
		in.PayerEmail,
		fmt.Sprintf("Booking: %s", service.Name),
	)
	if err != nil {
		return nil, err
	}

	pay := &models.Payment{
		Reference:         uuid.NewString(),
		Amount:            service.Price,
		Currency:          uc.currency,
		ProviderPaymentID: receipt.ProviderPaymentID,
		Status:            receipt.Status,
		PayerEmail:        in.PayerEmail,
	}
	if err := uc.repo.CreatePayment(ctx, pay); err != nil {
		return nil, err
	}

	return pay, nil
}
