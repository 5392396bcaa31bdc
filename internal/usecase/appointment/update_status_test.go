package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
)

func pendingAppointment(t *testing.T, repo *fakeRepo) *models.Appointment {
	t.Helper()
	uc := newBook(repo, nil)
	ap, err := uc.Execute(context.Background(), BookInput{
		ClientID: testClientID, ServiceID: testServiceID, StylistID: testStylistID,
		Start: nextWeekAt("10:00"),
	})
	require.NoError(t, err)
	return ap
}

func TestConfirmPendingAsReceptionist(t *testing.T) {
	repo := seededRepo()
	ap := pendingAppointment(t, repo)
	uc := NewUpdateStatus(repo, nil, time.UTC)

	got, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID,
		Status:        "confirmed",
		ActorID:       200,
		ActorRole:     roles.Receptionist,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.NotNil(t, got.ConfirmedAt)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	repo := seededRepo()
	ap := pendingAppointment(t, repo)
	uc := NewUpdateStatus(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "cancelled",
		ActorID: 200, ActorRole: roles.Admin,
	})
	require.NoError(t, err)

	for _, next := range []string{"confirmed", "completed", "cancelled", "no_show", "pending"} {
		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			AppointmentID: ap.ID, Status: next,
			ActorID: 200, ActorRole: roles.Admin,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition),
			"cancelled→%s must be rejected, got %v", next, err)
	}
}

func TestUnknownStatusValue(t *testing.T) {
	repo := seededRepo()
	ap := pendingAppointment(t, repo)
	uc := NewUpdateStatus(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "scheduled",
		ActorID: 200, ActorRole: roles.Admin,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestStylistMayOnlyTouchOwnAppointments(t *testing.T) {
	repo := seededRepo()
	repo.addStylist(testStylistID+1, "Marta")
	ap := pendingAppointment(t, repo)
	uc := NewUpdateStatus(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "confirmed",
		ActorID: testStylistID + 1, ActorRole: roles.Stylist,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound),
		"another stylist's appointment must look nonexistent")

	_, err = uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "confirmed",
		ActorID: testStylistID, ActorRole: roles.Stylist,
	})
	assert.NoError(t, err)
}

func TestClientMayOnlyCancelOwn(t *testing.T) {
	repo := seededRepo()
	ap := pendingAppointment(t, repo)
	uc := NewUpdateStatus(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "confirmed",
		ActorID: testClientID, ActorRole: roles.Client,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition),
		"clients cannot confirm")

	_, err = uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "cancelled",
		ActorID: testClientID + 5, ActorRole: roles.Client,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound),
		"someone else's appointment must look nonexistent")

	_, err = uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "cancelled",
		ActorID: testClientID, ActorRole: roles.Client,
	})
	assert.NoError(t, err)
}

// pending→confirmed re-validates the slot; a conflicting row created in
// the meantime (e.g. the calendar changed) rejects the confirmation.
func TestConfirmRevalidatesOverlap(t *testing.T) {
	repo := seededRepo()
	ap := pendingAppointment(t, repo)

	// Force a blocking row on top of the pending one, bypassing the
	// booking path the way a manual DB edit or an hours change would.
	repo.mu.Lock()
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 999, StylistID: testStylistID,
		StartTime: ap.StartTime, EndTime: ap.EndTime,
		Status: string(domain.StatusConfirmed),
	})
	repo.mu.Unlock()

	uc := NewUpdateStatus(repo, nil, time.UTC)
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: ap.ID, Status: "confirmed",
		ActorID: 200, ActorRole: roles.Admin,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}
