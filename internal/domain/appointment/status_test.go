package appointment

import (
	"testing"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

func TestLifecycleTable(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusNoShow, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Fatalf("%s→%s should be allowed: %v", tc.from, tc.to, err)
		}
		if !tc.ok {
			if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
				t.Fatalf("%s→%s should be invalid_transition, got %v", tc.from, tc.to, err)
			}
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Transition(ap, StatusConfirmed, now); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatal("confirmed_at not stamped")
	}

	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("completed_at not stamped")
	}
}

func TestCancelCancelledIsInvalidTransition(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPending)}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	firstStamp := ap.CancelledAt

	err := Cancel(ap, now.Add(time.Hour))
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("second cancel must be invalid_transition, got %v", err)
	}
	if ap.CancelledAt != firstStamp {
		t.Fatal("failed transition must not mutate the appointment")
	}
}

func TestParseStatus(t *testing.T) {
	if _, ok := ParseStatus("confirmed"); !ok {
		t.Fatal("confirmed should parse")
	}
	if _, ok := ParseStatus("scheduled"); ok {
		t.Fatal("unknown status should not parse")
	}
}

func TestBlockingStatuses(t *testing.T) {
	if !StatusPending.Blocking() || !StatusConfirmed.Blocking() || !StatusCompleted.Blocking() {
		t.Fatal("pending/confirmed/completed occupy the calendar")
	}
	if StatusCancelled.Blocking() || StatusNoShow.Blocking() {
		t.Fatal("cancelled/no_show must free the slot")
	}
	if len(BlockingStatuses()) != 3 {
		t.Fatal("BlockingStatuses out of sync")
	}
}
