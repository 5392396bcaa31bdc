package appointment

import (
	"testing"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC) // a Monday
}

func hm(t *testing.T, base time.Time, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return time.Date(base.Year(), base.Month(), base.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, base.Location())
}

func TestBuildCalendarNoTemplateMeansDayOff(t *testing.T) {
	cal := BuildCalendar(day(t), nil, nil, nil)
	if len(cal.Open) != 0 {
		t.Fatalf("expected no open intervals, got %v", cal.Open)
	}
}

func TestBuildCalendarInactiveTemplate(t *testing.T) {
	wh := &models.WorkingHours{StartTime: "09:00", EndTime: "17:00", Active: false}
	cal := BuildCalendar(day(t), wh, nil, nil)
	if len(cal.Open) != 0 {
		t.Fatalf("inactive weekday must yield no open intervals, got %v", cal.Open)
	}
}

func TestBuildCalendarBreakSplitsDay(t *testing.T) {
	wh := &models.WorkingHours{
		StartTime: "09:00", EndTime: "17:00",
		BreakStart: "13:00", BreakEnd: "14:00",
		Active: true,
	}
	cal := BuildCalendar(day(t), wh, nil, nil)
	if len(cal.Open) != 2 {
		t.Fatalf("expected morning+afternoon, got %v", cal.Open)
	}
	if !cal.Open[0].End.Equal(hm(t, day(t), "13:00")) {
		t.Fatalf("morning should end at break start, got %v", cal.Open[0].End)
	}
	if !cal.Open[1].Start.Equal(hm(t, day(t), "14:00")) {
		t.Fatalf("afternoon should start at break end, got %v", cal.Open[1].Start)
	}
}

func TestBuildCalendarBlockedIntervalCarvedOut(t *testing.T) {
	wh := &models.WorkingHours{StartTime: "09:00", EndTime: "17:00", Active: true}
	blocked := []models.BlockedInterval{
		{StartTime: "10:00", EndTime: "12:00"},
	}
	cal := BuildCalendar(day(t), wh, blocked, nil)
	if len(cal.Open) != 2 {
		t.Fatalf("expected split around blocked time, got %v", cal.Open)
	}
	if !cal.Open[0].End.Equal(hm(t, day(t), "10:00")) || !cal.Open[1].Start.Equal(hm(t, day(t), "12:00")) {
		t.Fatalf("blocked interval not carved out: %v", cal.Open)
	}
}

func TestBuildCalendarBusyOnlyBlockingStatuses(t *testing.T) {
	wh := &models.WorkingHours{StartTime: "09:00", EndTime: "17:00", Active: true}
	appts := []models.Appointment{
		{StartTime: hm(t, day(t), "10:00"), EndTime: hm(t, day(t), "11:00"), Status: "confirmed"},
		{StartTime: hm(t, day(t), "11:00"), EndTime: hm(t, day(t), "12:00"), Status: "cancelled"},
		{StartTime: hm(t, day(t), "09:00"), EndTime: hm(t, day(t), "09:30"), Status: "pending"},
		{StartTime: hm(t, day(t), "12:00"), EndTime: hm(t, day(t), "12:30"), Status: "no_show"},
	}
	cal := BuildCalendar(day(t), wh, nil, appts)
	if len(cal.Busy) != 2 {
		t.Fatalf("cancelled/no_show must not occupy the calendar, got %v", cal.Busy)
	}
	// sorted ascending
	if !cal.Busy[0].Start.Before(cal.Busy[1].Start) {
		t.Fatalf("busy intervals not sorted: %v", cal.Busy)
	}
}

func TestIntervalOverlapsHalfOpen(t *testing.T) {
	a := Interval{Start: hm(t, day(t), "09:00"), End: hm(t, day(t), "10:00")}
	b := Interval{Start: hm(t, day(t), "10:00"), End: hm(t, day(t), "11:00")}
	if a.Overlaps(b) {
		t.Fatal("touching intervals must not overlap")
	}
	c := Interval{Start: hm(t, day(t), "09:30"), End: hm(t, day(t), "10:30")}
	if !a.Overlaps(c) || !b.Overlaps(c) {
		t.Fatal("expected overlap")
	}
}
