package appointment

import (
	"sort"
	"time"

	"github.com/NovaSalonTech/salon-scheduler/internal/models"
)

// ===============================
// Calendar Model
// ===============================

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && iv.End.After(o.Start)
}

func (iv Interval) Contains(o Interval) bool {
	return !o.Start.Before(iv.Start) && !o.End.After(iv.End)
}

func (iv Interval) valid() bool {
	return iv.Start.Before(iv.End)
}

// Calendar is the per-request read model for one (stylist, date) pair:
// the open working intervals with blocked time already carved out, plus the
// busy intervals occupied by blocking appointments that day.
type Calendar struct {
	Open []Interval
	Busy []Interval
}

// BuildCalendar assembles the calendar for the day containing date.
// wh may be nil (no template for that weekday): the stylist is simply off,
// which yields zero open intervals, not an error.
func BuildCalendar(
	date time.Time,
	wh *models.WorkingHours,
	blocked []models.BlockedInterval,
	appointments []models.Appointment,
) Calendar {

	var cal Calendar

	if wh != nil && wh.Active && wh.StartTime != "" && wh.EndTime != "" {
		cal.Open = templateIntervals(date, wh)
	}

	for _, b := range blocked {
		cut := Interval{
			Start: atClock(date, b.StartTime),
			End:   atClock(date, b.EndTime),
		}
		if cut.valid() {
			cal.Open = subtract(cal.Open, cut)
		}
	}

	for _, ap := range appointments {
		if !Status(ap.Status).Blocking() {
			continue
		}
		cal.Busy = append(cal.Busy, Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	sort.Slice(cal.Busy, func(i, j int) bool {
		return cal.Busy[i].Start.Before(cal.Busy[j].Start)
	})

	return cal
}

// templateIntervals expands the weekly template row into concrete intervals
// on the given date: one span, or two when a break splits the day.
func templateIntervals(date time.Time, wh *models.WorkingHours) []Interval {
	day := Interval{
		Start: atClock(date, wh.StartTime),
		End:   atClock(date, wh.EndTime),
	}
	if !day.valid() {
		return nil
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		br := Interval{
			Start: atClock(date, wh.BreakStart),
			End:   atClock(date, wh.BreakEnd),
		}
		if br.valid() {
			return subtract([]Interval{day}, br)
		}
	}

	return []Interval{day}
}

// subtract removes cut from every interval, splitting where needed.
func subtract(intervals []Interval, cut Interval) []Interval {
	var out []Interval
	for _, iv := range intervals {
		if !iv.Overlaps(cut) {
			out = append(out, iv)
			continue
		}
		if iv.Start.Before(cut.Start) {
			out = append(out, Interval{Start: iv.Start, End: cut.Start})
		}
		if cut.End.Before(iv.End) {
			out = append(out, Interval{Start: cut.End, End: iv.End})
		}
	}
	return out
}

// atClock anchors an "HH:MM" clock string onto the calendar day of date,
// in date's location. A malformed string collapses to midnight, which the
// surrounding validity checks then discard.
func atClock(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
