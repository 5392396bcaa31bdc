package appointment

import "time"

// ===============================
// Slot Generator
// ===============================

// Slots enumerates bookable "HH:MM" start times: walk every open interval
// from its start in step increments, keep candidates whose full duration
// fits inside the interval and touches no busy interval, and drop anything
// before notBefore (zero notBefore disables the cutoff). Output is
// ascending and deduplicated. Pure function, no side effects.
func Slots(
	cal Calendar,
	duration time.Duration,
	step time.Duration,
	notBefore time.Time,
) []string {

	if duration <= 0 || step <= 0 {
		return []string{}
	}

	slots := []string{}
	last := ""

	for _, open := range cal.Open {
		for cur := open.Start; !cur.Add(duration).After(open.End); cur = cur.Add(step) {
			if !notBefore.IsZero() && cur.Before(notBefore) {
				continue
			}

			candidate := Interval{Start: cur, End: cur.Add(duration)}
			if intersectsAny(candidate, cal.Busy) {
				continue
			}

			hm := cur.Format("15:04")
			if hm == last {
				continue
			}
			slots = append(slots, hm)
			last = hm
		}
	}

	return slots
}

func intersectsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if b.Start.After(candidate.End) || b.Start.Equal(candidate.End) {
			// busy is sorted ascending, nothing later can overlap
			break
		}
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// FitsWorkingHours reports whether [start, start+duration) lies entirely
// inside one of the calendar's open intervals. Used by the booking
// transaction's out-of-hours check.
func (cal Calendar) FitsWorkingHours(start time.Time, duration time.Duration) bool {
	want := Interval{Start: start, End: start.Add(duration)}
	for _, open := range cal.Open {
		if open.Contains(want) {
			return true
		}
	}
	return false
}
