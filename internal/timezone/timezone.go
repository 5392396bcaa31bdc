package timezone

import "time"

// Default is used when SALON_TIMEZONE is unset or invalid.
const Default = "America/Mexico_City"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location never fails: an unknown name falls back to Default.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(Default)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
