package validators

import "regexp"

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,18}$`)

// IsPhoneValid accepts the loose international formats the walk-in form
// sends; it is a sanity check, not full E.164 validation.
func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}
