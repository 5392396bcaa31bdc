package httperr

import "errors"

// Recoverable domain failures, surfaced to the caller as 4xx with a
// machine-readable code. Anything else bubbling out of a usecase is a 5xx.
const (
	CodeNotFound          = "not_found"
	CodeOutOfHours        = "out_of_hours"
	CodeSlotConflict      = "slot_conflict"
	CodeInvalidTransition = "invalid_transition"
	CodePastDate          = "past_date"
	CodePaymentDeclined   = "payment_declined"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" when err is not a BusinessError.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
