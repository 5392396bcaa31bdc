package roles

import "fmt"

// Role is a closed set. Anything outside it is rejected at parse time
// instead of silently falling back to the least-privileged menu.
type Role string

const (
	Client       Role = "client"
	Admin        Role = "admin"
	Receptionist Role = "receptionist"
	Stylist      Role = "stylist"
)

func Parse(s string) (Role, error) {
	switch Role(s) {
	case Client, Admin, Receptionist, Stylist:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Staff can operate the front desk: create appointments for any client,
// register walk-ins and drive the reception calendar.
func (r Role) Staff() bool {
	switch r {
	case Admin, Receptionist:
		return true
	case Client, Stylist:
		return false
	}
	return false
}

// ManagesCatalog gates service CRUD, photo uploads and user management.
func (r Role) ManagesCatalog() bool {
	return r == Admin
}

// ModeratesStatus gates confirm/complete/no_show transitions. Clients can
// only cancel their own appointments.
func (r Role) ModeratesStatus() bool {
	switch r {
	case Admin, Receptionist, Stylist:
		return true
	case Client:
		return false
	}
	return false
}
