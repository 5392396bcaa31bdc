package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsExclusionConflict reports whether err is a Postgres exclusion-constraint
// violation (23P01). The appointments table carries an EXCLUDE USING gist
// constraint over (stylist_id, tstzrange) so a racing insert that slips past
// the row-lock check still loses here instead of double-booking.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01"
	}
	return false
}
