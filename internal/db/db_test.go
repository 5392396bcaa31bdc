package db

import (
	"fmt"
	"strings"
	"testing"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
)

func TestOverlapConstraintDDL(t *testing.T) {
	// start_time/end_time are timestamptz columns, so the exclusion
	// constraint has to build tstzrange values; tsrange over timestamptz
	// arguments is rejected by Postgres and the table would be left
	// without its double-booking backstop.
	if !strings.Contains(overlapConstraintDDL, "tstzrange(start_time, end_time)") {
		t.Fatalf("constraint does not range over timestamptz columns:\n%s", overlapConstraintDDL)
	}
	if !strings.Contains(overlapConstraintDDL, "appointments_no_overlap") {
		t.Errorf("constraint name missing from DDL")
	}
	for _, status := range domain.BlockingStatuses() {
		if !strings.Contains(overlapConstraintDDL, fmt.Sprintf("'%s'", status)) {
			t.Errorf("blocking status %q missing from constraint predicate", status)
		}
	}
}
