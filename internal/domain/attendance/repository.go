package attendance

import (
	"context"
	"time"
)

// BackfillEmployee pairs an employee with the location their placeholder
// record is pinned to.
type BackfillEmployee struct {
	EmployeeID string
	LocationID string
}

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the record for one (employee, date) pair,
	// or ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Create inserts a record. A conflicting (employee, date) pair returns
	// ErrDuplicateRecord.
	Create(ctx context.Context, rec *Record) error

	// Update persists mutable fields of an existing record, but only while
	// the stored row still has the expected status. A row that moved on
	// concurrently returns ErrStatusConflict.
	Update(ctx context.Context, rec *Record, expected Status) error

	// List returns records matching the filter plus the unpaginated total.
	List(ctx context.Context, filter *ListFilter) ([]*Record, int, error)

	// ListByEmployee returns an employee's records within [from, to], most
	// recent date first.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*Record, error)

	// BackfillNotMarked inserts not_marked records for the given employees on
	// the given date, skipping pairs that already have a record. Returns the
	// number of rows inserted.
	BackfillNotMarked(ctx context.Context, employees []BackfillEmployee, date time.Time) (int, error)

	// SweepAbsent flips every not_marked record on the date to absent and
	// returns the number of rows changed.
	SweepAbsent(ctx context.Context, date time.Time) (int, error)

	// CountByStatus counts records on a date grouped by status, optionally
	// scoped to a location.
	CountByStatus(ctx context.Context, date time.Time, locationID *string) (map[Status]int, error)
}
