package analytics

import (
	"context"
	"time"
)

// StatusCounts are raw per-date tallies before any rate math is applied.
type StatusCounts struct {
	Present    int
	CheckedOut int
	Absent     int
	Late       int
	NotMarked  int
}

// DailyCounts pairs one date with its raw tallies.
type DailyCounts struct {
	Date   time.Time
	Counts StatusCounts
}

// EmployeeLateCounts are raw lateness tallies for one employee.
type EmployeeLateCounts struct {
	EmployeeID     string
	EmployeeName   string
	LocationName   *string
	DepartmentName *string
	TotalDays      int
	LateDays       int
}

// GroupCounts are raw per-group tallies for one date.
type GroupCounts struct {
	GroupID        string
	GroupName      string
	TotalEmployees int
	Present        int
	CheckedOut     int
	Late           int
	NotMarked      int
}

type AnalyticsRepository interface {
	// StatusCountsForDate tallies attendance records on a date, optionally
	// scoped to a location.
	StatusCountsForDate(ctx context.Context, date time.Time, locationID *string) (*StatusCounts, error)

	// DailyStatusCounts tallies attendance records per date over an
	// inclusive range, ordered by date ascending.
	DailyStatusCounts(ctx context.Context, rng DateRange, locationID *string) ([]*DailyCounts, error)

	// LatestDateWithActivity returns the most recent date holding a record
	// with status present or checked_out, or the zero time when none exist.
	LatestDateWithActivity(ctx context.Context) (time.Time, error)

	// LateCountsByEmployee tallies late vs total attended days per employee
	// over an inclusive date range.
	LateCountsByEmployee(ctx context.Context, rng DateRange, locationID *string) ([]*EmployeeLateCounts, error)

	// CountsByLocation breaks one date down per active location, optionally
	// narrowed to a single location.
	CountsByLocation(ctx context.Context, date time.Time, locationID *string) ([]*GroupCounts, error)

	// CountsByDepartment breaks one date down per department, optionally
	// scoped to a location.
	CountsByDepartment(ctx context.Context, date time.Time, locationID *string) ([]*GroupCounts, error)
}
