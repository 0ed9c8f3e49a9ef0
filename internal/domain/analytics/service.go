package analytics

import (
	"context"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type AnalyticsService interface {
	// Summary returns the attendance picture for a date. A zero date falls
	// back to the most recent date with any activity.
	Summary(ctx context.Context, principal *user.Principal, date time.Time) (*Summary, error)

	// LateFrequency ranks employees by how often they arrive late within the
	// range. Zero range bounds default to the trailing 30 days.
	LateFrequency(ctx context.Context, principal *user.Principal, rng DateRange) ([]*LateFrequency, error)

	// AbsentTrends returns one point per day in the range, oldest first.
	// A zero To anchors at the latest date with check-in activity; a zero
	// From takes a trailing window of rng.Days days (default 7).
	AbsentTrends(ctx context.Context, principal *user.Principal, rng DateRange) ([]*AbsentTrendPoint, error)

	// ByLocation breaks a date down per active location, Supervisor-scoped.
	ByLocation(ctx context.Context, principal *user.Principal, date time.Time) ([]*GroupBreakdown, error)

	// ByDepartment breaks a date down per department.
	ByDepartment(ctx context.Context, principal *user.Principal, date time.Time) ([]*GroupBreakdown, error)
}
