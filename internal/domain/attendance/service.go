package attendance

import (
	"context"
	"time"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// CheckIn records the caller's arrival at their assigned location.
	CheckIn(ctx context.Context, principal *user.Principal, req *CheckInRequest) (*CheckInResponse, error)

	// CheckOut records the caller's departure. No position is required; only
	// the check-in is geofenced.
	CheckOut(ctx context.Context, principal *user.Principal) (*CheckOutResponse, error)

	// Today returns the caller's record for the current date, or nil when
	// none exists yet.
	Today(ctx context.Context, principal *user.Principal) (*RecordResponse, error)

	// History returns the caller's records within [from, to]. Zero times
	// default to the trailing 30 days.
	History(ctx context.Context, principal *user.Principal, from, to time.Time) ([]*RecordResponse, error)

	// ListAll returns attendance across employees. Supervisors are scoped to
	// their own location regardless of the filter.
	ListAll(ctx context.Context, principal *user.Principal, filter *ListFilter) (*ListResponse, error)
}
