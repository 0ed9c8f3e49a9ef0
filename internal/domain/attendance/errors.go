package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrAlreadyCheckedOut   = errors.New("already checked out today")
	ErrNotCheckedIn        = errors.New("not checked in yet")
	ErrMarkedAbsent        = errors.New("attendance already marked absent")
	ErrNotLocationAssigned = errors.New("no work location assigned")
	ErrLocationNotFound    = errors.New("assigned work location not found")
	ErrCheckInNotAllowed   = errors.New("role is not allowed to check in")
	ErrDuplicateRecord     = errors.New("attendance record already exists for this date")
	ErrStatusConflict      = errors.New("attendance record status changed concurrently")
)

// OutOfRangeError reports a geofence rejection along with how far outside
// the allowed radius the employee was.
type OutOfRangeError struct {
	DistanceMeters float64
	AllowedMeters  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("outside allowed radius: %.1fm away, allowed %dm", e.DistanceMeters, e.AllowedMeters)
}
