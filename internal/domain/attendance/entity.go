package attendance

import "time"

type Status string

const (
	StatusNotMarked  Status = "not_marked"
	StatusPresent    Status = "present"
	StatusCheckedOut Status = "checked_out"
	StatusAbsent     Status = "absent"
)

// Record is one employee's attendance state for a single calendar date.
// At most one record exists per (employee, date) pair; EmployeeID,
// LocationID and Date are immutable once the record is created.
type Record struct {
	ID             string
	EmployeeID     string
	LocationID     string
	Date           time.Time
	Status         Status
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	CheckInLat     float64
	CheckInLon     float64
	DistanceMeters *float64
	IsLate         bool
	LateMinutes    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	EmployeeName   string
	LocationName   *string
	DepartmentID   *string
	DepartmentName *string
}

func (r *Record) IsCheckedIn() bool {
	return r.Status == StatusPresent
}

func (r *Record) IsFinal() bool {
	return r.Status == StatusCheckedOut || r.Status == StatusAbsent
}
