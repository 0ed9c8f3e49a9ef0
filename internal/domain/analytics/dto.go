package analytics

import "time"

// Summary is the attendance picture for one date.
type Summary struct {
	Date             string  `json:"date"`
	TotalEmployees   int     `json:"total_employees"`
	TotalSupervisors int     `json:"total_supervisors"`
	TotalLocations   int     `json:"total_locations"`
	TodayPresent     int     `json:"today_present"`
	TodayAbsent      int     `json:"today_absent"`
	TodayLate        int     `json:"today_late"`
	TodayCheckedOut  int     `json:"today_checked_out"`
	TodayNotMarked   int     `json:"today_not_marked"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

// LateFrequency is one employee's lateness ratio over a date range.
type LateFrequency struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	LocationName   *string `json:"location_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	TotalDays      int     `json:"total_days"`
	LateDays       int     `json:"late_days"`
	LateRate       float64 `json:"late_rate"`
}

// AbsentTrendPoint is the derived absence count for one date.
type AbsentTrendPoint struct {
	Date        string `json:"date"`
	AbsentCount int    `json:"absent_count"`
}

// GroupBreakdown is attendance aggregated over one location or department.
type GroupBreakdown struct {
	GroupID        string  `json:"group_id"`
	GroupName      string  `json:"group_name"`
	TotalEmployees int     `json:"total_employees"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// DateRange bounds an analytics query. From and To are inclusive dates.
// Days is an alternative to From: a trailing window of that many calendar
// days ending at To, used when From is zero.
type DateRange struct {
	From time.Time
	To   time.Time
	Days int
}
