package attendance

import (
	"time"

	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInResponse struct {
	Record         *RecordResponse `json:"record"`
	Message        string          `json:"message"`
	DistanceMeters float64         `json:"distance_meters"`
}

type CheckOutResponse struct {
	Record  *RecordResponse `json:"record"`
	Message string          `json:"message"`
}

type RecordResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   string   `json:"employee_name,omitempty"`
	Date           string   `json:"date"`
	Status         string   `json:"status"`
	CheckInTime    *string  `json:"check_in_time"`
	CheckOutTime   *string  `json:"check_out_time"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	IsLate         bool     `json:"is_late"`
	LateMinutes    int      `json:"late_minutes"`
	LocationName   *string  `json:"location_name,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
}

// ListFilter narrows attendance listings. Zero-valued fields are ignored.
type ListFilter struct {
	EmployeeID   *string
	LocationID   *string
	DepartmentID *string
	Status       *Status
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         int
	PageSize     int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type ListResponse struct {
	Records    []*RecordResponse `json:"records"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func ToRecordResponse(rec *Record) *RecordResponse {
	resp := &RecordResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		Date:           rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
		DistanceMeters: rec.DistanceMeters,
		IsLate:         rec.IsLate,
		LateMinutes:    rec.LateMinutes,
		LocationName:   rec.LocationName,
		DepartmentName: rec.DepartmentName,
	}
	if rec.CheckInTime != nil {
		s := rec.CheckInTime.UTC().Format(time.RFC3339)
		resp.CheckInTime = &s
	}
	if rec.CheckOutTime != nil {
		s := rec.CheckOutTime.UTC().Format(time.RFC3339)
		resp.CheckOutTime = &s
	}
	return resp
}
