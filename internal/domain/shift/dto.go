package shift

import (
	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	LocationID   string `json:"location_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GraceMinutes *int   `json:"grace_minutes,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "a valid location id is required",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM or HH:MM:SS",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM or HH:MM:SS",
		})
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           string `json:"id"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GraceMinutes int    `json:"grace_minutes"`
}

func ToShiftResponse(c *Config) *ShiftResponse {
	return &ShiftResponse{
		ID:           c.ID,
		LocationID:   c.LocationID,
		LocationName: c.LocationName,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		GraceMinutes: c.GraceMinutes,
	}
}
