package location

import (
	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

const DefaultAllowedRadiusMeters = 150

type CreateLocationRequest struct {
	Name                string   `json:"name"`
	Address             string   `json:"address"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	AllowedRadiusMeters *int     `json:"allowed_radius_meters,omitempty"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.AllowedRadiusMeters != nil && *r.AllowedRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_meters",
			Message: "allowed radius must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLocationRequest struct {
	Name                *string  `json:"name,omitempty"`
	Address             *string  `json:"address,omitempty"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	AllowedRadiusMeters *int     `json:"allowed_radius_meters,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.AllowedRadiusMeters != nil && *r.AllowedRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_meters",
			Message: "allowed radius must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LocationResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Address             string   `json:"address"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	AllowedRadiusMeters int      `json:"allowed_radius_meters"`
	IsActive            bool     `json:"is_active"`
}

func ToLocationResponse(l *Location) *LocationResponse {
	return &LocationResponse{
		ID:                  l.ID,
		Name:                l.Name,
		Address:             l.Address,
		Latitude:            l.Latitude,
		Longitude:           l.Longitude,
		AllowedRadiusMeters: l.AllowedRadiusMeters,
		IsActive:            l.IsActive,
	}
}
