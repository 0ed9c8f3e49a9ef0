package user

import (
	"time"

	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	LocationID   *string `json:"location_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleSupervisor), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Admin, Supervisor, Employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Role         *string `json:"role,omitempty"`
	LocationID   *string `json:"location_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleSupervisor), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of Admin, Supervisor, Employee",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active or Inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserFilter struct {
	Role         *string `json:"role,omitempty"`
	Status       *string `json:"status,omitempty"`
	LocationID   *string `json:"location_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
}

func ToUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		LocationID:     u.LocationID,
		LocationName:   u.LocationName,
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		SupervisorID:   u.SupervisorID,
		Status:         string(u.Status),
		CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	LocationID     *string `json:"location_id,omitempty"`
	LocationName   *string `json:"location_name,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}
