package department

import (
	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	req := CreateDepartmentRequest{Name: r.Name}
	return req.Validate()
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToDepartmentResponse(d *Department) *DepartmentResponse {
	return &DepartmentResponse{ID: d.ID, Name: d.Name}
}
