package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("department name already exists")
	ErrDepartmentInUse    = errors.New("department is assigned to active employees")
)
