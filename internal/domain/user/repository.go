package user

import "context"

// UserRepository defines data access for the workforce directory.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, id string, req *UpdateUserRequest) error
	Deactivate(ctx context.Context, id string) error

	// List retrieves users filtered by role/location/department.
	List(ctx context.Context, filter *UserFilter) ([]*User, error)

	// ListActiveEmployees returns Active users with role Employee,
	// optionally confined to one location. Employees without an assigned
	// location are included; reconciliation skips them itself.
	ListActiveEmployees(ctx context.Context, locationID *string) ([]*User, error)

	// ListBySupervisor resolves the reverse edge of the optional
	// supervisor reference: the employees reporting to supervisorID.
	ListBySupervisor(ctx context.Context, supervisorID string) ([]*User, error)

	// CountActiveEmployees counts eligible employees for attendance-rate
	// denominators, optionally scoped by location and/or department.
	CountActiveEmployees(ctx context.Context, locationID, departmentID *string) (int, error)

	CountByRole(ctx context.Context, role Role, locationID *string) (int, error)
}
