package user

import "context"

type UserService interface {
	// Create registers a user. Admin only.
	Create(ctx context.Context, principal *Principal, req *CreateUserRequest) (*UserResponse, error)

	// Get returns one user. Supervisors may only read users at their own
	// location.
	Get(ctx context.Context, principal *Principal, id string) (*UserResponse, error)

	// Update changes profile or assignment fields. Admin only.
	Update(ctx context.Context, principal *Principal, id string, req *UpdateUserRequest) (*UserResponse, error)

	// Deactivate marks a user Inactive. Admin only; self-deactivation is
	// rejected.
	Deactivate(ctx context.Context, principal *Principal, id string) error

	// List returns users matching the filter, Supervisor-scoped.
	List(ctx context.Context, principal *Principal, filter *UserFilter) ([]*UserResponse, error)

	// ListSupervisors returns active supervisors.
	ListSupervisors(ctx context.Context, principal *Principal) ([]*UserResponse, error)

	// ListEmployees returns active employees, Supervisor-scoped.
	ListEmployees(ctx context.Context, principal *Principal) ([]*UserResponse, error)

	// ListTeam returns the users reporting to the given supervisor.
	// Admins may resolve any supervisor; a Supervisor only their own team.
	ListTeam(ctx context.Context, principal *Principal, supervisorID string) ([]*UserResponse, error)
}
