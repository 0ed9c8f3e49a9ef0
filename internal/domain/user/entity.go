package user

import "time"

type Role string

const (
	RoleAdmin      Role = "Admin"      // Full access, excluded from check-in
	RoleSupervisor Role = "Supervisor" // Scoped to own location
	RoleEmployee   Role = "Employee"   // Accrues attendance records
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	LocationID   *string
	DepartmentID *string
	SupervisorID *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	LocationName   *string
	DepartmentName *string
}

// IsAdmin checks if the user has unrestricted access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if the user is a supervisor
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor
}

// CanCheckIn reports whether the user may produce attendance records.
// Admins are excluded from the attendance lifecycle entirely.
func (u *User) CanCheckIn() bool {
	return u.Role != RoleAdmin
}

// IsActive checks the employment status
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// Principal is the authenticated identity passed explicitly into service
// calls. Services derive their scoping from it instead of re-reading claims.
type Principal struct {
	UserID       string
	Role         Role
	LocationID   *string
	DepartmentID *string
}

// ScopedLocationID returns the location filter this principal is confined
// to: a Supervisor is pinned to their own location, everyone else is
// unrestricted (nil).
func (p Principal) ScopedLocationID() *string {
	if p.Role == RoleSupervisor {
		return p.LocationID
	}
	return nil
}
