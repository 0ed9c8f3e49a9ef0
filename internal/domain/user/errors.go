package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrSupervisorNotFound     = errors.New("supervisor not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeactivateSelf   = errors.New("cannot deactivate your own account")
)
