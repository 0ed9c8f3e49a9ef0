package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/worksight/worksight-backend-go/internal/domain/attendance"
	"github.com/worksight/worksight-backend-go/internal/domain/auth"
	"github.com/worksight/worksight-backend-go/internal/domain/department"
	"github.com/worksight/worksight-backend-go/internal/domain/location"
	"github.com/worksight/worksight-backend-go/internal/domain/shift"
	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		BadRequest(w, fmt.Sprintf(
			"You are %.0f meters away from your work location (allowed: %d meters)",
			outOfRange.DistanceMeters, outOfRange.AllowedMeters), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, "No account registered for this email")
	case errors.Is(err, auth.ErrAdminAlreadyExists):
		Conflict(w, "An admin account already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrMarkedAbsent):
		Conflict(w, "Attendance already marked absent for today")
	case errors.Is(err, attendance.ErrNotLocationAssigned):
		BadRequest(w, "No work location assigned", nil)
	case errors.Is(err, attendance.ErrLocationNotFound):
		NotFound(w, "Assigned work location not found")
	case errors.Is(err, attendance.ErrCheckInNotAllowed):
		Forbidden(w, "Admins do not check in or out")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSupervisorNotFound):
		BadRequest(w, "Supervisor not found", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeactivateSelf):
		BadRequest(w, "Cannot deactivate your own account", nil)

	// Reference data errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrNameExists):
		Conflict(w, "Location name already exists")
	case errors.Is(err, location.ErrLocationInUse):
		Conflict(w, "Location is assigned to active employees")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is assigned to active employees")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift configuration not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "Location already has a shift configuration")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
