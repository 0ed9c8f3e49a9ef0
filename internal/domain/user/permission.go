package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance
	PermissionAttendanceCheckIn Permission = "attendance.checkin"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Analytics
	PermissionAnalyticsView Permission = "analytics.view"

	// Directory (locations, departments, shifts)
	PermissionDirectoryView   Permission = "directory.view"
	PermissionDirectoryManage Permission = "directory.manage"

	// User Management
	PermissionUserView   Permission = "user.view"
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewAll,
		PermissionAnalyticsView,
		PermissionDirectoryView,
		PermissionDirectoryManage,
		PermissionUserView,
		PermissionUserManage,
	},
	RoleSupervisor: {
		// Scoped to own location by the services
		PermissionViewOwnProfile,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAnalyticsView,
		PermissionDirectoryView,
		PermissionUserView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceCheckIn,
		PermissionAttendanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
