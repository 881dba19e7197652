package user

type Permission string

const (
	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"

	// Client Management
	PermissionClientViewAll Permission = "client.view_all"
	PermissionClientCreate  Permission = "client.create"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeCreate  Permission = "employee.create"

	// Attendance Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Reports
	PermissionReportsExport Permission = "reports.export"

	// Record Store
	PermissionDataRefresh Permission = "data.refresh"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionDashboardView,
		PermissionClientViewAll,
		PermissionClientCreate,
		PermissionEmployeeViewAll,
		PermissionEmployeeCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceCreate,
		PermissionAttendanceManage,
		PermissionReportsExport,
		PermissionDataRefresh,
	},
	RoleManager: {
		PermissionDashboardView,
		PermissionClientViewAll,
		PermissionClientCreate,
		PermissionEmployeeViewAll,
		PermissionEmployeeCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceCreate,
		PermissionDataRefresh,
	},
	RoleEmployee: {
		PermissionDashboardView,
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
