package session

// Role is the cosmetic role a browser session switches between. It selects
// which views and write endpoints are offered; it is not an identity.
type Role string

const (
	RoleHR       Role = "hr"       // HR staff - manages every ledger
	RoleEmployee Role = "employee" // Self-service clock-in and own requests
)

var RoleValues = []string{string(RoleHR), string(RoleEmployee)}

type Permission string

const (
	// Self service
	PermissionAttendanceClock Permission = "attendance.clock"
	PermissionLeaveCreate     Permission = "leave.create"
	PermissionViewOwn         Permission = "profile.view_own"

	// HR management
	PermissionEmployeeManage   Permission = "employee.manage"
	PermissionAttendanceManage Permission = "attendance.manage"
	PermissionShiftManage      Permission = "shift.manage"
	PermissionAdjustmentManage Permission = "adjustment.manage"
	PermissionPayrollView      Permission = "payroll.view"
	PermissionLeaveApprove     Permission = "leave.approve"
	PermissionDocumentManage   Permission = "document.manage"
	PermissionCareerManage     Permission = "career.manage"
	PermissionMasterManage     Permission = "master.manage"
	PermissionSettingsManage   Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleHR: {
		PermissionAttendanceClock,
		PermissionLeaveCreate,
		PermissionViewOwn,
		PermissionEmployeeManage,
		PermissionAttendanceManage,
		PermissionShiftManage,
		PermissionAdjustmentManage,
		PermissionPayrollView,
		PermissionLeaveApprove,
		PermissionDocumentManage,
		PermissionCareerManage,
		PermissionMasterManage,
		PermissionSettingsManage,
	},
	RoleEmployee: {
		PermissionAttendanceClock,
		PermissionLeaveCreate,
		PermissionViewOwn,
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
