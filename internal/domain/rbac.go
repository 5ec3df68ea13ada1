package domain

// Roles carried in the access token.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// Resources guarded by the RBAC enforcer.
const (
	ResourceAttendanceSelf = "attendance.self"
	ResourceAttendanceTeam = "attendance.team"
	ResourceDashboardSelf  = "dashboard.self"
	ResourceDashboardTeam  = "dashboard.team"
	ResourceEmployee       = "employee"
	ResourceDepartment     = "department"
	ResourceProfile        = "profile"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionDelete = "delete"
	ActionExport = "export"
)

type EnforceRequest struct {
	Subject  string `json:"subject"`
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
