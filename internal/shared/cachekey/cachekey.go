// Package cachekey names the Redis keys shared between features, so writers
// can invalidate what readers cache without importing each other.
package cachekey

const (
	managerDashboardPrefix = "dashboard:manager:"

	DepartmentHeadcount = "departments:headcount"
)

// ManagerDashboard is keyed by calendar day (YYYY-MM-DD).
func ManagerDashboard(day string) string {
	return managerDashboardPrefix + day
}
