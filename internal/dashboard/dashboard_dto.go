package dashboard

import "go-attendo/internal/attendance"

type TodayStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

type DepartmentStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

type AbsentEmployee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department,omitempty"`
}

type ManagerDashboard struct {
	Date            string                     `json:"date"`
	TotalEmployees  int                        `json:"total_employees"`
	TodayStats      TodayStats                 `json:"today_stats"`
	AbsentToday     []AbsentEmployee           `json:"absent_employees_today"`
	WeeklyTrend     []TrendPoint               `json:"weekly_trend"`
	DepartmentStats map[string]DepartmentStats `json:"department_stats"`
}

type TodayStatus struct {
	CheckedIn  bool              `json:"checked_in"`
	CheckedOut bool              `json:"checked_out"`
	CheckIn    *string           `json:"check_in_time,omitempty"`
	CheckOut   *string           `json:"check_out_time,omitempty"`
	Status     attendance.Status `json:"status"`
}

type MonthStats struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	TotalHours float64 `json:"total_hours"`
}

type RecentAttendance struct {
	Date       string            `json:"date"`
	CheckIn    *string           `json:"check_in_time,omitempty"`
	CheckOut   *string           `json:"check_out_time,omitempty"`
	Status     attendance.Status `json:"status"`
	TotalHours float64           `json:"total_hours"`
}

type EmployeeDashboard struct {
	TodayStatus TodayStatus        `json:"today_status"`
	MonthStats  MonthStats         `json:"month_stats"`
	Recent      []RecentAttendance `json:"recent_attendance"`
}
