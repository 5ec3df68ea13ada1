package attendance

// PeriodQuery selects a calendar month. Both fields are optional on history
// endpoints and default to the current month on summaries.
type PeriodQuery struct {
	Month string `form:"month"`
	Year  string `form:"year"`
}

type ListQuery struct {
	EmployeeCode string `form:"employee_id"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	Status       string `form:"status"`
	Page         int    `form:"page,default=1" binding:"min=1,max=100000"`
	PageSize     int    `form:"page_size,default=50" binding:"min=1,max=500"`
}

type ExportQuery struct {
	EmployeeCode string `form:"employee_id"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	Format       string `form:"format,default=csv"`
}

type EmployeeSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department,omitempty"`
}

type AttendanceResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	CheckIn    *string          `json:"check_in_time,omitempty"`
	CheckOut   *string          `json:"check_out_time,omitempty"`
	TotalHours float64          `json:"total_hours"`
	Status     Status           `json:"status"`
	Employee   *EmployeeSummary `json:"employee,omitempty"`
}

type TodayResponse struct {
	CheckedIn  bool     `json:"checked_in"`
	CheckedOut bool     `json:"checked_out"`
	CheckIn    *string  `json:"check_in_time,omitempty"`
	CheckOut   *string  `json:"check_out_time,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
	Status     Status   `json:"status"`
}

type TodayStatusResponse struct {
	Date string `json:"date"`
	TodayCounts
	Attendance []AttendanceResponse `json:"attendance"`
}

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
