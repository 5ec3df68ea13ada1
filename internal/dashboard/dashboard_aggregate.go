package dashboard

import (
	"time"

	"go-attendo/internal/attendance"
)

const trendDays = 7

// BuildTodayStats measures today's records against the whole roster: anyone
// without a check-in, including employees with no record at all, is absent.
func BuildTodayStats(rosterSize int, today []attendance.Attendance) TodayStats {
	var s TodayStats
	for _, r := range today {
		if r.CheckedIn() {
			s.Present++
		}
		if r.Status == attendance.StatusLate {
			s.Late++
		}
	}
	s.Absent = rosterSize - s.Present
	if s.Absent < 0 {
		s.Absent = 0
	}
	return s
}

// BuildWeeklyTrend returns one point per day from today-6 through today,
// oldest first.
func BuildWeeklyTrend(records []attendance.Attendance, today time.Time, loc *time.Location) []TrendPoint {
	out := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		start, end := attendance.DayBounds(day, loc)

		p := TrendPoint{Date: attendance.FormatDate(start, loc)}
		for _, r := range records {
			if r.AttendanceDate.Before(start) || r.AttendanceDate.After(end) {
				continue
			}
			switch r.Status {
			case attendance.StatusPresent, attendance.StatusLate:
				p.Present++
			case attendance.StatusAbsent:
				p.Absent++
			}
		}
		out = append(out, p)
	}
	return out
}

// BuildDepartmentStats buckets today's records by department. Roster
// departments with no record today are reported fully absent.
func BuildDepartmentStats(today []attendance.Attendance, headcounts map[string]int) map[string]DepartmentStats {
	out := make(map[string]DepartmentStats)
	for _, r := range today {
		if r.Employee == nil || r.Employee.Department == "" {
			continue
		}
		d := out[r.Employee.Department]
		d.Total++
		if r.CheckedIn() {
			d.Present++
			if r.Status == attendance.StatusLate {
				d.Late++
			}
		} else {
			d.Absent++
		}
		out[r.Employee.Department] = d
	}

	for name, n := range headcounts {
		if _, ok := out[name]; ok {
			continue
		}
		out[name] = DepartmentStats{Absent: n, Total: n}
	}
	return out
}

// AbsentEmployees lists employees whose record for today has no check-in.
func AbsentEmployees(today []attendance.Attendance) []AbsentEmployee {
	out := make([]AbsentEmployee, 0)
	for _, r := range today {
		if r.CheckedIn() || r.Employee == nil {
			continue
		}
		out = append(out, AbsentEmployee{
			ID:           r.Employee.ID.String(),
			Name:         r.Employee.FullName,
			EmployeeCode: r.Employee.EmployeeCode,
			Department:   r.Employee.Department,
		})
	}
	return out
}

// BuildMonthStats counts a month of one employee's records. Half days are
// not reported on the dashboard.
func BuildMonthStats(records []attendance.Attendance, month, year int) MonthStats {
	s := attendance.SummarizeMonth(records, month, year)
	return MonthStats{
		Present:    s.Present,
		Absent:     s.Absent,
		Late:       s.Late,
		TotalHours: s.TotalHours,
	}
}
