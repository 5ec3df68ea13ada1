package attendance

// StatusCounts partitions records by status.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
}

func (c *StatusCounts) add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusAbsent:
		c.Absent++
	case StatusLate:
		c.Late++
	case StatusHalfDay:
		c.HalfDay++
	}
}

type MonthlySummary struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	StatusCounts
	TotalHours float64 `json:"total_hours"`
	// TotalDays counts days with a record, not working days in the month.
	TotalDays int `json:"total_days"`
}

// SummarizeMonth aggregates one employee's records for a month.
func SummarizeMonth(records []Attendance, month, year int) MonthlySummary {
	s := MonthlySummary{Month: month, Year: year, TotalDays: len(records)}

	var hours float64
	for _, r := range records {
		s.add(r.Status)
		hours += storedHours(r)
	}
	s.TotalHours = roundHours(hours)

	return s
}

type TeamSummary struct {
	Month          int                     `json:"month"`
	Year           int                     `json:"year"`
	TotalPresent   int                     `json:"total_present"`
	TotalAbsent    int                     `json:"total_absent"`
	TotalLate      int                     `json:"total_late"`
	TotalHalfDay   int                     `json:"total_half_day"`
	DepartmentWise map[string]StatusCounts `json:"department_wise"`
}

// SummarizeTeamMonth aggregates all employees' records for a month. Records
// without a resolvable department count toward the totals only.
func SummarizeTeamMonth(records []Attendance, month, year int) TeamSummary {
	var totals StatusCounts
	departments := make(map[string]StatusCounts)

	for _, r := range records {
		totals.add(r.Status)

		dept := r.department()
		if dept == "" {
			continue
		}
		c := departments[dept]
		c.add(r.Status)
		departments[dept] = c
	}

	return TeamSummary{
		Month:          month,
		Year:           year,
		TotalPresent:   totals.Present,
		TotalAbsent:    totals.Absent,
		TotalLate:      totals.Late,
		TotalHalfDay:   totals.HalfDay,
		DepartmentWise: departments,
	}
}

type TodayCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

// SummarizeToday counts a day's records: a record without a check-in is absent.
func SummarizeToday(records []Attendance) TodayCounts {
	c := TodayCounts{Total: len(records)}
	for _, r := range records {
		if r.CheckedIn() {
			c.Present++
		} else {
			c.Absent++
		}
		if r.Status == StatusLate {
			c.Late++
		}
	}
	return c
}
