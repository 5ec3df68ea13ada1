package attendance

import "time"

const (
	lateAfterHour   = 9
	lateAfterMinute = 0

	DateLayout = "2006-01-02"
)

func zone(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// DayBounds returns the first and last millisecond of t's calendar day in loc.
func DayBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	loc = zone(loc)
	local := t.In(loc)
	y, m, d := local.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// StartOfDay is the AttendanceDate value for the day containing t.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	start, _ := DayBounds(t, loc)
	return start
}

// MonthBounds returns the inclusive window of a calendar month in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	loc = zone(loc)
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := start.AddDate(0, 1, -1)
	_, end = DayBounds(last, loc)
	return start, end
}

// ParseDate reads a YYYY-MM-DD value as a calendar day in loc.
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, v, zone(loc))
}

func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(zone(loc)).Format(DateLayout)
}

// IsLate reports whether a check-in at t is after 09:00 local time.
// Seconds are ignored, so 09:00:59 is still on time.
func IsLate(t time.Time, loc *time.Location) bool {
	local := t.In(zone(loc))
	return local.Hour() > lateAfterHour ||
		(local.Hour() == lateAfterHour && local.Minute() > lateAfterMinute)
}

// StatusAt classifies a check-in made at t.
func StatusAt(t time.Time, loc *time.Location) Status {
	if IsLate(t, loc) {
		return StatusLate
	}
	return StatusPresent
}
